// FrameBOM — Modular Frame Planner
//
// A command-line planner for rectangular frames built from a fixed
// catalog of beam modules. It decomposes frame edges into catalog
// pieces, matches them against a persisted inventory, and exports
// bills of materials as text, PDF, Excel, DXF, or piece labels.
//
// Build:
//   go build -o framebom ./cmd/framebom

package main

func main() {
	Execute()
}
