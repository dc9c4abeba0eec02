// packgen — guaranteed-solvable 3D bin-packing instance generator
//
// Build:
//   go build -o packgen ./cmd/packgen
//
// Examples:
//   packgen generate --seed 42 --items 40 --out instance.csv
//   packgen generate --seed 42 --solved --verify --pdf manifest.pdf
//   packgen toy --labels labels.pdf
//   packgen convert shapes.xlsx shapes.csv
//   packgen dataset list
package main

import "github.com/cratelab/packgen/internal/cli"

func main() {
	cli.Execute()
}
