// Package generator assembles bin-packing problem instances. Three
// assemblers share one interface: a deterministic toy instance, an instance
// loaded from a shape file, and a random generator that reverse-builds a
// guaranteed-solvable instance by recursively splitting the container.
package generator

import (
	"errors"

	"github.com/cratelab/packgen/internal/model"
	"github.com/cratelab/packgen/internal/prng"
)

// TwentyFootDims is the inner volume of a standard 20-ft shipping container
// in mm: 5.870m long x 2.330m wide x 2.200m high.
var TwentyFootDims = [3]int32{5870, 2330, 2200}

// ErrNoSolution is returned by generators that cannot produce a reference
// solved instance.
var ErrNoSolution = errors.New("generator: no reference solution available")

// Generator produces a fresh instance record on every reset.
type Generator interface {
	// MaxNumItems is the item buffer capacity of produced records.
	MaxNumItems() int

	// MaxNumEMS is the EMS buffer capacity of produced records.
	MaxNumEMS() int

	// ContainerDims is the (length, width, height) of the container in mm.
	ContainerDims() [3]int32

	// Generate returns the reset instance for the given key: no items
	// placed, the whole container as the single live empty space.
	Generate(key prng.Key) model.State

	// GenerateSolution returns the solved instance for the same key, with
	// every item placed. Calling Generate with the same key yields exactly
	// this record unpacked.
	GenerateSolution(key prng.Key) (model.State, error)
}

// base carries the configuration shared by all generators, immutable after
// construction.
type base struct {
	maxNumItems   int
	maxNumEMS     int
	containerDims [3]int32
}

func (b base) MaxNumItems() int        { return b.maxNumItems }
func (b base) MaxNumEMS() int          { return b.maxNumEMS }
func (b base) ContainerDims() [3]int32 { return b.containerDims }
func (b base) container() model.Space  { return model.MakeContainer(b.containerDims) }
func (b base) newState() model.State {
	return model.NewState(b.container(), b.maxNumItems, b.maxNumEMS)
}
