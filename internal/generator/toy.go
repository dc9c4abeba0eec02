package generator

import (
	"github.com/cratelab/packgen/internal/model"
	"github.com/cratelab/packgen/internal/prng"
)

// toyItems and toyLocations define a 20-item packing that fully utilizes a
// 20-ft container. The placement is a known-good hand-checked tiling.
var toyItems = []model.Item{
	{XLen: 2445, YLen: 1306, ZLen: 1022},
	{XLen: 3083, YLen: 1429, ZLen: 549},
	{XLen: 1950, YLen: 1301, ZLen: 700},
	{XLen: 3425, YLen: 321, ZLen: 1022},
	{XLen: 3083, YLen: 1165, ZLen: 629},
	{XLen: 2787, YLen: 2330, ZLen: 200},
	{XLen: 3425, YLen: 291, ZLen: 1022},
	{XLen: 2787, YLen: 1504, ZLen: 157},
	{XLen: 2787, YLen: 826, ZLen: 157},
	{XLen: 3425, YLen: 466, ZLen: 363},
	{XLen: 3083, YLen: 901, ZLen: 549},
	{XLen: 2787, YLen: 1029, ZLen: 700},
	{XLen: 1295, YLen: 1024, ZLen: 1022},
	{XLen: 2787, YLen: 2330, ZLen: 121},
	{XLen: 3083, YLen: 1165, ZLen: 629},
	{XLen: 3425, YLen: 466, ZLen: 659},
	{XLen: 3425, YLen: 663, ZLen: 1022},
	{XLen: 837, YLen: 1301, ZLen: 700},
	{XLen: 1150, YLen: 1024, ZLen: 1022},
	{XLen: 3425, YLen: 589, ZLen: 1022},
}

var toyLocations = []model.Location{
	{X: 0, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: 1022},
	{X: 3083, Y: 0, Z: 1022},
	{X: 2445, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: 1571},
	{X: 3083, Y: 0, Z: 1722},
	{X: 2445, Y: 910, Z: 0},
	{X: 3083, Y: 0, Z: 2043},
	{X: 3083, Y: 1504, Z: 2043},
	{X: 2445, Y: 1864, Z: 0},
	{X: 0, Y: 1429, Z: 1022},
	{X: 3083, Y: 1301, Z: 1022},
	{X: 0, Y: 1306, Z: 0},
	{X: 3083, Y: 0, Z: 1922},
	{X: 0, Y: 1165, Z: 1571},
	{X: 2445, Y: 1864, Z: 363},
	{X: 2445, Y: 1201, Z: 0},
	{X: 5033, Y: 0, Z: 1022},
	{X: 1295, Y: 1306, Z: 0},
	{X: 2445, Y: 321, Z: 0},
}

// ToyGenerator deterministically outputs a single 20-item instance that can
// be packed to fully utilize a 20-ft container. Useful for regression tests
// and demos; the key is ignored.
type ToyGenerator struct {
	base
}

// NewToyGenerator returns a toy generator with 20 items and an 80-slot EMS
// buffer.
func NewToyGenerator() *ToyGenerator {
	return &ToyGenerator{base: base{
		maxNumItems:   len(toyItems),
		maxNumEMS:     80,
		containerDims: TwentyFootDims,
	}}
}

// Generate returns the 20-ft toy instance without any placed items.
func (g *ToyGenerator) Generate(key prng.Key) model.State {
	_ = key
	return g.solvedInstance().Unpacked()
}

// GenerateSolution returns the toy instance with all items placed.
func (g *ToyGenerator) GenerateSolution(key prng.Key) (model.State, error) {
	_ = key
	return g.solvedInstance(), nil
}

func (g *ToyGenerator) solvedInstance() model.State {
	state := g.newState()
	copy(state.Items, toyItems)
	copy(state.ItemsLocation, toyLocations)
	for i := range state.ItemsMask {
		state.ItemsMask[i] = true
		state.ItemsPlaced[i] = true
	}
	return state
}
