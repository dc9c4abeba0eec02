package generator

import (
	"fmt"
	"sort"

	"github.com/cratelab/packgen/internal/importer"
	"github.com/cratelab/packgen/internal/model"
	"github.com/cratelab/packgen/internal/prng"
)

// CSVGenerator always resets to the same instance, defined by an item shape
// file. Used for active search on a fixed instance. The item capacity is
// derived from the file, never assumed.
type CSVGenerator struct {
	base
	instance model.State
}

// NewCSVGenerator parses an item shape CSV and builds the generator.
// The container defaults to 20-ft dimensions when dims is zero.
func NewCSVGenerator(path string, maxNumEMS int, containerDims [3]int32) (*CSVGenerator, error) {
	rows, err := importer.ReadCSV(path)
	if err != nil {
		return nil, err
	}
	return NewCSVGeneratorFromRows(rows, maxNumEMS, containerDims)
}

// NewCSVGeneratorFromRows builds the generator from already-parsed rows,
// e.g. rows imported from an Excel workbook.
func NewCSVGeneratorFromRows(rows []importer.Row, maxNumEMS int, containerDims [3]int32) (*CSVGenerator, error) {
	if containerDims == ([3]int32{}) {
		containerDims = TwentyFootDims
	}
	if maxNumEMS < 1 {
		return nil, fmt.Errorf("generator: MaxNumEMS must be >= 1, got %d", maxNumEMS)
	}

	var items []model.Item
	for _, row := range rows {
		for i := int32(0); i < row.Quantity; i++ {
			items = append(items, model.Item{
				XLen: row.Length,
				YLen: row.Width,
				ZLen: row.Height,
			})
		}
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("generator: shape list contains no items")
	}

	g := &CSVGenerator{base: base{
		maxNumItems:   len(items),
		maxNumEMS:     maxNumEMS,
		containerDims: containerDims,
	}}
	state := g.newState()
	copy(state.Items, items)
	for i := range state.ItemsMask {
		state.ItemsMask[i] = true
	}
	state.EMSMask[0] = true
	g.instance = state
	return g, nil
}

// Generate returns the instance defined by the shape file; the key is
// ignored. Each call returns an independent copy.
func (g *CSVGenerator) Generate(key prng.Key) model.State {
	_ = key
	return g.instance.Clone()
}

// GenerateSolution is unavailable: a shape file carries no placement.
func (g *CSVGenerator) GenerateSolution(key prng.Key) (model.State, error) {
	_ = key
	return model.State{}, ErrNoSolution
}

// GroupItems collapses an instance's live items into canonical shape rows:
// identical extent triples are grouped and counted, groups are ordered by
// descending quantity, and names are assigned shape_1, shape_2, ...
// Items with non-positive extents are excluded.
func GroupItems(state model.State) []importer.Row {
	type triple struct{ x, y, z int32 }
	counts := make(map[triple]int32)
	var order []triple
	for i, it := range state.Items {
		if !state.ItemsMask[i] || !it.IsValid() {
			continue
		}
		key := triple{it.XLen, it.YLen, it.ZLen}
		if counts[key] == 0 {
			order = append(order, key)
		}
		counts[key]++
	}
	// Stable sort keeps first-seen order among equal quantities.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	rows := make([]importer.Row, 0, len(order))
	for i, key := range order {
		name := fmt.Sprintf("shape_%d", i+1)
		rows = append(rows, importer.NewRow(name, key.x, key.y, key.z, counts[key]))
	}
	return rows
}

// SaveInstanceCSV writes an instance's item multiset to a CSV shape file in
// canonical grouped form. Reading the file back yields the same multiset of
// extent triples, though names and row order may differ from any original.
func SaveInstanceCSV(state model.State, path string) error {
	return importer.WriteCSV(path, GroupItems(state))
}
