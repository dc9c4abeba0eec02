package generator

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cratelab/packgen/internal/importer"
	"github.com/cratelab/packgen/internal/model"
)

const twoShapesCSV = "Product_Name,Length,Width,Height,Quantity\n" +
	"shape_1,1080,760,300,5\n" +
	"shape_2,1100,430,250,3\n"

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shapes.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVGeneratorTwoShapes(t *testing.T) {
	gen, err := NewCSVGenerator(writeTempCSV(t, twoShapesCSV), 150, TwentyFootDims)
	require.NoError(t, err)

	// Capacity is derived from the file, never assumed.
	assert.Equal(t, 8, gen.MaxNumItems())
	assert.Equal(t, 150, gen.MaxNumEMS())

	state := gen.Generate(0)
	assert.Equal(t, 8, state.NumItems())

	counts := make(map[model.Item]int)
	for i, it := range state.Items {
		assert.True(t, state.ItemsMask[i], "item %d mask", i)
		assert.False(t, state.ItemsPlaced[i], "item %d placed", i)
		assert.Equal(t, model.Location{}, state.ItemsLocation[i])
		counts[it]++
	}
	assert.Equal(t, 5, counts[model.Item{XLen: 1080, YLen: 760, ZLen: 300}])
	assert.Equal(t, 3, counts[model.Item{XLen: 1100, YLen: 430, ZLen: 250}])

	// The whole container is the single live empty space.
	assert.True(t, state.EMSMask[0])
	assert.Equal(t, state.Container, state.EMS[0])
}

func TestCSVGeneratorAlwaysSameInstance(t *testing.T) {
	gen, err := NewCSVGenerator(writeTempCSV(t, twoShapesCSV), 150, TwentyFootDims)
	require.NoError(t, err)
	assert.Equal(t, gen.Generate(0), gen.Generate(42))
}

func TestCSVGeneratorReturnsCopies(t *testing.T) {
	gen, err := NewCSVGenerator(writeTempCSV(t, twoShapesCSV), 150, TwentyFootDims)
	require.NoError(t, err)

	a := gen.Generate(0)
	a.ItemsMask[0] = false
	a.Items[0] = model.Item{}

	b := gen.Generate(0)
	assert.True(t, b.ItemsMask[0], "caller mutation leaked into generator")
	assert.Equal(t, 8, b.NumItems())
}

func TestCSVGeneratorHasNoSolution(t *testing.T) {
	gen, err := NewCSVGenerator(writeTempCSV(t, twoShapesCSV), 150, TwentyFootDims)
	require.NoError(t, err)
	_, err = gen.GenerateSolution(0)
	assert.ErrorIs(t, err, ErrNoSolution)
}

func TestCSVGeneratorSchemaErrors(t *testing.T) {
	cases := []struct {
		name string
		csv  string
	}{
		{"wrong column count", "Product_Name,Length,Width,Height\nshape_1,1,2,3\n"},
		{"wrong column name", "Name,Length,Width,Height,Quantity\nshape_1,1,2,3,4\n"},
		{"wrong column order", "Length,Product_Name,Width,Height,Quantity\n1,shape_1,2,3,4\n"},
		{"empty file", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCSVGenerator(writeTempCSV(t, tc.csv), 150, TwentyFootDims)
			require.Error(t, err)
			assert.ErrorIs(t, err, importer.ErrSchema)
		})
	}
}

func TestCSVGeneratorDefaultsContainer(t *testing.T) {
	gen, err := NewCSVGenerator(writeTempCSV(t, twoShapesCSV), 150, [3]int32{})
	require.NoError(t, err)
	assert.Equal(t, TwentyFootDims, gen.ContainerDims())
}

func TestGroupItemsCanonicalOrder(t *testing.T) {
	state := model.NewState(model.MakeContainer(TwentyFootDims), 6, 10)
	a := model.Item{XLen: 100, YLen: 100, ZLen: 100}
	b := model.Item{XLen: 200, YLen: 100, ZLen: 50}
	for i, it := range []model.Item{a, b, b, a, b, a} {
		state.Items[i] = it
		state.ItemsMask[i] = true
	}
	// Tie-free case: both appear three times is avoided; drop one a.
	state.ItemsMask[5] = false

	rows := GroupItems(state)
	require.Len(t, rows, 2)
	assert.Equal(t, "shape_1", rows[0].Name)
	assert.Equal(t, int32(3), rows[0].Quantity) // b is most frequent
	assert.Equal(t, int32(200), rows[0].Length)
	assert.Equal(t, "shape_2", rows[1].Name)
	assert.Equal(t, int32(2), rows[1].Quantity)
}

func TestGroupItemsSkipsDeadAndDegenerate(t *testing.T) {
	state := model.NewState(model.MakeContainer(TwentyFootDims), 3, 10)
	state.Items[0] = model.Item{XLen: 10, YLen: 10, ZLen: 10}
	state.ItemsMask[0] = true
	state.Items[1] = model.Item{XLen: 10, YLen: 10, ZLen: 10} // dead slot
	state.Items[2] = model.Item{XLen: 10, YLen: 0, ZLen: 10}  // degenerate
	state.ItemsMask[2] = true

	rows := GroupItems(state)
	require.Len(t, rows, 1)
	assert.Equal(t, int32(1), rows[0].Quantity)
}

func TestSaveInstanceCSVRoundTrip(t *testing.T) {
	gen, err := NewCSVGenerator(writeTempCSV(t, twoShapesCSV), 150, TwentyFootDims)
	require.NoError(t, err)
	state := gen.Generate(0)

	out := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, SaveInstanceCSV(state, out))

	// Reading the written file back yields the same item multiset.
	regen, err := NewCSVGenerator(out, 150, TwentyFootDims)
	require.NoError(t, err)
	restate := regen.Generate(0)

	counts := func(s model.State) map[model.Item]int {
		m := make(map[model.Item]int)
		for i, it := range s.Items {
			if s.ItemsMask[i] {
				m[it]++
			}
		}
		return m
	}
	assert.Equal(t, counts(state), counts(restate))
}

func TestToyShapesGolden(t *testing.T) {
	gen := NewToyGenerator()
	solution, err := gen.GenerateSolution(0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, importer.WriteCSVTo(&buf, GroupItems(solution)))

	g := goldie.New(t)
	g.Assert(t, "toy_shapes", buf.Bytes())
}
