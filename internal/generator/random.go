package generator

import (
	"fmt"

	"github.com/cratelab/packgen/internal/arena"
	"github.com/cratelab/packgen/internal/model"
	"github.com/cratelab/packgen/internal/prng"
)

// RandomConfig holds the knobs of the random instance generator. Immutable
// once passed to NewRandomGenerator.
type RandomConfig struct {
	// MaxNumItems caps how many items an instance can contain. More items
	// make the downstream packing problem harder.
	MaxNumItems int

	// MaxNumEMS is the EMS buffer capacity of produced records.
	MaxNumEMS int

	// SplitEps is the fraction of each end of an edge that cannot be chosen
	// as a split point. Prevents vanishingly thin items and biases sizes
	// toward usable magnitudes. Must lie in (0, 0.5).
	SplitEps float64

	// ProbSplitOneItem is the probability of splitting a space into two
	// unequal pieces; otherwise it is split into several identical pieces.
	ProbSplitOneItem float64

	// SplitNumSameItems bounds the identical-piece split count: the number
	// of pieces is drawn uniformly from [1, SplitNumSameItems].
	SplitNumSameItems int

	// ContainerDims is the (length, width, height) of the container in mm.
	ContainerDims [3]int32
}

// DefaultRandomConfig mirrors the defaults used for training instances: a
// 20-ft container cut into at most 40 items.
func DefaultRandomConfig() RandomConfig {
	return RandomConfig{
		MaxNumItems:       40,
		MaxNumEMS:         200,
		SplitEps:          0.3,
		ProbSplitOneItem:  0.7,
		SplitNumSameItems: 3,
		ContainerDims:     TwentyFootDims,
	}
}

// RandomGenerator reverse-builds guaranteed-solvable instances: starting
// from the whole container as a single space, it repeatedly picks a space
// and splits it along a random axis until enough items exist. Every split
// partitions a valid tiling piece into pieces that exactly reconstruct it,
// so the final item set tiles the container by construction — no overlap
// detection is ever needed.
type RandomGenerator struct {
	base
	splitEps          float64
	probSplitOneItem  float64
	splitNumSameItems int
}

// NewRandomGenerator validates the configuration and returns a generator.
func NewRandomGenerator(cfg RandomConfig) (*RandomGenerator, error) {
	if cfg.MaxNumItems < 1 {
		return nil, fmt.Errorf("generator: MaxNumItems must be >= 1, got %d", cfg.MaxNumItems)
	}
	if cfg.MaxNumEMS < 1 {
		return nil, fmt.Errorf("generator: MaxNumEMS must be >= 1, got %d", cfg.MaxNumEMS)
	}
	if cfg.SplitEps <= 0 || cfg.SplitEps >= 0.5 {
		return nil, fmt.Errorf("generator: SplitEps must lie in (0, 0.5), got %g", cfg.SplitEps)
	}
	if cfg.ProbSplitOneItem < 0 || cfg.ProbSplitOneItem > 1 {
		return nil, fmt.Errorf("generator: ProbSplitOneItem must lie in [0, 1], got %g", cfg.ProbSplitOneItem)
	}
	if cfg.SplitNumSameItems < 1 {
		return nil, fmt.Errorf("generator: SplitNumSameItems must be >= 1, got %d", cfg.SplitNumSameItems)
	}
	if cfg.SplitNumSameItems > cfg.MaxNumItems {
		return nil, fmt.Errorf("generator: SplitNumSameItems %d exceeds MaxNumItems %d",
			cfg.SplitNumSameItems, cfg.MaxNumItems)
	}
	for _, d := range cfg.ContainerDims {
		if d <= 0 {
			return nil, fmt.Errorf("generator: container dims must be positive, got %v", cfg.ContainerDims)
		}
	}
	return &RandomGenerator{
		base: base{
			maxNumItems:   cfg.MaxNumItems,
			maxNumEMS:     cfg.MaxNumEMS,
			containerDims: cfg.ContainerDims,
		},
		splitEps:          cfg.SplitEps,
		probSplitOneItem:  cfg.ProbSplitOneItem,
		splitNumSameItems: cfg.SplitNumSameItems,
	}, nil
}

// Generate returns a random reset instance for the key.
func (g *RandomGenerator) Generate(key prng.Key) model.State {
	return g.solvedInstance(key).Unpacked()
}

// GenerateSolution returns the solved instance for the key: the exact item
// placement the splitting produced, proving the instance is packable.
func (g *RandomGenerator) GenerateSolution(key prng.Key) (model.State, error) {
	return g.solvedInstance(key), nil
}

func (g *RandomGenerator) solvedInstance(key prng.Key) model.State {
	_, splitKey := key.Split()

	spaces := g.splitContainerIntoItemSpaces(splitKey)

	state := g.newState()
	state.Seed = uint64(key)
	for i, sp := range spaces.Slots() {
		state.Items[i] = model.ItemFromSpace(sp)
		state.ItemsLocation[i] = model.LocationFromSpace(sp)
		state.ItemsMask[i] = spaces.Live(i)
		state.ItemsPlaced[i] = spaces.Live(i)
	}
	return state
}

// splitContainerIntoItemSpaces runs the splitting engine until the live
// count reaches the target. The headroom of splitNumSameItems-1 slots below
// capacity guarantees that the final multi-way split cannot overflow the
// buffer, so Alloc can never fail.
func (g *RandomGenerator) splitContainerIntoItemSpaces(key prng.Key) *arena.Buffer[model.Space] {
	spaces := arena.New[model.Space](g.maxNumItems)
	spaces.Set(0, g.container())
	spaces.MarkLive(0)

	target := g.maxNumItems - g.splitNumSameItems + 1
	for spaces.LiveCount() < target {
		next, round := key.Split()
		g.splitRound(spaces, round)
		key = next
	}
	return spaces
}

// splitRound performs one splitting step: draw an axis, draw a live space
// weighted by its extent on that axis, split it, then drop any slot whose
// space was split to zero volume.
func (g *RandomGenerator) splitRound(spaces *arena.Buffer[model.Space], key prng.Key) {
	axisKey, splitKey := key.Split()
	axis := model.Axis(axisKey.IntN(0, model.NumAxes))
	g.splitAlongAxis(spaces, axis, splitKey)

	// A split can shrink a space's extent to zero on some other axis's
	// behalf; the mask bit is cleared here and only here.
	for i := range spaces.Slots() {
		if spaces.Live(i) && spaces.At(i).IsEmpty() {
			spaces.Clear(i)
		}
	}
}

func (g *RandomGenerator) splitAlongAxis(spaces *arena.Buffer[model.Space], axis model.Axis, key prng.Key) {
	keys := key.SplitN(3)
	itemKey, pointKey, modeKey := keys[0], keys[1], keys[2]

	// Spaces are drawn proportionally to their extent along the chosen
	// axis. Dead slots and zero-extent slots have weight zero and can never
	// be chosen, which rules out degenerate infinite splitting.
	weights := make([]int64, spaces.Cap())
	for i := range weights {
		if spaces.Live(i) {
			weights[i] = int64(spaces.At(i).Len(axis))
		}
	}
	id := itemKey.WeightedIndex(weights)
	if id < 0 {
		return
	}

	if modeKey.Float64() < g.probSplitOneItem {
		g.splitOnce(spaces, id, axis, pointKey)
	} else {
		g.splitSame(spaces, id, axis, pointKey)
	}
}

// splitOnce cuts the space in two at a point drawn uniformly from the
// splitEps-restricted interior of its edge. If the restricted range is empty
// (the edge is too short for the configured SplitEps), the round is skipped:
// no slot is touched and the engine moves on to the next round.
func (g *RandomGenerator) splitOnce(spaces *arena.Buffer[model.Space], id int, axis model.Axis, key prng.Key) {
	sp := spaces.At(id)
	lo, hi := sp.AxisRange(axis)
	length := hi - lo

	min := lo + int32(g.splitEps*float64(length))
	max := hi - int32(g.splitEps*float64(length))
	if min >= max {
		return
	}
	at := key.IntN(min, max)

	free := spaces.Alloc()
	upper := sp
	sp.SetAxisRange(axis, lo, at)
	upper.SetAxisRange(axis, at, hi)
	spaces.Set(id, sp)
	spaces.Set(free, upper)
	spaces.MarkLive(free)
}

// splitSame cuts the space into n equal-width pieces, n drawn uniformly from
// [1, splitNumSameItems]. Boundaries use truncating integer division, so the
// pieces reconstruct the original interval exactly.
func (g *RandomGenerator) splitSame(spaces *arena.Buffer[model.Space], id int, axis model.Axis, key prng.Key) {
	sp := spaces.At(id)
	lo, hi := sp.AxisRange(axis)
	length := int64(hi - lo)

	n := int64(key.IntN(1, int32(g.splitNumSameItems)+1))

	bound := func(i int64) int32 {
		return lo + int32(i*length/n)
	}

	// The original slot becomes the first piece; its mask is already set.
	first := sp
	first.SetAxisRange(axis, lo, bound(1))
	spaces.Set(id, first)

	for i := int64(1); i < n; i++ {
		free := spaces.Alloc()
		piece := sp
		piece.SetAxisRange(axis, bound(i), bound(i+1))
		spaces.Set(free, piece)
		spaces.MarkLive(free)
	}
}
