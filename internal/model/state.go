package model

import "fmt"

// State is the instance record handed to the packing environment. All item
// and EMS arrays have fixed capacity; the parallel mask slices flag which
// slots are live. A State is a value: callers that need both the solved and
// the reset view must treat the two records as distinct.
type State struct {
	Container Space `json:"container"`

	Items         []Item     `json:"items"`
	ItemsMask     []bool     `json:"items_mask"`
	ItemsPlaced   []bool     `json:"items_placed"`
	ItemsLocation []Location `json:"items_location"`

	EMS     []Space `json:"ems"`
	EMSMask []bool  `json:"ems_mask"`

	// SortedEMSIndexes is the identity ordering at generation time; the
	// consuming environment re-sorts it as spaces are consumed.
	SortedEMSIndexes []int32 `json:"sorted_ems_indexes"`

	Seed uint64 `json:"seed"`
}

// NewState returns a zeroed record with the given capacities. EMS slot 0
// holds the whole container but is not marked live; assemblers decide the
// initial EMS mask.
func NewState(container Space, maxNumItems, maxNumEMS int) State {
	s := State{
		Container:        container,
		Items:            make([]Item, maxNumItems),
		ItemsMask:        make([]bool, maxNumItems),
		ItemsPlaced:      make([]bool, maxNumItems),
		ItemsLocation:    make([]Location, maxNumItems),
		EMS:              make([]Space, maxNumEMS),
		EMSMask:          make([]bool, maxNumEMS),
		SortedEMSIndexes: make([]int32, maxNumEMS),
	}
	s.EMS[0] = container
	for i := range s.SortedEMSIndexes {
		s.SortedEMSIndexes[i] = int32(i)
	}
	return s
}

// MaxNumItems returns the item buffer capacity.
func (s State) MaxNumItems() int { return len(s.Items) }

// MaxNumEMS returns the EMS buffer capacity.
func (s State) MaxNumEMS() int { return len(s.EMS) }

// NumItems returns the number of live items.
func (s State) NumItems() int {
	n := 0
	for _, m := range s.ItemsMask {
		if m {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the record.
func (s State) Clone() State {
	out := s
	out.Items = append([]Item(nil), s.Items...)
	out.ItemsMask = append([]bool(nil), s.ItemsMask...)
	out.ItemsPlaced = append([]bool(nil), s.ItemsPlaced...)
	out.ItemsLocation = append([]Location(nil), s.ItemsLocation...)
	out.EMS = append([]Space(nil), s.EMS...)
	out.EMSMask = append([]bool(nil), s.EMSMask...)
	out.SortedEMSIndexes = append([]int32(nil), s.SortedEMSIndexes...)
	return out
}

// Unpacked derives the reset view of a solved record: placed flags cleared,
// locations zeroed, EMS buffer collapsed to a single live whole-container
// entry. The receiver is not mutated.
func (s State) Unpacked() State {
	out := s.Clone()
	for i := range out.ItemsPlaced {
		out.ItemsPlaced[i] = false
	}
	for i := range out.ItemsLocation {
		out.ItemsLocation[i] = Location{}
	}
	out.EMS[0] = out.Container
	for i := range out.EMSMask {
		out.EMSMask[i] = i == 0
	}
	return out
}

// Validate checks the tiling invariant on a solved record: every live item
// space lies within the container, live item spaces are pairwise disjoint,
// and their volumes sum to the container volume.
func (s State) Validate() error {
	spaces := make([]Space, 0, len(s.Items))
	var total int64
	for i, it := range s.Items {
		if !s.ItemsMask[i] {
			continue
		}
		if !it.IsValid() {
			return fmt.Errorf("item %d: live item has non-positive extent %+v", i, it)
		}
		sp := SpaceFromItem(it, s.ItemsLocation[i])
		if !s.Container.Contains(sp) {
			return fmt.Errorf("item %d: space %+v outside container %+v", i, sp, s.Container)
		}
		spaces = append(spaces, sp)
		total += sp.Volume()
	}
	for i := 0; i < len(spaces); i++ {
		for j := i + 1; j < len(spaces); j++ {
			if spaces[i].Intersects(spaces[j]) {
				return fmt.Errorf("items overlap: %+v and %+v", spaces[i], spaces[j])
			}
		}
	}
	if cv := s.Container.Volume(); total != cv {
		return fmt.Errorf("item volumes sum to %d, container volume is %d", total, cv)
	}
	return nil
}
