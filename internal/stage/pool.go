package stage

import (
	"slices"
	"sync"
)

// Slot is one of the four daily meal slots.
type Slot string

const (
	Breakfast Slot = "breakfast"
	Lunch     Slot = "lunch"
	Dinner    Slot = "dinner"
	Snack     Slot = "snack"
)

// Slots lists the meal slots in display order.
var Slots = []Slot{Breakfast, Lunch, Dinner, Snack}

// MealPool holds the candidate menus of one stage. An empty slot list means
// the slot does not apply to the stage.
type MealPool struct {
	Breakfast []string `json:"breakfast" yaml:"breakfast"`
	Lunch     []string `json:"lunch" yaml:"lunch"`
	Dinner    []string `json:"dinner" yaml:"dinner"`
	Snack     []string `json:"snack" yaml:"snack"`
}

// Get returns the candidates for a slot.
func (p MealPool) Get(slot Slot) []string {
	switch slot {
	case Breakfast:
		return p.Breakfast
	case Lunch:
		return p.Lunch
	case Dinner:
		return p.Dinner
	case Snack:
		return p.Snack
	}
	return nil
}

// Empty reports whether every slot is empty.
func (p MealPool) Empty() bool {
	return len(p.Breakfast) == 0 && len(p.Lunch) == 0 && len(p.Dinner) == 0 && len(p.Snack) == 0
}

func (p MealPool) clone() MealPool {
	return MealPool{
		Breakfast: slices.Clone(p.Breakfast),
		Lunch:     slices.Clone(p.Lunch),
		Dinner:    slices.Clone(p.Dinner),
		Snack:     slices.Clone(p.Snack),
	}
}

// Registry is the read-only table of menu pools keyed by stage. It is safe for
// concurrent readers because nothing mutates it after construction.
type Registry struct {
	pools     map[ID]MealPool
	mergeable [][]ID
}

// NewRegistry copies the given pools and mergeable stage sets into a new
// Registry.
func NewRegistry(pools map[ID]MealPool, mergeable [][]ID) *Registry {
	r := &Registry{
		pools:     make(map[ID]MealPool, len(pools)),
		mergeable: make([][]ID, 0, len(mergeable)),
	}
	for id, p := range pools {
		r.pools[id] = p.clone()
	}
	for _, set := range mergeable {
		r.mergeable = append(r.mergeable, slices.Clone(set))
	}
	return r
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry(defaultPools(), [][]ID{{Toddler, GeneralToddler}})
})

// Default returns the built-in registry, constructed on first use.
func Default() *Registry {
	return defaultRegistry()
}

// Pool returns a copy of the pool for id. Stages without a menu report false.
func (r *Registry) Pool(id ID) (MealPool, bool) {
	p, ok := r.pools[id]
	if !ok {
		return MealPool{}, false
	}
	return p.clone(), true
}

// PoolByName resolves a stage name before looking up its pool.
func (r *Registry) PoolByName(name string) (MealPool, bool) {
	id, ok := Lookup(name)
	if !ok {
		return MealPool{}, false
	}
	return r.Pool(id)
}

// IsMergeable reports whether every stage in ids belongs to one of the
// registry's mergeable stage sets. An empty list is not mergeable.
func (r *Registry) IsMergeable(ids []ID) bool {
	if len(ids) == 0 {
		return false
	}
	for _, set := range r.mergeable {
		contained := true
		for _, id := range ids {
			if !slices.Contains(set, id) {
				contained = false
				break
			}
		}
		if contained {
			return true
		}
	}
	return false
}

// MergedPool builds the per-slot union of the pools of ids, keeping the first
// occurrence of each menu. Unknown stages contribute nothing.
func (r *Registry) MergedPool(ids []ID) MealPool {
	var merged MealPool
	seen := map[Slot]map[string]struct{}{}
	add := func(slot Slot, dst *[]string, items []string) {
		if seen[slot] == nil {
			seen[slot] = map[string]struct{}{}
		}
		for _, item := range items {
			if _, dup := seen[slot][item]; dup {
				continue
			}
			seen[slot][item] = struct{}{}
			*dst = append(*dst, item)
		}
	}
	for _, id := range ids {
		p, ok := r.pools[id]
		if !ok {
			continue
		}
		add(Breakfast, &merged.Breakfast, p.Breakfast)
		add(Lunch, &merged.Lunch, p.Lunch)
		add(Dinner, &merged.Dinner, p.Dinner)
		add(Snack, &merged.Snack, p.Snack)
	}
	return merged
}
