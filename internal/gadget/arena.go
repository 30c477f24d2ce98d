package gadget

import "slices"

// arena owns nodes of a single kind, addressed by identifiers that are
// never reused within the lifetime of the arena.
type arena[T any] struct {
	last  uint32
	nodes map[uint32]*T
}

func (a *arena[T]) alloc(node *T) uint32 {
	if a.nodes == nil {
		a.nodes = make(map[uint32]*T)
	}

	a.last++
	a.nodes[a.last] = node

	return a.last
}

func (a *arena[T]) get(id uint32) *T {
	if id == 0 {
		return nil
	}

	return a.nodes[id]
}

func (a *arena[T]) free(id uint32) {
	delete(a.nodes, id)
}

func (a *arena[T]) len() int {
	return len(a.nodes)
}

func (a *arena[T]) reset() {
	a.nodes = nil
}

// insertOrdered inserts id before the first element whose name is not less
// than the name of id, keeping the collection sorted by name.
func insertOrdered(ids []uint32, id uint32, nameOf func(uint32) string) []uint32 {
	name := nameOf(id)

	pos := len(ids)
	for i, cur := range ids {
		if nameOf(cur) >= name {
			pos = i

			break
		}
	}

	return slices.Insert(ids, pos, id)
}

// detach removes id from a collection without reordering the rest.
func detach(ids []uint32, id uint32) []uint32 {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(ids, i, i+1)
	}

	return ids
}

// following returns the element after id, or zero at the end.
func following(ids []uint32, id uint32) uint32 {
	i := slices.Index(ids, id)
	if i < 0 || i+1 >= len(ids) {
		return 0
	}

	return ids[i+1]
}
