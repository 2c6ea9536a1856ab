package appointment

import (
	"fmt"
	"iter"
)

// Directory maps IDs to entities. Keys are never removed and iteration
// follows insertion order.
type Directory[T any] struct {
	keys  []string
	items map[string]T
}

func NewDirectory[T any]() *Directory[T] {
	return &Directory[T]{items: make(map[string]T)}
}

func (d *Directory[T]) Put(id string, v T) error {
	if _, ok := d.items[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}
	d.items[id] = v
	d.keys = append(d.keys, id)
	return nil
}

func (d *Directory[T]) Get(id string) (T, bool) {
	v, ok := d.items[id]
	return v, ok
}

func (d *Directory[T]) Contains(id string) bool {
	_, ok := d.items[id]
	return ok
}

func (d *Directory[T]) Len() int {
	return len(d.keys)
}

// All yields (id, entity) pairs in insertion order. The sequence can be
// ranged over any number of times.
func (d *Directory[T]) All() iter.Seq2[string, T] {
	return func(yield func(string, T) bool) {
		for _, k := range d.keys {
			if !yield(k, d.items[k]) {
				return
			}
		}
	}
}

// Keys returns a copy of the IDs in insertion order.
func (d *Directory[T]) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}
