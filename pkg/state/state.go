// Package state holds the client-side mutable cells shared between views.
// Cells notify subscribers synchronously on every set; there is no batching
// and no async dispatch.
package state

import "github.com/minhquang4334/baby-tracker/pkg/model"

type listener[T any] struct {
	id int
	fn func(T)
}

// Cell is a minimal observable value. Set replaces the value and invokes all
// subscribers synchronously in registration order. Subscriber panics are not
// isolated: a panicking subscriber aborts the remaining notifications. Known
// limitation, kept for predictable ordering.
type Cell[T any] struct {
	value     T
	nextID    int
	listeners []listener[T]
}

// NewCell returns a cell seeded with the initial value.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{value: initial}
}

// Get returns the current value.
func (c *Cell[T]) Get() T {
	return c.value
}

// Set replaces the value and notifies subscribers in registration order.
func (c *Cell[T]) Set(v T) {
	c.value = v
	for _, l := range c.listeners {
		l.fn(v)
	}
}

// Subscribe registers a callback and returns its unregister function.
func (c *Cell[T]) Subscribe(fn func(T)) func() {
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, listener[T]{id: id, fn: fn})
	return func() {
		for i, l := range c.listeners {
			if l.id == id {
				c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

// Store bundles the client's shared cells. It is passed explicitly to views
// and runners; there is no package-level singleton.
type Store struct {
	Child         *Cell[*model.Child]
	ActiveSleep   *Cell[*model.SleepLog]
	ActiveFeeding *Cell[*model.FeedingLog]
	LastBottleML  *Cell[int]
}

// DefaultBottleML prefills the next bottle entry before any bottle has been
// logged.
const DefaultBottleML = 120

// NewStore returns a store with empty profile/session cells and the default
// bottle quantity.
func NewStore() *Store {
	return &Store{
		Child:         NewCell[*model.Child](nil),
		ActiveSleep:   NewCell[*model.SleepLog](nil),
		ActiveFeeding: NewCell[*model.FeedingLog](nil),
		LastBottleML:  NewCell(DefaultBottleML),
	}
}
