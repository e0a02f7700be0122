// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package oset

import "iter"

// Set is the combined interface of an ordered concurrent tag set.
//
// Every method is atomic with respect to every other method on the same
// instance. The interface is satisfied by [*List].
//
// Example:
//
//	var s oset.Set = oset.NewList()
//	s.Insert(3)
//	s.Insert(1)
//	s.Contains(3)     // true
//	s.Remove(3)       // true
//	s.Remove(3)       // false
//	s.Snapshot()      // [1]
type Set interface {
	Inserter
	Remover
	Finder
	Len() int
	Snapshot() []int
	All() iter.Seq[int]
}

// Inserter is the interface for adding tags.
type Inserter interface {
	// Insert links tag at its ordered position.
	// Returns ErrExists only when the set rejects duplicates.
	Insert(tag int) error
}

// Remover is the interface for removing tags.
type Remover interface {
	// Remove unlinks the first node carrying tag.
	// Returns false when tag is absent; absence is not an error.
	Remove(tag int) bool
}

// Finder is the interface for membership lookups.
type Finder interface {
	// Contains reports whether tag is present.
	Contains(tag int) bool
}

// TrySet is implemented by sets offering non-blocking variants of the
// three operations. Each returns ErrWouldBlock instead of waiting when the
// set is busy.
type TrySet interface {
	TryInsert(tag int) error
	TryRemove(tag int) (bool, error)
	TryContains(tag int) (bool, error)
}

// Drainer tears a set down once concurrent access has ended.
//
// Example:
//
//	wg.Wait()  // All collaborators finished
//	if d, ok := s.(oset.Drainer); ok {
//	    leftover := d.Drain()
//	    _ = leftover
//	}
type Drainer interface {
	// Drain unlinks every node and returns their tags in list order.
	Drain() []int
}
