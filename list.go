// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package oset

import (
	"fmt"
	"iter"
)

// List is an ordered singly-linked set of integer tags guarded by a single
// lock.
//
// Insert, Remove, Contains and every inspection method hold the guard for
// their whole traversal and mutation, so at most one operation runs against
// a List at any instant. The guard therefore totally orders all operations:
// whichever goroutine acquires it next observes the effects of every
// operation that completed before.
//
// Invariant at every guard release: tags reachable from head are
// non-descending, strictly ascending when the policy keeps tags unique,
// and length equals the number of reachable nodes.
//
// Each node is owned by exactly one link (head or its predecessor's next).
// There are no back-pointers; Remove rescans from head.
//
// Memory: one node (tag + link) per linked tag
type List struct {
	guard  guard
	head   *node
	length int
	policy DuplicatePolicy
	_      pad
	stats  counters
}

type node struct {
	tag  int
	next *node
}

// NewList creates an empty list with a mutex guard and AllowDuplicates.
func NewList() *List {
	return New().Build()
}

// Insert links tag before the first node whose tag is >= tag, which keeps
// the list sorted and places tag before existing equal-valued nodes.
//
// With AllowDuplicates a second node with the same tag is linked. With
// RejectDuplicates Insert returns ErrExists and with CoalesceDuplicates it
// returns nil, both leaving the list unchanged.
func (l *List) Insert(tag int) error {
	n := &node{tag: tag}
	l.guard.Lock()
	defer l.guard.Unlock()
	return l.insert(n)
}

// TryInsert is Insert without waiting.
// Returns ErrWouldBlock if the guard is held by another goroutine.
func (l *List) TryInsert(tag int) error {
	n := &node{tag: tag}
	if !l.guard.TryLock() {
		l.stats.contended.Add(1)
		return ErrWouldBlock
	}
	defer l.guard.Unlock()
	return l.insert(n)
}

func (l *List) insert(n *node) error {
	link := &l.head
	for *link != nil && (*link).tag < n.tag {
		link = &(*link).next
	}
	if at := *link; at != nil && at.tag == n.tag && l.policy != AllowDuplicates {
		l.stats.duplicates.Add(1)
		if l.policy == RejectDuplicates {
			return ErrExists
		}
		return nil
	}
	n.next = *link
	*link = n
	l.length++
	l.stats.inserted.Add(1)
	return nil
}

// Remove unlinks the first node carrying tag and reports whether one was
// found. Removing an absent tag leaves the list unchanged.
func (l *List) Remove(tag int) bool {
	l.guard.Lock()
	defer l.guard.Unlock()
	return l.remove(tag)
}

// TryRemove is Remove without waiting.
// Returns (false, ErrWouldBlock) if the guard is held by another goroutine.
func (l *List) TryRemove(tag int) (bool, error) {
	if !l.guard.TryLock() {
		l.stats.contended.Add(1)
		return false, ErrWouldBlock
	}
	defer l.guard.Unlock()
	return l.remove(tag), nil
}

func (l *List) remove(tag int) bool {
	link := &l.head
	// Sorted: no match past the first greater tag.
	for n := *link; n != nil && n.tag <= tag; n = *link {
		if n.tag == tag {
			*link = n.next
			n.next = nil
			l.length--
			l.stats.removed.Add(1)
			return true
		}
		link = &n.next
	}
	l.stats.removeMisses.Add(1)
	return false
}

// Contains reports whether tag is present.
func (l *List) Contains(tag int) bool {
	l.guard.Lock()
	defer l.guard.Unlock()
	return l.contains(tag)
}

// TryContains is Contains without waiting.
// Returns (false, ErrWouldBlock) if the guard is held by another goroutine.
func (l *List) TryContains(tag int) (bool, error) {
	if !l.guard.TryLock() {
		l.stats.contended.Add(1)
		return false, ErrWouldBlock
	}
	defer l.guard.Unlock()
	return l.contains(tag), nil
}

func (l *List) contains(tag int) bool {
	for n := l.head; n != nil && n.tag <= tag; n = n.next {
		if n.tag == tag {
			l.stats.lookupHits.Add(1)
			return true
		}
	}
	l.stats.lookupMisses.Add(1)
	return false
}

// Len returns the number of linked nodes.
func (l *List) Len() int {
	l.guard.Lock()
	defer l.guard.Unlock()
	return l.length
}

// Snapshot returns the tags in list order.
// The returned slice is a copy and is never nil.
func (l *List) Snapshot() []int {
	l.guard.Lock()
	defer l.guard.Unlock()
	tags := make([]int, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		tags = append(tags, n.tag)
	}
	return tags
}

// All iterates the tags of a Snapshot taken when iteration starts.
// The guard is not held while yielding.
func (l *List) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, tag := range l.Snapshot() {
			if !yield(tag) {
				return
			}
		}
	}
}

// Drain unlinks every node and returns their tags in list order.
//
// Drain is meant for teardown after all collaborators have finished; it is
// still safe to call concurrently with other operations.
func (l *List) Drain() []int {
	l.guard.Lock()
	defer l.guard.Unlock()
	tags := make([]int, 0, l.length)
	for n := l.head; n != nil; {
		next := n.next
		n.next = nil
		tags = append(tags, n.tag)
		n = next
	}
	l.head = nil
	l.length = 0
	l.stats.drained.Add(int64(len(tags)))
	return tags
}

// Check verifies the order invariant for the list's policy and the length
// accounting. The returned error wraps ErrCorrupt.
func (l *List) Check() error {
	l.guard.Lock()
	defer l.guard.Unlock()
	count := 0
	var prev *node
	for n := l.head; n != nil; prev, n = n, n.next {
		count++
		if prev == nil {
			continue
		}
		if n.tag < prev.tag {
			return fmt.Errorf("%w: tag %d follows %d at position %d", ErrCorrupt, n.tag, prev.tag, count-1)
		}
		if n.tag == prev.tag && l.policy.Unique() {
			return fmt.Errorf("%w: duplicate tag %d at position %d", ErrCorrupt, n.tag, count-1)
		}
	}
	if count != l.length {
		return fmt.Errorf("%w: %d reachable nodes, length %d", ErrCorrupt, count, l.length)
	}
	return nil
}

// Policy returns the duplicate-tag policy the list was built with.
func (l *List) Policy() DuplicatePolicy {
	return l.policy
}

// Stats returns a copy of the operation counters.
func (l *List) Stats() Stats {
	return l.stats.snapshot()
}
