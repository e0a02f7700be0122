// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package oset provides an ordered set of integer tags that is safe for
// concurrent use.
//
// [List] keeps its tags in a singly-linked chain sorted in ascending order
// and protects the whole chain with one guard. Insert, Remove and Contains
// each hold the guard for their full traversal and mutation, so the set is
// sorted at every point another goroutine can observe it.
//
// # Quick Start
//
//	l := oset.NewList()
//	l.Insert(42)
//	l.Contains(42)  // true
//	l.Remove(42)    // true
//	l.Remove(42)    // false, absence is not an error
//
// Builder API for non-default configuration:
//
//	l := oset.New().Duplicates(oset.RejectDuplicates).Build()
//	l := oset.New().Spin().Build()
//
// # Common Patterns
//
// Populate / retire / observe over the same universe of tags:
//
//	l := oset.NewList()
//	var wg sync.WaitGroup
//	wg.Add(3)
//	go func() { // Populator
//	    defer wg.Done()
//	    for _, tag := range tags {
//	        l.Insert(tag)
//	    }
//	}()
//	go func() { // Retirer
//	    defer wg.Done()
//	    for _, tag := range tags {
//	        if l.Remove(tag) {
//	            notes[tag] = struct{}{}
//	        }
//	    }
//	}()
//	go func() { // Observer
//	    defer wg.Done()
//	    for _, tag := range tags {
//	        if l.Contains(tag) {
//	            found[tag] = struct{}{}
//	        }
//	    }
//	}()
//	wg.Wait()
//
// The guard orders operations but nothing orders the three goroutines, so
// Remove or Contains may legitimately run before the Insert of the same
// tag and miss it.
//
// # Duplicate Tags
//
// Insert takes no uniqueness precaution by default. The behaviour for a tag
// that is already present is an explicit [DuplicatePolicy]:
//
//	AllowDuplicates     - link a second node before the existing one (default)
//	RejectDuplicates    - leave the list unchanged, return ErrExists
//	CoalesceDuplicates  - leave the list unchanged, return nil
//
// Remove unlinks one node per call, so with AllowDuplicates a tag inserted
// twice must be removed twice.
//
// # Guard Selection
//
// The guard is coarse-grained by design: one lock for the whole list, no
// hand-over-hand locking and no lock-free splicing.
//
//	default  - sync.Mutex
//	Spin()   - test-and-set spin lock (atomix word, spin.Wait pause)
//
// Only one lock exists and no operation waits on anything else while
// holding it, so no deadlock is possible.
//
// # Error Handling
//
// Remove and Contains report absence as false, never as an error. Heap
// exhaustion while allocating a node is fatal in the Go runtime and aborts
// the program; there is no degraded mode.
//
// The non-blocking variants return [ErrWouldBlock] when the guard is busy.
// This error is sourced from [code.hybscloud.com/iox] for ecosystem
// consistency:
//
//	backoff := iox.Backoff{}
//	for {
//	    ok, err := l.TryRemove(tag)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    backoff.Wait()
//	}
//
// # Teardown
//
// Once all collaborators have finished, [List.Drain] unlinks the remaining
// nodes and [List.Check] verifies the invariant:
//
//	wg.Wait()
//	if err := l.Check(); err != nil {
//	    return err
//	}
//	leftover := l.Drain()
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for counters and the spin guard word, and
// [code.hybscloud.com/spin] for CPU pause instructions.
package oset
