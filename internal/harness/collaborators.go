// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package harness drives an ordered set with the three collaborators of
// the presents scenario: a populator inserting every tag of a universe, a
// retirer removing every tag and recording the "thank you notes" written,
// and an observer looking every tag up and recording which were found.
package harness

import (
	"errors"
	"math/rand/v2"
	"sync"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/oset"
)

// Target is what the driver needs from a set.
type Target interface {
	oset.Inserter
	oset.Remover
	oset.Finder
}

// Universe returns the tags 1..n in a random order drawn from seed.
func Universe(n int, seed uint64) []int {
	tags := make([]int, n)
	for i := range tags {
		tags[i] = i + 1
	}
	r := rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
	r.Shuffle(n, func(i, j int) { tags[i], tags[j] = tags[j], tags[i] })
	return tags
}

// Populate inserts each tag once and stops at the first Insert error.
func Populate(s oset.Inserter, tags []int) error {
	for _, tag := range tags {
		if err := s.Insert(tag); err != nil {
			return err
		}
	}
	return nil
}

// PopulateParallel splits tags into workers contiguous partitions and
// populates each from its own goroutine. Errors from all partitions are
// joined.
func PopulateParallel(s oset.Inserter, tags []int, workers int) error {
	if workers <= 1 {
		return Populate(s, tags)
	}
	workers = min(workers, len(tags))
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := range workers {
		part := tags[w*len(tags)/workers : (w+1)*len(tags)/workers]
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[w] = Populate(s, part)
		}()
	}
	wg.Wait()
	return errors.Join(errs...)
}

// Retire removes each tag once and returns the tags whose removal
// succeeded.
func Retire(s oset.Remover, tags []int) *TagSet {
	notes := &TagSet{}
	for _, tag := range tags {
		if s.Remove(tag) {
			notes.Add(tag)
		}
	}
	return notes
}

// Observe looks each tag up once and returns the tags reported present.
func Observe(s oset.Finder, tags []int) *TagSet {
	found := &TagSet{}
	for _, tag := range tags {
		if s.Contains(tag) {
			found.Add(tag)
		}
	}
	return found
}

// Backoff adapts a set's non-blocking methods into a Target. Each call
// retries ErrWouldBlock with [iox.Backoff] until the set accepts it, so
// collaborators never park on the set's guard.
type Backoff struct {
	Set oset.TrySet
}

func (b Backoff) Insert(tag int) error {
	backoff := iox.Backoff{}
	for {
		err := b.Set.TryInsert(tag)
		switch {
		case err == nil:
			return nil
		case !oset.IsNonFailure(err):
			return err
		}
		backoff.Wait()
	}
}

func (b Backoff) Remove(tag int) bool {
	backoff := iox.Backoff{}
	for {
		ok, err := b.Set.TryRemove(tag)
		if !oset.IsSemantic(err) {
			return ok
		}
		backoff.Wait()
	}
}

func (b Backoff) Contains(tag int) bool {
	backoff := iox.Backoff{}
	for {
		ok, err := b.Set.TryContains(tag)
		if !oset.IsSemantic(err) {
			return ok
		}
		backoff.Wait()
	}
}
