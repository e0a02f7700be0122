// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package oset

import "fmt"

// DuplicatePolicy decides what Insert does with a tag that is already
// present.
type DuplicatePolicy uint8

const (
	// AllowDuplicates links a second node carrying the same tag. The new
	// node lands before the existing equal-valued nodes. This is the
	// default and the reference behaviour for callers that guarantee
	// unique tags themselves.
	AllowDuplicates DuplicatePolicy = iota

	// RejectDuplicates leaves the list unchanged and makes Insert return
	// ErrExists.
	RejectDuplicates

	// CoalesceDuplicates leaves the list unchanged and makes Insert
	// return nil.
	CoalesceDuplicates
)

// String returns the policy name as accepted by ParsePolicy.
func (p DuplicatePolicy) String() string {
	switch p {
	case AllowDuplicates:
		return "allow"
	case RejectDuplicates:
		return "reject"
	case CoalesceDuplicates:
		return "coalesce"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", uint8(p))
	}
}

// Unique reports whether the policy keeps tags unique.
func (p DuplicatePolicy) Unique() bool {
	return p == RejectDuplicates || p == CoalesceDuplicates
}

func (p DuplicatePolicy) valid() bool {
	return p <= CoalesceDuplicates
}

// ParsePolicy maps "allow", "reject" or "coalesce" to a DuplicatePolicy.
func ParsePolicy(s string) (DuplicatePolicy, error) {
	switch s {
	case "allow", "":
		return AllowDuplicates, nil
	case "reject":
		return RejectDuplicates, nil
	case "coalesce":
		return CoalesceDuplicates, nil
	}
	return 0, fmt.Errorf("oset: unknown duplicate policy %q", s)
}

// Options configures list creation.
type Options struct {
	policy DuplicatePolicy

	// Guard selection
	spin bool
}

// Builder creates lists with fluent configuration.
//
// Example:
//
//	// Default: mutex guard, duplicates allowed
//	l := oset.New().Build()
//
//	// Unique tags, spin guard for very short critical sections
//	l := oset.New().Duplicates(oset.RejectDuplicates).Spin().Build()
type Builder struct {
	opts Options
}

// New creates a list builder with the default options.
func New() *Builder {
	return &Builder{}
}

// Duplicates selects the duplicate-tag policy.
// Panics if p is not one of the declared policies.
func (b *Builder) Duplicates(p DuplicatePolicy) *Builder {
	if !p.valid() {
		panic("oset: invalid duplicate policy")
	}
	b.opts.policy = p
	return b
}

// Spin selects a test-and-set spin lock as the guard instead of
// sync.Mutex.
//
// Trade-off: lower hand-off latency for very short critical sections,
// burned CPU while waiting. The exclusion contract is the same.
func (b *Builder) Spin() *Builder {
	b.opts.spin = true
	return b
}

// Build creates a List with the configured options.
func (b *Builder) Build() *List {
	l := &List{policy: b.opts.policy}
	if b.opts.spin {
		l.guard = &spinGuard{}
	} else {
		l.guard = &mutexGuard{}
	}
	return l
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte
