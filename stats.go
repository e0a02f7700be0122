// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package oset

import "code.hybscloud.com/atomix"

// Stats is a point-in-time copy of a list's operation counters.
//
// Counters are maintained atomically and read without the guard, so a
// Stats taken while operations are in flight may be mid-update across
// fields. Take it after the collaborators have finished for exact totals.
type Stats struct {
	Inserted     int64 // Nodes linked by Insert
	Duplicates   int64 // Inserts rejected or coalesced by the policy
	Removed      int64 // Remove calls that unlinked a node
	RemoveMisses int64 // Remove calls that found nothing
	LookupHits   int64 // Contains calls that reported present
	LookupMisses int64 // Contains calls that reported absent
	Contended    int64 // Try* calls that returned ErrWouldBlock
	Drained      int64 // Nodes unlinked by Drain
}

// Live returns the number of nodes the counters account for.
func (s Stats) Live() int64 {
	return s.Inserted - s.Removed - s.Drained
}

type counters struct {
	inserted     atomix.Int64
	duplicates   atomix.Int64
	removed      atomix.Int64
	removeMisses atomix.Int64
	lookupHits   atomix.Int64
	lookupMisses atomix.Int64
	contended    atomix.Int64
	drained      atomix.Int64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Inserted:     c.inserted.Load(),
		Duplicates:   c.duplicates.Load(),
		Removed:      c.removed.Load(),
		RemoveMisses: c.removeMisses.Load(),
		LookupHits:   c.lookupHits.Load(),
		LookupMisses: c.lookupMisses.Load(),
		Contended:    c.contended.Load(),
		Drained:      c.drained.Load(),
	}
}
