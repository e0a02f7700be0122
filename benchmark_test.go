// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package oset_test

import (
	"math/rand/v2"
	"testing"

	"code.hybscloud.com/oset"
)

// =============================================================================
// Single-goroutine benchmarks
// =============================================================================

// prefilled returns a list holding the even tags 0..2*n-2.
func prefilled(b *testing.B, build func(oset.DuplicatePolicy) *oset.List, n int) *oset.List {
	b.Helper()
	l := build(oset.RejectDuplicates)
	for i := range n {
		l.Insert(2 * i)
	}
	return l
}

func BenchmarkList_Contains(b *testing.B) {
	for _, g := range guardKinds {
		b.Run(g.name, func(b *testing.B) {
			const n = 256
			l := prefilled(b, g.build, n)
			r := rand.New(rand.NewPCG(1, 2))
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				l.Contains(r.IntN(2 * n))
			}
		})
	}
}

func BenchmarkList_InsertRemove(b *testing.B) {
	for _, g := range guardKinds {
		b.Run(g.name, func(b *testing.B) {
			const n = 256
			l := prefilled(b, g.build, n)
			r := rand.New(rand.NewPCG(3, 4))
			b.ReportAllocs()
			b.ResetTimer()
			for b.Loop() {
				tag := 2*r.IntN(n) + 1
				l.Insert(tag)
				l.Remove(tag)
			}
		})
	}
}

// =============================================================================
// Parallel benchmarks
// =============================================================================

func BenchmarkList_Parallel(b *testing.B) {
	for _, g := range guardKinds {
		b.Run(g.name, func(b *testing.B) {
			const n = 256
			l := prefilled(b, g.build, n)
			b.ReportAllocs()
			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				r := rand.New(rand.NewPCG(rand.Uint64(), 5))
				for pb.Next() {
					tag := r.IntN(2 * n)
					switch r.IntN(4) {
					case 0:
						l.Insert(tag)
					case 1:
						l.Remove(tag)
					default:
						l.Contains(tag)
					}
				}
			})
		})
	}
}
