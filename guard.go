// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package oset

import (
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// guard is the single lock protecting a List.
type guard interface {
	sync.Locker
	TryLock() bool
}

type mutexGuard struct {
	sync.Mutex
}

// spinGuard is a test-and-test-and-set lock.
// Waiters pause the CPU between attempts and never park.
type spinGuard struct {
	state atomix.Uint64 // 0: free, 1: held
	_     padShort
}

func (g *spinGuard) Lock() {
	sw := spin.Wait{}
	for {
		if g.state.LoadRelaxed() == 0 && g.state.CompareAndSwapAcqRel(0, 1) {
			return
		}
		sw.Once()
	}
}

func (g *spinGuard) TryLock() bool {
	return g.state.LoadRelaxed() == 0 && g.state.CompareAndSwapAcqRel(0, 1)
}

func (g *spinGuard) Unlock() {
	g.state.StoreRelease(0)
}

// padShort is padding to fill cache line after 8-byte field.
type padShort [64 - 8]byte
