// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package oset

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately because
// another goroutine holds the list's guard.
//
// Only the Try* methods return it. ErrWouldBlock is a control flow signal,
// not a failure: the caller should retry later (with backoff or yield) or
// fall back to the blocking method.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := l.TryInsert(tag)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if oset.IsWouldBlock(err) {
//	        backoff.Wait()
//	        continue
//	    }
//	    return err
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// ErrExists is returned by Insert when the tag is already present and the
// list was built with [RejectDuplicates].
var ErrExists = errors.New("oset: tag already present")

// ErrCorrupt is wrapped by the error Check returns when the list violates
// its order invariant or its length accounting.
var ErrCorrupt = errors.New("oset: invariant violated")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil or ErrWouldBlock.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
