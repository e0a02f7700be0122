// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package harness

import (
	"sort"
	"time"
)

var magnitudes = []struct {
	threshold time.Duration
	round     time.Duration
}{
	{0, time.Microsecond},
	{time.Millisecond, 10 * time.Microsecond},
	{time.Second, time.Millisecond},
	{time.Minute, 100 * time.Millisecond},
}

// Stopwatch measures wall-clock time from its creation.
type Stopwatch time.Time

// StartStopwatch starts measuring now.
func StartStopwatch() Stopwatch {
	return Stopwatch(time.Now())
}

// Elapsed returns the time since the stopwatch started.
func (s Stopwatch) Elapsed() time.Duration {
	return time.Since(time.Time(s))
}

// String renders the elapsed time rounded to a precision that shrinks as
// the duration grows.
func (s Stopwatch) String() string {
	return roundElapsed(s.Elapsed()).String()
}

func roundElapsed(value time.Duration) time.Duration {
	pos := sort.Search(len(magnitudes), func(i int) bool {
		return magnitudes[i].threshold > value
	})
	i := max(pos-1, 0)
	return value.Round(magnitudes[i].round)
}
