// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package harness

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"code.hybscloud.com/oset"
	"code.hybscloud.com/oset/internal/config"
)

// ErrIncomplete is wrapped by Report.Err when a collaborator did not
// account for every present.
var ErrIncomplete = errors.New("not all presents accounted for")

// Report is the outcome of one run.
type Report struct {
	Mode         string
	Seed         uint64
	Presents     int
	NotesWritten int
	Found        int
	Remaining    int // Nodes still linked when the collaborators finished
	Elapsed      time.Duration
	Stats        oset.Stats
}

// Err returns an error wrapping ErrIncomplete when the notes written or
// the presents found fall short of the universe, nil otherwise.
func (r *Report) Err() error {
	var errs []error
	if r.NotesWritten != r.Presents {
		errs = append(errs, fmt.Errorf("%w: %d of %d thank you notes written", ErrIncomplete, r.NotesWritten, r.Presents))
	}
	if r.Found != r.Presents {
		errs = append(errs, fmt.Errorf("%w: %d of %d presents found", ErrIncomplete, r.Found, r.Presents))
	}
	return errors.Join(errs...)
}

// Build creates the list described by cfg.
func Build(cfg *config.Config) (*oset.List, error) {
	policy, err := cfg.Policy()
	if err != nil {
		return nil, err
	}
	b := oset.New().Duplicates(policy)
	if cfg.Spin {
		b.Spin()
	}
	return b.Build(), nil
}

// Run builds a list, drives it with the collaborators as cfg describes and
// tears it down. The returned error covers invalid configuration, insert
// failures and invariant violations; accounting shortfalls are reported
// through Report.Err.
func Run(cfg *config.Config, logger *slog.Logger) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	l, err := Build(cfg)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	n := cfg.Presents
	populate := Universe(n, seed)
	retire := Universe(n, seed+1)
	observe := Universe(n, seed+2)

	var target Target = l
	if cfg.NonBlocking {
		target = Backoff{Set: l}
	}

	logger.Info("run started",
		"mode", cfg.Mode,
		"presents", n,
		"populators", cfg.Populators,
		"duplicates", l.Policy(),
		"spin", cfg.Spin,
		"nonblocking", cfg.NonBlocking,
		"seed", seed)

	var (
		notes, found *TagSet
		popErr       error
	)
	sw := StartStopwatch()
	switch cfg.Mode {
	case config.ModeSequential:
		popErr = timed(logger, "populator", func() error { return PopulateParallel(target, populate, cfg.Populators) })
		found = timedSet(logger, "observer", func() *TagSet { return Observe(target, observe) })
		notes = timedSet(logger, "retirer", func() *TagSet { return Retire(target, retire) })
	default:
		var wg sync.WaitGroup
		wg.Add(3)
		go func() {
			defer wg.Done()
			popErr = timed(logger, "populator", func() error { return PopulateParallel(target, populate, cfg.Populators) })
		}()
		go func() {
			defer wg.Done()
			notes = timedSet(logger, "retirer", func() *TagSet { return Retire(target, retire) })
		}()
		go func() {
			defer wg.Done()
			found = timedSet(logger, "observer", func() *TagSet { return Observe(target, observe) })
		}()
		wg.Wait()
	}
	elapsed := sw.Elapsed()

	report := &Report{
		Mode:         cfg.Mode,
		Seed:         seed,
		Presents:     n,
		NotesWritten: notes.Len(),
		Found:        found.Len(),
		Remaining:    l.Len(),
		Elapsed:      elapsed,
	}

	checkErr := l.Check()
	leftover := l.Drain()
	report.Stats = l.Stats()

	logger.Info("run finished",
		"notes", report.NotesWritten,
		"found", report.Found,
		"remaining", report.Remaining,
		"drained", len(leftover),
		"contended", report.Stats.Contended,
		"elapsed", roundElapsed(elapsed))

	if popErr != nil {
		return report, fmt.Errorf("populate: %w", popErr)
	}
	if checkErr != nil {
		return report, checkErr
	}
	return report, nil
}

// timed runs fn and logs its duration under name.
func timed(logger *slog.Logger, name string, fn func() error) error {
	sw := StartStopwatch()
	err := fn()
	logger.Debug("collaborator finished", "name", name, "elapsed", sw.String(), "err", err)
	return err
}

func timedSet(logger *slog.Logger, name string, fn func() *TagSet) *TagSet {
	sw := StartStopwatch()
	set := fn()
	logger.Debug("collaborator finished", "name", name, "tags", set.Len(), "elapsed", sw.String())
	return set
}
