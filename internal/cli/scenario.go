// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"code.hybscloud.com/oset"
)

// ScenarioCmd inserts presents 1..5, retires 5, 3 and 1, retires 3 again
// and prints each step.
type ScenarioCmd struct {
	Duplicates string `short:"d" long:"duplicates" description:"Duplicate tag policy" choice:"allow" choice:"reject" choice:"coalesce" default:"allow"`
	Spin       bool   `long:"spin" description:"Guard the list with a spin lock instead of a mutex"`

	root *Options
}

func (c *ScenarioCmd) Execute(_ []string) error {
	policy, err := oset.ParsePolicy(c.Duplicates)
	if err != nil {
		return err
	}
	b := oset.New().Duplicates(policy)
	if c.Spin {
		b.Spin()
	}
	l := b.Build()

	out := c.root.stdout
	for tag := 1; tag <= 5; tag++ {
		if err := l.Insert(tag); err != nil {
			return fmt.Errorf("insert %d: %w", tag, err)
		}
	}
	fmt.Fprintf(out, "inserted: %v\n", l.Snapshot())
	for _, tag := range []int{5, 3, 1, 3} {
		fmt.Fprintf(out, "remove %d: %v\n", tag, l.Remove(tag))
	}
	fmt.Fprintf(out, "remaining: %v\n", l.Snapshot())

	if err := l.Check(); err != nil {
		return err
	}
	c.root.Logger().Debug("scenario finished", "stats", fmt.Sprintf("%+v", l.Stats()))
	return nil
}
