// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"code.hybscloud.com/oset/internal/config"
	"code.hybscloud.com/oset/internal/harness"
)

// RunCmd runs the presents scenario. Settings are layered: defaults, the
// YAML file, dotenv files and the environment, then these flags.
type RunCmd struct {
	Config      string   `short:"f" long:"config"     description:"YAML configuration path"`
	EnvFiles    []string `long:"env"                  description:"dotenv file with OSET_* overrides (repeatable)"`
	Presents    *int     `short:"n" long:"presents"   description:"Number of presents in the universe"`
	Seed        *uint64  `long:"seed"                 description:"Shuffle seed (0 draws a random seed)"`
	Populators  *int     `short:"p" long:"populators" description:"Goroutines inserting disjoint partitions"`
	Mode        string   `short:"m" long:"mode"       description:"Collaborator scheduling" choice:"concurrent" choice:"sequential"`
	Duplicates  string   `short:"d" long:"duplicates" description:"Duplicate tag policy" choice:"allow" choice:"reject" choice:"coalesce"`
	Spin        bool     `long:"spin"                 description:"Guard the list with a spin lock instead of a mutex"`
	NonBlocking bool     `long:"nonblocking"          description:"Collaborators use the non-blocking operations with backoff"`

	root *Options
}

// Resolve layers the configuration sources into one Config.
func (c *RunCmd) Resolve() (*config.Config, error) {
	cfg := config.Default()
	if c.Config != "" {
		loaded, err := config.Load(c.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(c.EnvFiles...); err != nil {
		return nil, err
	}
	if c.Presents != nil {
		cfg.Presents = *c.Presents
	}
	if c.Seed != nil {
		cfg.Seed = *c.Seed
	}
	if c.Populators != nil {
		cfg.Populators = *c.Populators
	}
	if c.Mode != "" {
		cfg.Mode = c.Mode
	}
	if c.Duplicates != "" {
		cfg.Duplicates = c.Duplicates
	}
	if c.Spin {
		cfg.Spin = true
	}
	if c.NonBlocking {
		cfg.NonBlocking = true
	}
	return cfg, cfg.Validate()
}

func (c *RunCmd) Execute(_ []string) error {
	cfg, err := c.Resolve()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	report, err := harness.Run(cfg, c.root.Logger())
	if err != nil {
		return err
	}

	out := c.root.stdout
	if report.NotesWritten != report.Presents {
		fmt.Fprintln(out, "Error: Not all presents have 'Thank you' notes.")
	} else {
		fmt.Fprintln(out, "All presents have 'Thank you' notes.")
	}
	if report.Found != report.Presents {
		fmt.Fprintln(out, "Error: Not all presents were found in the linked list.")
	} else {
		fmt.Fprintln(out, "All presents were found in the linked list.")
	}
	ms := report.Elapsed.Milliseconds()
	fmt.Fprintf(out, "It took %d.%03d seconds for the program to execute\n", ms/1000, ms%1000)

	return report.Err()
}
