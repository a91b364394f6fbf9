package cli

import (
	"fmt"
	"sort"

	"github.com/rileyhilliard/halo/internal/config"
	"github.com/rileyhilliard/halo/internal/frames"
	"github.com/rileyhilliard/halo/internal/ui"
	"github.com/spf13/cobra"
)

func newListCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available spinners",
		Long: `List the built-in spinners, plus any defined in the frames file named by
frames_file in .halo.yaml.

Examples:
  halo list
  halo list --config ./ci.halo.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}
			sets, err := availableSets(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.RenderPresetTable(sets))
			return nil
		},
	}
}

// availableSets returns the built-in presets followed by the frames file's
// spinners, each group sorted by name.
func availableSets(cfg *config.Config) ([]frames.Set, error) {
	var sets []frames.Set
	for _, name := range frames.Names() {
		set, err := frames.Lookup(name)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}

	if cfg.FramesFile == "" {
		return sets, nil
	}

	lib, err := frames.LoadFile(cfg.FramesFile)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(lib))
	for name := range lib {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		sets = append(sets, lib[name])
	}
	return sets, nil
}
