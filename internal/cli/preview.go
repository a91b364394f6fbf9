package cli

import (
	"os"
	"time"

	"github.com/rileyhilliard/halo/internal/frames"
	"github.com/rileyhilliard/halo/internal/hostenv"
	"github.com/rileyhilliard/halo/internal/textutil"
	"github.com/rileyhilliard/halo/internal/ui"
	"github.com/spf13/cobra"
)

func newPreviewCmd(g *globalFlags) *cobra.Command {
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "preview [name]",
		Short: "Play a spinner in an interactive preview",
		Long: `Play a spinner until the preview time runs out or you press q.

Without a name, pick one from a list (needs an interactive terminal).

Examples:
  halo preview dots
  halo preview --for 0 arc
  halo preview`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, g)
			if err != nil {
				return err
			}
			sets, err := availableSets(cfg)
			if err != nil {
				return err
			}

			name := frames.DefaultPreset
			if current, ok := cfg.Spinner.(string); ok && current != "" {
				name = current
			}
			if len(args) == 1 {
				name = args[0]
			} else if hostenv.IsInteractive(os.Stdin) && hostenv.IsInteractive(os.Stdout) {
				if name, err = ui.PickPreset(sets, name); err != nil {
					return err
				}
			}

			set, err := findSet(sets, name)
			if err != nil {
				return err
			}

			if cfg.Interval > 0 {
				set.Interval = cfg.Interval
			}

			label, ok := textutil.AsText(cfg.Text)
			if !ok || label == "" {
				label = "Previewing " + set.Name
			}

			_, err = ui.RunPreview(ui.NewPreview(set, label, cfg.Color, duration), cmd.InOrStdin(), cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().DurationVar(&duration, "for", 5*time.Second, "how long to play the preview (0 plays until q)")

	return cmd
}

// findSet returns the named set from sets, falling back to the built-in
// lookup so the error names the missing spinner.
func findSet(sets []frames.Set, name string) (frames.Set, error) {
	for _, set := range sets {
		if set.Name == name {
			return set, nil
		}
	}
	return frames.Lookup(name)
}
