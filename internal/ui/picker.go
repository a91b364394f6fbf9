package ui

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/rileyhilliard/halo/internal/errors"
	"github.com/rileyhilliard/halo/internal/frames"
)

// presetOptions builds select options labelled with each preset's first frames.
func presetOptions(sets []frames.Set) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(sets))
	for _, set := range sets {
		label := fmt.Sprintf("%-20s %s", set.Name, framePreview(set))
		options = append(options, huh.NewOption(label, set.Name))
	}
	return options
}

// PickPreset asks the user to choose one of sets. current is preselected.
func PickPreset(sets []frames.Set, current string) (string, error) {
	if len(sets) == 0 {
		return "", errors.New(errors.ErrConfig, "There are no spinners to pick from", "")
	}

	selected := current
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which spinner would you like to preview?").
				Options(presetOptions(sets)...).
				Height(12).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"No spinner picked",
			"Pass a spinner name instead: halo preview dots")
	}
	return selected, nil
}
