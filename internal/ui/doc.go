// Package ui provides the interactive pieces of halo's output.
//
// # Components Overview
//
//	PreviewModel  - Bubble Tea program that plays one spinner for `halo preview`
//	PickPreset    - Huh select for choosing a spinner interactively
//	Tables        - Preset listing built on the Bubbles table
//	Report        - Command prompt, divider and captured output for `halo run`
//
// Colors and the per-stream Styler live in ui/style, which the spinner
// library imports on its own so it doesn't pull in Bubble Tea or Huh.
package ui
