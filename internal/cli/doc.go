// Package cli implements the halo command-line interface.
//
// Each subcommand is built by a constructor so tests can run a fresh command
// tree. Commands share the persistent spinner flags in globalFlags, which
// override whatever .halo.yaml (see internal/config) sets.
//
// # Command Structure
//
//	halo run -- <command>   - Run a shell command under a spinner
//	halo spin               - Spin for a while, then persist a status line
//	halo list               - List the built-in (and configured) spinners
//	halo preview [name]     - Play a spinner in an interactive preview
//	halo version            - Print version information
//	halo completion <shell> - Generate shell completion scripts
//
// # Signals
//
// SIGINT and SIGTERM cancel the running command, stop the spinner and show
// the cursor again before halo exits with code 130.
package cli
