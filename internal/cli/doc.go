// Package cli implements the gridpath command-line interface.
//
// # Commands
//
//   - solve: read a text grid, run A*, BFS or DFS and print the explored grid
//   - maze:  generate a random barrier layout and print it as text
//   - tui:   interactive editor that animates searches and maze generation
//
// # Configuration
//
// Defaults come from an optional TOML file (--config, default
// $XDG_CONFIG_HOME/gridpath/config.toml) with the keys rows, width,
// algorithm, near, far and delay. Flags override the file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// passed through context.Context and every search or maze pass is tagged with
// a run id.
package cli
