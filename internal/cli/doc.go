// Package cli defines the Cobra command tree for the people CLI. Each file
// in this package registers one top-level command (add, display, select,
// config, version) with the root command. Command implementations delegate to
// internal packages for the registry logic and only handle argument parsing
// and output.
package cli
