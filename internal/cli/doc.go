// Package cli defines the Cobra command tree for create-waskit. The root
// command scaffolds a project; each other file registers one subcommand
// (list, version, config). Commands only handle flag parsing, prompting and
// output; the work is delegated to internal/scaffold and its collaborators.
package cli
