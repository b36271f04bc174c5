// Package output provides terminal output utilities: the shared structured
// logger, the color palette and semantic styles used for summaries, and a
// spinner that is only drawn when stdout is a terminal.
package output
