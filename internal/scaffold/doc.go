// Package scaffold drives one project generation from a validated Request.
//
// The Coordinator is a linear state machine: it resolves the template,
// checks for an existing target, copies the tree, edits the copy, and then
// optionally initializes git and installs dependencies. Only resolving, a
// declined overwrite, and copying can stop a run; later failures become
// warnings on the Result so a usable project is never thrown away.
package scaffold
