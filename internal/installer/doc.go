// Package installer runs the project's dependency install. It probes the
// preferred package manager, falls back to the secondary one when the probe
// or the install fails, and reports the outcome as a Result rather than an
// error so an install failure never undoes a scaffold.
package installer
