// Package mutate adjusts a freshly copied project to the user's choices.
//
// The package.json name is always set to the project name. When the CSS
// framework is declined, its dependency keys are removed and a fixed table of
// text rewrites strips it from the CSS entry files, the HTML entry file and
// the Vite config. Each rewrite is a pure string-to-string function so it can
// be tested without touching disk; Apply does the read, rewrite, write.
package mutate
