// Package manifest edits the generated project's package.json. Parsing keeps
// the member order of the document so that a rewrite only changes what was
// edited, and the result is checked against an embedded JSON Schema before it
// is written back.
package manifest
