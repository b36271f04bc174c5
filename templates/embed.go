// Package templates embeds the starter project trees shipped with the binary.
//
// templates.yaml lists every template id in display order; each id names a
// sibling directory holding that template's files. Files whose names start
// with an underscore (such as _gitignore) are kept by the all: prefix and
// renamed after copy.
package templates

import "embed"

// Root is the directory inside FS that holds templates.yaml and the trees.
const Root = "catalog"

//go:embed all:catalog
var FS embed.FS
