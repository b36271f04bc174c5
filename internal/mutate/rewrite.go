package mutate

import (
	"regexp"
	"strings"
)

// Role names the kind of file a rewrite targets.
type Role string

const (
	RoleCSSEntry    Role = "css-entry"
	RoleMarkup      Role = "markup"
	RoleBuildConfig Role = "build-config"
)

// CSS entry files.
var (
	// @import "tailwindcss"; and variants such as @import 'tailwindcss/preflight' layer(base);
	cssImportPattern = regexp.MustCompile(`(?m)^[ \t]*@import\s+(?:url\(\s*)?["']tailwindcss(?:/[\w./-]*)?["']\)?[^;\n]*;?[ \t]*(?:\r?\n)?`)

	// Legacy directive form: @tailwind base; @config "./tailwind.config.js"; @plugin "...";
	cssDirectivePattern = regexp.MustCompile(`(?m)^[ \t]*@(?:tailwind|config|plugin)\b[^;\n{]*;?[ \t]*(?:\r?\n)?`)
)

// Markup entry file. The leading whitespace must be present, so attributes
// that merely end in "class" (data-class, sr-class) are left alone.
var classAttrPattern = regexp.MustCompile(`\s+class="(?s:.*?)"`)

// Build config.
var (
	vitePluginImportPatterns = []*regexp.Regexp{
		// import tailwindcss from '@tailwindcss/vite'
		regexp.MustCompile(`(?m)^[ \t]*import\s+([A-Za-z_$][\w$]*)\s+from\s+["']@tailwindcss/vite["'][ \t]*;?[ \t]*(?:\r?\n)?`),
		// import { tailwindcss } from "@tailwindcss/vite" and { default as tw }
		regexp.MustCompile(`(?m)^[ \t]*import\s*\{\s*(?:default\s+as\s+)?([A-Za-z_$][\w$]*)\s*\}\s*from\s+["']@tailwindcss/vite["'][ \t]*;?[ \t]*(?:\r?\n)?`),
	}

	// defaultPluginIdent is assumed when no import binds the plugin.
	defaultPluginIdent = "tailwindcss"

	emptyPluginsPattern = regexp.MustCompile(`plugins\s*:\s*\[\s*,?\s*\]`)
)

// RewriteCSSEntry removes the framework import and legacy directives.
func RewriteCSSEntry(content string) string {
	content = cssImportPattern.ReplaceAllString(content, "")
	return cssDirectivePattern.ReplaceAllString(content, "")
}

// RewriteMarkup removes every class="..." attribute.
func RewriteMarkup(content string) string {
	return classAttrPattern.ReplaceAllString(content, "")
}

// RewriteBuildConfig removes the framework's Vite plugin import, its
// invocation in the plugin list, and collapses an emptied list to [].
func RewriteBuildConfig(content string) string {
	ident := defaultPluginIdent
	for _, re := range vitePluginImportPatterns {
		if m := re.FindStringSubmatch(content); m != nil {
			ident = m[1]
		}
		content = re.ReplaceAllString(content, "")
	}

	// The call may take one argument: an object literal without nested
	// braces or a flat expression.
	call := regexp.QuoteMeta(ident) + `\(\s*(?:\{[^{}]*\}|[^(){}]*)\s*\)`
	// ", tailwindcss()" when the call follows another plugin.
	afterPlugin := regexp.MustCompile(`,\s*` + call)
	// "tailwindcss()," when it opens the list or sits on its own line.
	leading := regexp.MustCompile(`([\[\s])` + call + `[ \t]*,?[ \t]*(?:\r?\n[ \t]*)?`)

	content = afterPlugin.ReplaceAllString(content, "")
	content = leading.ReplaceAllString(content, "$1")

	return emptyPluginsPattern.ReplaceAllString(content, "plugins: []")
}

// rewriterFor returns the pure rewrite function for a role.
func rewriterFor(role Role) func(string) string {
	switch role {
	case RoleCSSEntry:
		return RewriteCSSEntry
	case RoleMarkup:
		return RewriteMarkup
	case RoleBuildConfig:
		return RewriteBuildConfig
	default:
		return strings.Clone
	}
}
