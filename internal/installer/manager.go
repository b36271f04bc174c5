package installer

import (
	"fmt"
	"sort"
	"strings"
)

// Manager describes a JavaScript package manager.
type Manager struct {
	Name        string
	InstallArgs []string
	// DevArgs start the development server.
	DevArgs []string
}

// Known package managers by name.
var Known = map[string]Manager{
	"bun":  {Name: "bun", InstallArgs: []string{"install"}, DevArgs: []string{"run", "dev"}},
	"pnpm": {Name: "pnpm", InstallArgs: []string{"install"}, DevArgs: []string{"run", "dev"}},
	"yarn": {Name: "yarn", InstallArgs: []string{"install"}, DevArgs: []string{"dev"}},
	"npm":  {Name: "npm", InstallArgs: []string{"install"}, DevArgs: []string{"run", "dev"}},
}

// Lookup returns the known manager called name.
func Lookup(name string) (Manager, error) {
	m, ok := Known[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Manager{}, fmt.Errorf("unknown package manager %q (known: %s)", name, strings.Join(KnownNames(), ", "))
	}
	return m, nil
}

// KnownNames returns the sorted manager names.
func KnownNames() []string {
	names := make([]string, 0, len(Known))
	for name := range Known {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// InstallCommand is the shell form of the install step, e.g. "bun install".
func (m Manager) InstallCommand() string {
	return strings.Join(append([]string{m.Name}, m.InstallArgs...), " ")
}

// DevCommand is the shell form of the dev server step, e.g. "npm run dev".
func (m Manager) DevCommand() string {
	return strings.Join(append([]string{m.Name}, m.DevArgs...), " ")
}
