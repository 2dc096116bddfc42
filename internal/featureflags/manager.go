// Package featureflags evaluates the FEATURE_FLAGS switches that gate optional
// parts of the HTTP surface.
package featureflags

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"
)

// Flags understood by the server.
const (
	LegacyRoutes = "legacy_routes"
	AdminConsole = "admin_console"
)

// Defaults applies when FEATURE_FLAGS does not mention a known flag.
var Defaults = map[string]string{
	LegacyRoutes: "on",
	AdminConsole: "on",
}

// Manager holds flags parsed from a "name=value,..." list, e.g.
// "legacy_routes=off,admin_console=on,new_dashboard=10%".
type Manager struct {
	flags map[string]string
}

// Parse builds a Manager, skipping malformed entries and reporting the first
// one it saw.
func Parse(raw string) (*Manager, error) {
	flags := make(map[string]string, len(Defaults))
	for k, v := range Defaults {
		flags[k] = v
	}

	var firstErr error
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		name, value = normalize(name), normalize(value)
		var err error
		switch {
		case !ok || name == "" || value == "":
			err = fmt.Errorf("feature flag %q: expected name=value", pair)
		case !validValue(value):
			err = fmt.Errorf("feature flag %q: unsupported value %q", name, value)
		}
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		flags[name] = value
	}
	return &Manager{flags: flags}, firstErr
}

// NewManager is Parse without the error; malformed entries are ignored.
func NewManager(raw string) *Manager {
	m, _ := Parse(raw)
	return m
}

// Enabled reports whether a flag is switched on globally. Percentage
// rollouts count as on only at 100%.
func (m *Manager) Enabled(name string) bool {
	return m.EnabledFor(name, "")
}

// EnabledFor evaluates a flag for one subject such as a client address.
// Supported values are on/true/1, off/false/0 and N% (deterministic per
// subject; an empty subject only passes at 100%).
func (m *Manager) EnabledFor(name, subject string) bool {
	if m == nil {
		return false
	}
	value, ok := m.flags[normalize(name)]
	if !ok {
		return false
	}

	switch value {
	case "on", "true", "1":
		return true
	case "off", "false", "0":
		return false
	}

	pct, ok := percentage(value)
	if !ok || pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	if subject == "" {
		return false
	}
	return bucket(name, subject) < pct
}

// Reachable reports whether the flag can pass for at least one subject, that
// is, it is on or rolled out to more than 0%.
func (m *Manager) Reachable(name string) bool {
	if m == nil {
		return false
	}
	value, ok := m.flags[normalize(name)]
	if !ok {
		return false
	}
	switch value {
	case "on", "true", "1":
		return true
	case "off", "false", "0":
		return false
	}
	pct, ok := percentage(value)
	return ok && pct > 0
}

// Raw returns a copy of the configured values.
func (m *Manager) Raw() map[string]string {
	out := make(map[string]string, len(m.flags))
	for k, v := range m.flags {
		out[k] = v
	}
	return out
}

// Snapshot returns the global state of every flag.
func (m *Manager) Snapshot() map[string]bool {
	out := make(map[string]bool, len(m.flags))
	for name := range m.flags {
		out[name] = m.Enabled(name)
	}
	return out
}

// Names lists the configured flags in sorted order.
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.flags))
	for name := range m.flags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func validValue(v string) bool {
	switch v {
	case "on", "true", "1", "off", "false", "0":
		return true
	}
	pct, ok := percentage(v)
	return ok && pct >= 0 && pct <= 100
}

func percentage(v string) (int, bool) {
	raw, ok := strings.CutSuffix(v, "%")
	if !ok {
		return 0, false
	}
	pct, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return pct, true
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func bucket(name, subject string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(normalize(name) + ":" + subject))
	return int(h.Sum32() % 100)
}
