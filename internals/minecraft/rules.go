package minecraft

import "runtime"

// Rule decides if an argument or library applies to the current system.
type Rule struct {
	Action   string          `json:"action"`
	OS       OS              `json:"os"`
	Features map[string]bool `json:"features"`
}

// OS is the system matcher part of a [Rule].
type OS struct {
	Name string `json:"name"`
	// Version is a regex matched against the os version
	Version string `json:"version"`
	Arch    string `json:"arch"`
}

// mojang names differ from go names for some systems
var osNames = map[string]string{"darwin": "osx"}

var archNames = map[string]string{
	"amd64":  "x64",
	"x86_64": "x64",
	"386":    "x86",
	"i386":   "x86",
	"arm":    "arm32",
}

func mojangName(table map[string]string, name string) string {
	if mapped, ok := table[name]; ok {
		return mapped
	}
	return name
}

// Applies reports whether this rule allows inclusion on the current system
func (r Rule) Applies() bool {
	return r.appliesFor(runtime.GOOS, runtime.GOARCH)
}

func (r Rule) appliesFor(osName string, arch string) bool {
	osName = mojangName(osNames, osName)
	arch = mojangName(archNames, arch)

	// feature rules (demo mode, custom resolution …) are never enabled here
	if len(r.Features) != 0 {
		return false
	}

	osMatches := (r.OS.Name == "" || r.OS.Name == osName) &&
		(r.OS.Arch == "" || r.OS.Arch == arch)

	switch r.Action {
	case "allow":
		// version regexes are rare; treat any constraint as a non-match
		return osMatches && r.OS.Version == ""
	case "disallow":
		return !osMatches
	default:
		// unknown action, keep the entry
		return true
	}
}
