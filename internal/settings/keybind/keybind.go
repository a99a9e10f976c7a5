// Package keybind parses the keybinding table from settings.json.
//
// Parsing is tolerant: malformed bindings are skipped and reported as
// Issues rather than errors, so one bad binding never invalidates the
// whole settings file. The settings validation pipeline surfaces the
// collected issues as load warnings.
package keybind

import (
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// Modifiers is a bitmask of modifier keys in a chord.
type Modifiers uint8

const (
	// ModCtrl is the control modifier.
	ModCtrl Modifiers = 1 << iota
	// ModAlt is the alt/meta modifier.
	ModAlt
	// ModShift is the shift modifier.
	ModShift
)

// Chord is a single key combination: zero or more modifiers plus one key.
type Chord struct {
	Mods Modifiers
	Key  string
}

// String renders the chord in the settings.json form, e.g. "ctrl+shift+t".
func (c Chord) String() string {
	var parts []string
	if c.Mods&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if c.Mods&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if c.Mods&ModShift != 0 {
		parts = append(parts, "shift")
	}
	parts = append(parts, c.Key)
	return strings.Join(parts, "+")
}

// Binding is the action a chord is bound to.
type Binding struct {
	// Command is the action name.
	Command string

	// Args carries optional action arguments.
	Args map[string]any
}

// Map is the parsed keybinding table.
type Map map[Chord]Binding

// IssueCode categorizes a keybinding parse problem.
type IssueCode uint8

const (
	// IssueTooManyKeys indicates a chord with more than one non-modifier key.
	IssueTooManyKeys IssueCode = iota
	// IssueUnknownKey indicates a key name that isn't recognized.
	IssueUnknownKey
	// IssueMissingAction indicates a binding without a command.
	IssueMissingAction
	// IssueMissingRequiredArg indicates a command missing a required argument.
	IssueMissingRequiredArg
)

// String returns a stable name for the issue code.
func (c IssueCode) String() string {
	switch c {
	case IssueTooManyKeys:
		return "too_many_keys"
	case IssueUnknownKey:
		return "unknown_key"
	case IssueMissingAction:
		return "missing_action"
	case IssueMissingRequiredArg:
		return "missing_required_arg"
	default:
		return "unknown"
	}
}

// Issue records one problem found while parsing a binding.
type Issue struct {
	// Code categorizes the problem.
	Code IssueCode
	// Binding is the offending keys or command text, for display.
	Binding string
}

// requiredArgs maps commands to the argument they cannot run without.
var requiredArgs = map[string]string{
	"switchToTab": "index",
	"moveFocus":   "direction",
	"resizePane":  "direction",
}

// namedKeys are the recognized multi-character key names. Single
// printable characters are always valid keys.
var namedKeys = map[string]bool{
	"enter": true, "tab": true, "esc": true, "escape": true,
	"space": true, "backspace": true, "delete": true, "insert": true,
	"up": true, "down": true, "left": true, "right": true,
	"home": true, "end": true, "pgup": true, "pgdn": true,
	"f1": true, "f2": true, "f3": true, "f4": true, "f5": true, "f6": true,
	"f7": true, "f8": true, "f9": true, "f10": true, "f11": true, "f12": true,
	"plus": true, "minus": true,
}

// ParseChord parses a chord string like "ctrl+shift+t". It reports
// IssueTooManyKeys when more than one non-modifier key is present and
// IssueUnknownKey for unrecognized key names.
func ParseChord(raw string) (Chord, *Issue) {
	var chord Chord
	keys := 0

	for _, part := range strings.Split(raw, "+") {
		part = strings.ToLower(strings.TrimSpace(part))
		switch part {
		case "ctrl", "control":
			chord.Mods |= ModCtrl
		case "alt", "meta":
			chord.Mods |= ModAlt
		case "shift":
			chord.Mods |= ModShift
		case "":
			return Chord{}, &Issue{Code: IssueUnknownKey, Binding: raw}
		default:
			keys++
			chord.Key = part
		}
	}

	switch {
	case keys == 0:
		return Chord{}, &Issue{Code: IssueUnknownKey, Binding: raw}
	case keys > 1:
		return Chord{}, &Issue{Code: IssueTooManyKeys, Binding: raw}
	}

	if len(chord.Key) > 1 && !namedKeys[chord.Key] {
		return Chord{}, &Issue{Code: IssueUnknownKey, Binding: raw}
	}

	return chord, nil
}

// ParseMap parses the keybindings array from a settings tree. Each entry
// is an object with a "command" and a "keys" string or array of strings.
// Bindings that fail to parse are skipped and reported; later bindings
// for the same chord override earlier ones.
func ParseMap(v gjson.Result) (Map, []Issue) {
	m := make(Map)
	var issues []Issue

	v.ForEach(func(_, entry gjson.Result) bool {
		command := entry.Get("command").String()
		if command == "" {
			issues = append(issues, Issue{Code: IssueMissingAction, Binding: entry.Get("keys").String()})
			return true
		}

		var args map[string]any
		if a := entry.Get("args"); a.IsObject() {
			args, _ = a.Value().(map[string]any)
		}

		if arg, ok := requiredArgs[command]; ok {
			if _, present := args[arg]; !present {
				issues = append(issues, Issue{Code: IssueMissingRequiredArg, Binding: command})
				return true
			}
		}

		keys := entry.Get("keys")
		bind := func(raw string) {
			chord, issue := ParseChord(raw)
			if issue != nil {
				issues = append(issues, *issue)
				return
			}
			m[chord] = Binding{Command: command, Args: args}
		}

		if keys.IsArray() {
			keys.ForEach(func(_, k gjson.Result) bool {
				bind(k.String())
				return true
			})
		} else if keys.Exists() {
			bind(keys.String())
		}
		return true
	})

	return m, issues
}

// Chords returns the bound chords in a stable display order.
func (m Map) Chords() []Chord {
	chords := make([]Chord, 0, len(m))
	for c := range m {
		chords = append(chords, c)
	}
	sort.Slice(chords, func(i, j int) bool {
		return chords[i].String() < chords[j].String()
	})
	return chords
}
