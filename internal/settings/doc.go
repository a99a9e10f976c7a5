// Package settings is the settings and profile core for stormterm.
//
// It merges the user's settings.json with built-in defaults and
// dynamically generated profiles, repairs inconsistent or missing
// fields, and resolves one effective profile per new terminal session.
//
// # Load flow
//
//	user settings.json ─┐
//	defaults.json       ├─→ LoadFromJSON ─→ Validate ─→ BuildSettings (per session)
//	profile generators ─┘
//
// Validation runs a strict, ordered sequence of passes (see Validate);
// unrecoverable states return a LoadError, everything else is repaired
// in place and recorded as a Warning for the UI layer to present.
// Warnings are never logged or displayed by this package.
//
// A validated Settings is read-only. Reloads build a fresh instance and
// atomically swap it in; Service wraps that lifecycle, including file
// watching.
//
// # Sub-packages
//
//   - scheme: color scheme parsing and the fallback scheme
//   - keybind: keybinding table parsing with issue collection
//   - generator: dynamic profile generators (login shells, containers,
//     cloud endpoints, Lua scripts)
//
// # Basic Usage
//
//	svc := settings.NewService(path,
//	    settings.WithServiceGenerators(generator.Defaults()...))
//	s, err := svc.Load()
//	if err != nil {
//	    // Fatal: svc published a defaults-only fallback; surface err.
//	}
//	for _, w := range s.Warnings() {
//	    ui.Notify(w.Message())
//	}
//
//	guid, ts, err := s.BuildSettings(&settings.NewTerminalArgs{Profile: "Bash"})
package settings
