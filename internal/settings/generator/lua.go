package generator

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/stormterm/internal/settings"
)

// LuaNamespace is the source tag for script-generated profiles.
const LuaNamespace = "stormterm.lua"

// LuaGenerator runs user Lua scripts that synthesize profiles. Each
// *.lua file in the script directory must return an array of profile
// tables:
//
//	return {
//	    { name = "Dev Box", commandline = "ssh devbox", colorScheme = "One Half Dark" },
//	}
//
// Recognized fields: name, commandline, startingDirectory, tabTitle,
// colorScheme, icon, backgroundImage, hidden. Scripts run sandboxed:
// only the base, table, string and math libraries are available, no io
// or os. A failing script is skipped; it never aborts the load.
type LuaGenerator struct {
	// Dir is the script directory. Empty means
	// ~/.config/stormterm/generators.
	Dir string
}

// Namespace implements settings.ProfileGenerator.
func (g *LuaGenerator) Namespace() string {
	return LuaNamespace
}

// Generate implements settings.ProfileGenerator.
func (g *LuaGenerator) Generate() ([]*settings.Profile, error) {
	dir := g.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".config", "stormterm", "generators")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var scripts []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".lua") {
			scripts = append(scripts, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(scripts)

	var profiles []*settings.Profile
	for _, script := range scripts {
		profiles = append(profiles, runScript(script)...)
	}
	return profiles, nil
}

// runScript executes one generator script and converts its result.
// Script errors and non-table results yield no profiles.
func runScript(path string) []*settings.Profile {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()
	openSafeLibraries(L)

	if err := L.DoFile(path); err != nil {
		return nil
	}

	ret, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return nil
	}

	var profiles []*settings.Profile
	for i := 1; i <= ret.Len(); i++ {
		entry, ok := ret.RawGetInt(i).(*lua.LTable)
		if !ok {
			continue
		}
		if p := profileFromTable(entry); p != nil {
			profiles = append(profiles, p)
		}
	}
	return profiles
}

// profileFromTable converts one Lua profile table. A table without a
// name is dropped.
func profileFromTable(t *lua.LTable) *settings.Profile {
	name := tableString(t, "name")
	if name == "" {
		return nil
	}

	guid := settings.DeriveGUID(settings.Source(LuaNamespace), name)
	return &settings.Profile{
		GUID:                &guid,
		Name:                name,
		Source:              settings.Source(LuaNamespace),
		Commandline:         tableString(t, "commandline"),
		StartingDirectory:   tableString(t, "startingDirectory"),
		TabTitle:            tableString(t, "tabTitle"),
		ColorSchemeName:     tableString(t, "colorScheme"),
		Icon:                tableString(t, "icon"),
		BackgroundImagePath: tableString(t, "backgroundImage"),
		Hidden:              lua.LVAsBool(t.RawGetString("hidden")),
	}
}

// tableString reads a string field, "" when absent or not a string.
func tableString(t *lua.LTable, key string) string {
	if s, ok := t.RawGetString(key).(lua.LString); ok {
		return string(s)
	}
	return ""
}

// openSafeLibraries opens only the Lua libraries generator scripts may
// use. io, os, debug and package stay closed, and the base functions
// that reach the filesystem or compile arbitrary chunks are stripped;
// without that, dofile and friends would let a script read files
// outside the generator directory.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}
}
