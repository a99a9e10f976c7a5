package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeSettingsFile(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings file: %v", err)
	}
	return path
}

func TestServiceLoadMissingFileUsesDefaults(t *testing.T) {
	sv := NewService(filepath.Join(t.TempDir(), "settings.json"))

	s, err := sv.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(s.Profiles()) == 0 {
		t.Fatal("no profiles from defaults")
	}
	if got := sv.Current(); got != s {
		t.Error("Current() doesn't return the loaded settings")
	}
}

func TestServiceLoadReadsUserFile(t *testing.T) {
	path := writeSettingsFile(t, t.TempDir(), `{
		// user settings
		"profiles": [{"name": "Mine"}],
		"defaultProfile": "Mine"
	}`)
	sv := NewService(path)

	s, err := sv.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := s.FindProfile(s.Globals().DefaultProfile())
	if def == nil || def.Name != "Mine" {
		t.Errorf("default profile = %+v, want Mine", def)
	}
}

func TestServiceLoadSurvivesAllUserProfilesHidden(t *testing.T) {
	// The built-in defaults always contribute visible profiles, so a user
	// file full of hidden profiles never leaves the service without
	// usable settings.
	path := writeSettingsFile(t, t.TempDir(), `{"profiles": [
		{"name": "Secret", "hidden": true},
		{"name": "AlsoSecret", "hidden": true}
	]}`)
	sv := NewService(path)

	s, err := sv.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, name := range profileNames(s) {
		if name == "Secret" || name == "AlsoSecret" {
			t.Errorf("hidden profile %q survived", name)
		}
	}
	if len(s.Profiles()) == 0 {
		t.Fatal("no visible profiles from defaults")
	}
}

func TestServiceGeneratorsRunOnLoad(t *testing.T) {
	path := writeSettingsFile(t, t.TempDir(), `{}`)
	gen := &fakeGenerator{ns: "test.gen", profiles: []*Profile{{Name: "Generated"}}}
	sv := NewService(path, WithServiceGenerators(gen))

	s, err := sv.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	found := false
	for _, p := range s.Profiles() {
		if p.Name == "Generated" {
			found = true
		}
	}
	if !found {
		t.Error("generated profile missing after service load")
	}
}

func TestServiceWatchReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeSettingsFile(t, dir, `{"profiles": [{"name": "Before"}]}`)

	reloaded := make(chan *Settings, 1)
	sv := NewService(path,
		WithPollInterval(10*time.Millisecond),
		WithReloadHandler(func(s *Settings, err error) {
			if err == nil {
				select {
				case reloaded <- s:
				default:
				}
			}
		}))
	if _, err := sv.Load(); err != nil {
		t.Fatalf("initial Load: %v", err)
	}
	sv.Watch()
	defer sv.Close()

	// Push the mtime forward explicitly; coarse filesystem timestamps
	// would otherwise make this flaky.
	if err := os.WriteFile(path, []byte(`{"profiles": [{"name": "After"}]}`), 0o644); err != nil {
		t.Fatalf("rewrite settings: %v", err)
	}
	future := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	select {
	case s := <-reloaded:
		names := profileNames(s)
		found := false
		for _, n := range names {
			if n == "After" {
				found = true
			}
		}
		if !found {
			t.Errorf("reloaded profiles = %v, want to include After", names)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no reload observed")
	}
}

func TestServiceCloseIsIdempotent(t *testing.T) {
	sv := NewService(filepath.Join(t.TempDir(), "settings.json"))
	sv.Watch()
	sv.Close()
	sv.Close()
}
