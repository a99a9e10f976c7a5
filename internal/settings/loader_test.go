package settings

import (
	"reflect"
	"testing"

	"github.com/google/uuid"
)

func TestLoadFromJSONToleratesComments(t *testing.T) {
	user := `{
		// the user's shells
		"profiles": [
			{"name": "Ash", "guid": "` + guidA + `"}, // trailing comment
		],
	}`
	s := validFixture(t, user, `{}`)

	if got := profileNames(s); !reflect.DeepEqual(got, []string{"Ash"}) {
		t.Errorf("profiles = %v, want [Ash]", got)
	}
}

func TestLoadParsesProfileFields(t *testing.T) {
	user := `{"profiles": [{
		"guid": "` + guidA + `",
		"name": "Full",
		"hidden": false,
		"colorScheme": "Campbell",
		"icon": "/usr/share/icons/x.png",
		"backgroundImage": "/usr/share/bg.png",
		"commandline": "/bin/zsh -l",
		"startingDirectory": "/work",
		"tabTitle": "work"
	}]}`
	s := loadFixture(t, user, `{}`)

	want := &Profile{
		Name:                "Full",
		Source:              SourceUser,
		ColorSchemeName:     "Campbell",
		Icon:                "/usr/share/icons/x.png",
		BackgroundImagePath: "/usr/share/bg.png",
		Commandline:         "/bin/zsh -l",
		StartingDirectory:   "/work",
		TabTitle:            "work",
	}
	g := uuid.MustParse(guidA)
	want.GUID = &g

	if got := s.Profiles()[0]; !reflect.DeepEqual(got, want) {
		t.Errorf("profile = %+v, want %+v", got, want)
	}
}

func TestLoadStampedSourceOverridesTree(t *testing.T) {
	// Generated profiles stamped into user settings carry an explicit
	// "source" and must keep it so their derived GUIDs stay stable.
	user := `{"profiles": [
		{"name": "Zsh", "source": "stormterm.shell"}
	]}`
	s := validFixture(t, user, `{}`)

	p := s.Profiles()[0]
	if p.Source != Source("stormterm.shell") {
		t.Errorf("source = %q, want stamped stormterm.shell", p.Source)
	}
	if want := DeriveGUID(Source("stormterm.shell"), "Zsh"); *p.GUID != want {
		t.Errorf("GUID = %s, want derived-from-stamped-source %s", p.GUID, want)
	}
}

func TestLoadInvalidGUIDTreatedAsAbsent(t *testing.T) {
	user := `{"profiles": [{"name": "Bad", "guid": "not-a-guid"}]}`
	s := validFixture(t, user, `{}`)

	p := s.Profiles()[0]
	if p.GUID == nil {
		t.Fatal("no GUID assigned")
	}
	if want := DeriveGUID(SourceUser, "Bad"); *p.GUID != want {
		t.Errorf("GUID = %s, want derived %s", p.GUID, want)
	}
}

func TestLoadGlobalsUserOverridesDefaults(t *testing.T) {
	user := `{"initialRows": 50}`
	def := `{
		"initialRows": 30,
		"initialCols": 100,
		"profiles": [{"name": "A"}]
	}`
	s := validFixture(t, user, def)

	_, ts, err := s.BuildSettings(nil)
	if err != nil {
		t.Fatalf("BuildSettings: %v", err)
	}
	if ts.InitialRows != 50 {
		t.Errorf("initialRows = %d, want user override 50", ts.InitialRows)
	}
	if ts.InitialCols != 100 {
		t.Errorf("initialCols = %d, want defaults 100", ts.InitialCols)
	}
}

func TestLoadSchemesMergeByName(t *testing.T) {
	user := `{"schemes": [{"name": "Shared", "background": "#222222"}],
		"profiles": [{"name": "A"}]}`
	def := `{"schemes": [
		{"name": "Shared", "background": "#111111"},
		{"name": "DefaultOnly", "background": "#333333"}
	]}`
	s := validFixture(t, user, def)

	schemes := s.Globals().ColorSchemes()
	if got := schemes["Shared"].Background.Hex(); got != "#222222" {
		t.Errorf("Shared background = %s, want user's #222222", got)
	}
	if _, ok := schemes["DefaultOnly"]; !ok {
		t.Error("default-only scheme missing")
	}
}

func TestEmbeddedDefaultsAreUsable(t *testing.T) {
	s := New()
	if err := s.LoadFromJSON([]byte("{}"), DefaultSettings()); err != nil {
		t.Fatalf("LoadFromJSON: %v", err)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate on embedded defaults: %v", err)
	}
	if len(s.Warnings()) != 0 {
		t.Errorf("embedded defaults produced warnings: %v", s.Warnings())
	}
	if len(s.Keybindings()) == 0 {
		t.Error("embedded defaults carry no keybindings")
	}
}
