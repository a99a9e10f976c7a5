package settings

import (
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func TestApplyFirstRunChangesSubstitutesMarkers(t *testing.T) {
	s := validFixture(t, `{}`, string(DefaultSettings()))

	out := s.ApplyFirstRunChanges(SettingsTemplate(), TemplateInfo{
		ProductName: "stormterm",
		Version:     "1.2.3",
		Localize: func(key string) string {
			if key != loginShellNameKey {
				t.Errorf("localize key = %q, want %q", key, loginShellNameKey)
			}
			return "Login Shell"
		},
	})

	if strings.Contains(out, "%") {
		t.Errorf("unsubstituted marker left in output:\n%s", out)
	}
	for _, want := range []string{"stormterm", "1.2.3", "Login Shell"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	def := gjson.Get(out, "defaultProfile").String()
	if want := "{" + s.Globals().DefaultProfile().String() + "}"; def != want {
		t.Errorf("defaultProfile = %q, want %q", def, want)
	}
}

func TestApplyFirstRunChangesPrefersShellProfile(t *testing.T) {
	user := `{"profiles": [
		{"name": "Zsh", "guid": "` + guidA + `"},
		{"name": "Bash", "guid": "` + guidB + `"}
	], "defaultProfile": "` + guidB + `"}`
	s := validFixture(t, user, `{}`)

	out := s.ApplyFirstRunChanges(SettingsTemplate(), TemplateInfo{
		PreferredShellProfile: "Zsh",
	})

	if def := gjson.Get(out, "defaultProfile").String(); def != guidA {
		t.Errorf("defaultProfile = %q, want preferred shell %q", def, guidA)
	}
}

func TestApplyFirstRunChangesStampsWhenMarkerAbsent(t *testing.T) {
	s := validFixture(t, `{"profiles": [{"name": "A", "guid": "`+guidA+`"}]}`, `{}`)

	out := s.ApplyFirstRunChanges(`{"profiles": []}`, TemplateInfo{})

	if def := gjson.Get(out, "defaultProfile").String(); def != guidA {
		t.Errorf("defaultProfile = %q, want stamped %q", def, guidA)
	}
}

func TestStampGeneratedProfilesAppendsStubs(t *testing.T) {
	gen := &fakeGenerator{
		ns:       "stormterm.test",
		profiles:  []*Profile{{Name: "Gen"}},
	}
	s := validFixture(t, `{"profiles": [{"name": "Mine", "guid": "`+guidA+`"}]}`, `{}`, gen)

	out, err := s.StampGeneratedProfiles([]byte(`{"profiles": [{"name": "Mine", "guid": "` + guidA + `"}]}`))
	if err != nil {
		t.Fatalf("StampGeneratedProfiles: %v", err)
	}

	arr := gjson.GetBytes(out, "profiles").Array()
	if len(arr) != 2 {
		t.Fatalf("profiles in doc = %d, want 2", len(arr))
	}
	stub := arr[1]
	if got := stub.Get("name").String(); got != "Gen" {
		t.Errorf("stub name = %q, want Gen", got)
	}
	if got := stub.Get("source").String(); got != "stormterm.test" {
		t.Errorf("stub source = %q, want stormterm.test", got)
	}
	want := "{" + DeriveGUID(Source("stormterm.test"), "Gen").String() + "}"
	if got := stub.Get("guid").String(); got != want {
		t.Errorf("stub guid = %q, want %q", got, want)
	}
}

func TestStampGeneratedProfilesIsIdempotent(t *testing.T) {
	gen := &fakeGenerator{
		ns:       "stormterm.test",
		profiles:  []*Profile{{Name: "Gen"}},
	}
	s := validFixture(t, `{"profiles": [{"name": "Mine", "guid": "`+guidA+`"}]}`, `{}`, gen)

	once, err := s.StampGeneratedProfiles([]byte(`{}`))
	if err != nil {
		t.Fatalf("first stamp: %v", err)
	}
	twice, err := s.StampGeneratedProfiles(once)
	if err != nil {
		t.Fatalf("second stamp: %v", err)
	}

	if got := len(gjson.GetBytes(twice, "profiles").Array()); got != 1 {
		t.Errorf("profiles after restamp = %d, want 1", got)
	}
}
