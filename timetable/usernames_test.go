package timetable

import "testing"

func TestValidUsername(t *testing.T) {
	valid := []string{
		"jean.dupont",
		"marius.bernard1",
		"Anne.Sophie42",
	}
	for _, u := range valid {
		if !ValidUsername(u) {
			t.Errorf("ValidUsername(%q) = false, want true", u)
		}
	}

	invalid := []string{
		"",
		"jean",
		"jean.",
		".dupont",
		"jean.dupont.martin",
		"jean dupont",
		"jean.dup ont",
		"jean.dupont@school.fr",
		"12.dupont",
		"jean.3dupont",
		"not-an-email",
	}
	for _, u := range invalid {
		if ValidUsername(u) {
			t.Errorf("ValidUsername(%q) = true, want false", u)
		}
	}
}

func TestShortcutsNormalize(t *testing.T) {
	shortcuts := Shortcuts{
		"md":             "matheo.delaunay",
		"marius.bernard": "marius.bernard1",
	}
	cases := map[string]string{
		"md":             "matheo.delaunay",
		"MD":             "matheo.delaunay",
		"marius.bernard": "marius.bernard1",
		"jean.dupont":    "jean.dupont",
		"unknown":        "unknown",
	}
	for input, want := range cases {
		if got := shortcuts.Normalize(input); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}
