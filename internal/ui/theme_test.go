package ui

import "testing"

func TestGetTheme_KnownAndUnknown(t *testing.T) {
	if got := GetTheme("Tuxedo"); got.Name != "Tuxedo" {
		t.Fatalf("GetTheme(Tuxedo).Name = %q", got.Name)
	}
	if got := GetTheme("NotATheme"); got.Name != "Tabby" {
		t.Fatalf("GetTheme(unknown).Name = %q, want Tabby default", got.Name)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	names := ThemeNames()
	if len(names) < 2 {
		t.Fatalf("ThemeNames = %v, want at least 2", names)
	}

	seen := map[string]bool{}
	current := names[0]
	for range names {
		seen[current] = true
		current = NextTheme(current)
	}
	if current != names[0] {
		t.Fatalf("cycle did not return to %q, got %q", names[0], current)
	}
	for _, name := range names {
		if !seen[name] {
			t.Fatalf("cycle skipped theme %q", name)
		}
	}
}

func TestNextTheme_UnknownResets(t *testing.T) {
	if got := NextTheme("NotATheme"); got != ThemeNames()[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, ThemeNames()[0])
	}
}

func TestThemes_HaveDistinctNames(t *testing.T) {
	seen := map[string]bool{}
	for _, name := range ThemeNames() {
		if seen[name] {
			t.Fatalf("duplicate theme name %q", name)
		}
		seen[name] = true
	}
}
