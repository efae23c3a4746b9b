package platform

import "testing"

func TestSpecFor_KnownPlatforms(t *testing.T) {
	t.Parallel()

	for _, name := range Known() {
		s := SpecFor(name)
		if s.MaxLength <= 0 {
			t.Fatalf("SpecFor(%q): missing max length", name)
		}
		if s.Style == "" || s.Format == "" {
			t.Fatalf("SpecFor(%q): incomplete spec %+v", name, s)
		}
	}
}

func TestSpecFor_CaseInsensitive(t *testing.T) {
	t.Parallel()

	if got, want := SpecFor("Twitter"), SpecFor("twitter"); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if got := SpecFor("  LINKEDIN "); got.MaxLength != 3000 {
		t.Fatalf("expected linkedin spec, got %+v", got)
	}
}

func TestSpecFor_UnknownFallsBackToFacebook(t *testing.T) {
	t.Parallel()

	fb := SpecFor(Facebook)
	for _, name := range []string{"myspace", "", "threads"} {
		if got := SpecFor(name); got != fb {
			t.Fatalf("SpecFor(%q): expected facebook spec %+v, got %+v", name, fb, got)
		}
	}
}

func TestSpecFor_TwitterLimit(t *testing.T) {
	t.Parallel()

	if got := SpecFor(Twitter).MaxLength; got != 280 {
		t.Fatalf("expected 280, got %d", got)
	}
}
