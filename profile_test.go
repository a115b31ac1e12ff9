package texpack

import (
	"strings"
	"testing"
)

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile()
	if p.MaxWidth != 4096 || p.MaxHeight != 4096 {
		t.Errorf("expected a 4096x4096 default profile, got %dx%d", p.MaxWidth, p.MaxHeight)
	}
	if p.Strategy != "max-rects" {
		t.Errorf("expected max-rects as the default strategy, got %s", p.Strategy)
	}
}

func TestBuiltinProfiles(t *testing.T) {
	gpu, ok := BuiltinProfile("gpu-max")
	if !ok || gpu.MaxWidth != 4096 {
		t.Fatalf("expected a gpu-max builtin profile")
	}

	mobile, ok := BuiltinProfile("mobile-atlas")
	if !ok || mobile.MaxWidth != 2048 {
		t.Fatalf("expected a mobile-atlas builtin profile")
	}

	if _, ok := BuiltinProfile("nonexistent"); ok {
		t.Error("expected BuiltinProfile to report false for an unknown name")
	}
}

func TestLoadProfileFromReader(t *testing.T) {
	doc := `
name = "atlas"
max_width = 512
max_height = 256
allow_rotate = true
strategy = "shelf"
`
	p, err := LoadProfileFromReader(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name != "atlas" || p.MaxWidth != 512 || p.MaxHeight != 256 || p.Strategy != "shelf" {
		t.Errorf("unexpected profile: %+v", p)
	}
}

func TestProfileLayoutBuildsNamedStrategy(t *testing.T) {
	p := &Profile{MaxWidth: 8, MaxHeight: 8, Strategy: "stack"}
	l, err := p.Layout(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := l.(*StackLayout); !ok {
		t.Errorf("expected a *StackLayout, got %T", l)
	}
}
