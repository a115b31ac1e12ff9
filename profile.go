package texpack

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// Profile is a named, serializable bundle of packing configuration: the
// bin's maximum extent, rotation policy, and which strategy to run. It is
// the unit callers load from TOML rather than constructing a Sheet and
// Layout by hand for every run.
type Profile struct {
	Name        string `toml:"name"`
	MaxWidth    int    `toml:"max_width"`
	MaxHeight   int    `toml:"max_height"`
	AllowRotate bool   `toml:"allow_rotate"`
	Strategy    string `toml:"strategy"`
}

// DefaultProfile returns the library's baked-in default: a 4096x4096 bin
// (the common GPU texture size ceiling), rotation allowed, using MaxRects.
func DefaultProfile() *Profile {
	return &Profile{
		Name:        "default",
		MaxWidth:    4096,
		MaxHeight:   4096,
		AllowRotate: true,
		Strategy:    "max-rects",
	}
}

// builtinProfiles are presets available without a config file.
var builtinProfiles = map[string]*Profile{
	"gpu-max": {
		Name:        "gpu-max",
		MaxWidth:    4096,
		MaxHeight:   4096,
		AllowRotate: true,
		Strategy:    "max-rects",
	},
	"mobile-atlas": {
		Name:        "mobile-atlas",
		MaxWidth:    2048,
		MaxHeight:   2048,
		AllowRotate: true,
		Strategy:    "shelf",
	},
}

// BuiltinProfile looks up one of the library's baked-in presets by name
// ("gpu-max", "mobile-atlas"). The second return is false for any other name.
func BuiltinProfile(name string) (*Profile, bool) {
	p, ok := builtinProfiles[name]
	if !ok {
		return nil, false
	}
	cp := *p
	return &cp, true
}

// LoadProfile reads a Profile from a TOML file at path. Fields absent from
// the file keep DefaultProfile's values.
func LoadProfile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadProfileFromReader(f)
}

// LoadProfileFromReader reads a Profile from TOML data on r.
func LoadProfileFromReader(r io.Reader) (*Profile, error) {
	p := DefaultProfile()
	if _, err := toml.NewDecoder(r).Decode(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Sheet builds the Sheet this profile describes, with the given check
// predicate (nil installs the default bin-bounds check).
func (p *Profile) Sheet(check func(Rect) bool) *Sheet {
	return NewSheet(p.MaxWidth, p.MaxHeight, p.AllowRotate, check)
}

// Layout builds the Layout this profile's Strategy names, against a Sheet
// built from the profile's own size/rotation settings.
func (p *Profile) Layout(check func(Rect) bool) (Layout, error) {
	return NewLayout(p.Strategy, p.Sheet(check))
}
