package texpack

// Constructor builds a fresh Layout for the given sheet.
type Constructor func(sheet *Sheet) Layout

var strategies = map[string]Constructor{
	"shelf": func(sheet *Sheet) Layout {
		return NewShelfLayout(sheet)
	},
	"stack": func(sheet *Sheet) Layout {
		return NewStackLayout(sheet)
	},
	"max-rects": func(sheet *Sheet) Layout {
		return NewMaxRectsLayout(sheet)
	},
	"skyline": func(sheet *Sheet) Layout {
		return NewSkylineLayout(sheet)
	},
}

// NewLayout resolves a strategy name to a constructor and builds a Layout
// for the given sheet. Valid names are "shelf", "stack", "max-rects", and
// "skyline"; any other name returns ErrUnknownStrategy.
func NewLayout(name string, sheet *Sheet) (Layout, error) {
	ctor, ok := strategies[name]
	if !ok {
		return nil, ErrUnknownStrategy
	}
	return ctor(sheet), nil
}
