package style

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"gui-demos/internal/fonts"
)

// Name identifies a text style.
type Name string

const (
	Heading        Name = "Heading"
	Heading2       Name = "Heading2"
	ContextHeading Name = "ContextHeading"
	Body           Name = "Body"
	Monospace      Name = "Monospace"
	Button         Name = "Button"
	Small          Name = "Small"
)

type TextStyle struct {
	Size   float32
	Family fonts.Family
}

// Styles maps style names to sizes and families.
type Styles map[Name]TextStyle

func DefaultStyles() Styles {
	return Styles{
		Heading:        {Size: 25, Family: fonts.Proportional},
		Heading2:       {Size: 22, Family: fonts.Proportional},
		ContextHeading: {Size: 19, Family: fonts.Proportional},
		Body:           {Size: 16, Family: fonts.Proportional},
		Monospace:      {Size: 12, Family: fonts.Monospace},
		Button:         {Size: 12, Family: fonts.Proportional},
		Small:          {Size: 8, Family: fonts.Proportional},
	}
}

// SizeName is the theme size name that resolves to the style's size.
func SizeName(n Name) fyne.ThemeSizeName {
	return fyne.ThemeSizeName("style." + string(n))
}

// builtin maps the toolkit's own text sizes onto the style table.
var builtin = map[fyne.ThemeSizeName]Name{
	theme.SizeNameHeadingText:    Heading,
	theme.SizeNameSubHeadingText: Heading2,
	theme.SizeNameText:           Body,
	theme.SizeNameCaptionText:    Small,
}

// Theme is a fyne.Theme built once from font definitions and text styles.
type Theme struct {
	base    fyne.Theme
	fonts   fonts.Definitions
	styles  Styles
	sizes   map[fyne.ThemeSizeName]float32
	variant *fyne.ThemeVariant
}

var _ fyne.Theme = (*Theme)(nil)

func New(defs fonts.Definitions, styles Styles) *Theme {
	t := &Theme{
		base:   theme.DefaultTheme(),
		fonts:  defs,
		styles: make(Styles, len(styles)),
		sizes:  make(map[fyne.ThemeSizeName]float32, len(styles)+len(builtin)),
	}
	for n, s := range styles {
		t.styles[n] = s
		t.sizes[SizeName(n)] = s.Size
	}
	for size, n := range builtin {
		if s, ok := styles[n]; ok {
			t.sizes[size] = s.Size
		}
	}
	return t
}

// WithVariant returns a copy that ignores the system variant and always uses v.
func (t *Theme) WithVariant(v fyne.ThemeVariant) *Theme {
	cp := *t
	cp.variant = &v
	return &cp
}

// Style returns the named style, if the theme knows it.
func (t *Theme) Style(n Name) (TextStyle, bool) {
	s, ok := t.styles[n]
	return s, ok
}

func (t *Theme) Color(n fyne.ThemeColorName, v fyne.ThemeVariant) color.Color {
	if t.variant != nil {
		v = *t.variant
	}
	return t.base.Color(n, v)
}

func (t *Theme) Font(s fyne.TextStyle) fyne.Resource {
	if s.Symbol {
		return t.base.Font(s)
	}
	family := fonts.Proportional
	if s.Monospace {
		family = fonts.Monospace
	}
	res := t.fonts.Resolve(family)
	if res == nil || isBundled(res) {
		// The bundled fonts ship bold and italic faces; keep them.
		return t.base.Font(s)
	}
	return res
}

func (t *Theme) Icon(n fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(n)
}

func (t *Theme) Size(n fyne.ThemeSizeName) float32 {
	if size, ok := t.sizes[n]; ok {
		return size
	}
	return t.base.Size(n)
}

func isBundled(res fyne.Resource) bool {
	name := res.Name()
	return name == theme.DefaultTextFont().Name() || name == theme.DefaultTextMonospaceFont().Name()
}

// Segment renders text in the named style inside a RichText.
func Segment(n Name, text string, bold bool) *widget.TextSegment {
	ts := fyne.TextStyle{Bold: bold, Monospace: n == Monospace}
	return &widget.TextSegment{
		Text: text,
		Style: widget.RichTextStyle{
			SizeName:  SizeName(n),
			TextStyle: ts,
			ColorName: theme.ColorNameForeground,
			Inline:    false,
		},
	}
}
