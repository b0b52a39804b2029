// Package fonts describes which font files back each text family.
//
// Definitions are values: every With* method returns a new set and leaves the
// receiver untouched, so a theme can be built from one once and never see it
// change underneath.
package fonts

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/spf13/afero"
	"golang.org/x/image/font/gofont/gomono"
)

type Family int

const (
	Proportional Family = iota
	Monospace
)

func (f Family) String() string {
	if f == Monospace {
		return "monospace"
	}
	return "proportional"
}

const (
	DefaultRegular   = "default-regular"
	DefaultMonospace = "default-monospace"
	CustomName       = "my_font"
)

type Definitions struct {
	data     map[string]fyne.Resource
	families map[Family][]string
}

// Default holds the toolkit's bundled fonts only.
func Default() Definitions {
	return Definitions{
		data: map[string]fyne.Resource{
			DefaultRegular:   theme.DefaultTextFont(),
			DefaultMonospace: theme.DefaultTextMonospaceFont(),
		},
		families: map[Family][]string{
			Proportional: {DefaultRegular},
			Monospace:    {DefaultMonospace},
		},
	}
}

// WithCustomFont registers data under name with top priority for proportional
// text and lowest priority for monospace text.
func (d Definitions) WithCustomFont(name string, data []byte) Definitions {
	out := d.clone()
	out.data[name] = fyne.NewStaticResource(name, data)

	out.families[Proportional] = append([]string{name}, without(out.families[Proportional], name)...)
	out.families[Monospace] = append(without(out.families[Monospace], name), name)
	return out
}

// Family lists the font names for f in priority order.
func (d Definitions) Family(f Family) []string {
	return append([]string(nil), d.families[f]...)
}

// Resolve returns the highest-priority font of f that has data, or nil.
func (d Definitions) Resolve(f Family) fyne.Resource {
	for _, name := range d.families[f] {
		if res, ok := d.data[name]; ok && res != nil && len(res.Content()) > 0 {
			return res
		}
	}
	return nil
}

func (d Definitions) clone() Definitions {
	out := Definitions{
		data:     make(map[string]fyne.Resource, len(d.data)+1),
		families: make(map[Family][]string, len(d.families)),
	}
	for k, v := range d.data {
		out.data[k] = v
	}
	for k, v := range d.families {
		out.families[k] = append([]string(nil), v...)
	}
	return out
}

func without(names []string, name string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}

// LoadCustom returns the bytes of the custom font: the file at path when set,
// Go Mono otherwise.
func LoadCustom(fs afero.Fs, path string) ([]byte, error) {
	if path == "" {
		return gomono.TTF, nil
	}
	switch ext := filepath.Ext(path); ext {
	case ".ttf", ".otf", ".TTF", ".OTF":
	default:
		return nil, fmt.Errorf("font %s: unsupported extension %q", path, ext)
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("font %s is empty", path)
	}
	return data, nil
}
