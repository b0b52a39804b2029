package style

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"

	"gui-demos/internal/fonts"
)

func TestThemeSizes(t *testing.T) {
	th := New(fonts.Default(), DefaultStyles())

	require.EqualValues(t, 25, th.Size(theme.SizeNameHeadingText))
	require.EqualValues(t, 22, th.Size(theme.SizeNameSubHeadingText))
	require.EqualValues(t, 16, th.Size(theme.SizeNameText))
	require.EqualValues(t, 8, th.Size(theme.SizeNameCaptionText))
	require.EqualValues(t, 19, th.Size(SizeName(ContextHeading)))
	require.EqualValues(t, 12, th.Size(SizeName(Monospace)))

	// Sizes the table does not cover come from the default theme.
	require.Equal(t, theme.DefaultTheme().Size(theme.SizeNamePadding), th.Size(theme.SizeNamePadding))
}

func TestThemeIgnoresLaterStyleEdits(t *testing.T) {
	styles := DefaultStyles()
	th := New(fonts.Default(), styles)
	styles[Body] = TextStyle{Size: 99}

	require.EqualValues(t, 16, th.Size(theme.SizeNameText))
	s, ok := th.Style(Body)
	require.True(t, ok)
	require.EqualValues(t, 16, s.Size)
}

func TestThemeFonts(t *testing.T) {
	plain := New(fonts.Default(), DefaultStyles())
	require.Equal(t, theme.DefaultTheme().Font(fyne.TextStyle{Bold: true}).Name(),
		plain.Font(fyne.TextStyle{Bold: true}).Name())

	custom := New(fonts.Default().WithCustomFont(fonts.CustomName, gomono.TTF), DefaultStyles())
	require.Equal(t, fonts.CustomName, custom.Font(fyne.TextStyle{}).Name())
	// Monospace keeps the bundled font first.
	require.Equal(t, theme.DefaultTheme().Font(fyne.TextStyle{Monospace: true}).Name(),
		custom.Font(fyne.TextStyle{Monospace: true}).Name())
}

func TestWithVariant(t *testing.T) {
	test.NewTempApp(t)
	th := New(fonts.Default(), DefaultStyles())
	dark := th.WithVariant(theme.VariantDark)

	want := theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantDark)
	require.Equal(t, want, dark.Color(theme.ColorNameBackground, theme.VariantLight))
	require.Equal(t,
		theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantLight),
		th.Color(theme.ColorNameBackground, theme.VariantLight))
}

func TestSegment(t *testing.T) {
	seg := Segment(Heading2, "Sub Heading", true)
	require.Equal(t, "Sub Heading", seg.Text)
	require.True(t, seg.Style.TextStyle.Bold)
	require.Equal(t, SizeName(Heading2), seg.Style.SizeName)
}
