package fonts

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
)

func TestWithCustomFontPriorities(t *testing.T) {
	base := Default()
	defs := base.WithCustomFont(CustomName, gomono.TTF)

	require.Equal(t, []string{CustomName, DefaultRegular}, defs.Family(Proportional))
	require.Equal(t, []string{DefaultMonospace, CustomName}, defs.Family(Monospace))

	require.Equal(t, CustomName, defs.Resolve(Proportional).Name())
	require.Equal(t, base.Resolve(Monospace).Name(), defs.Resolve(Monospace).Name())

	// The receiver is untouched.
	require.Equal(t, []string{DefaultRegular}, base.Family(Proportional))
}

func TestWithCustomFontTwiceDoesNotDuplicate(t *testing.T) {
	defs := Default().WithCustomFont(CustomName, gomono.TTF).WithCustomFont(CustomName, gomono.TTF)
	require.Equal(t, []string{CustomName, DefaultRegular}, defs.Family(Proportional))
	require.Equal(t, []string{DefaultMonospace, CustomName}, defs.Family(Monospace))
}

func TestResolveSkipsEmptyFonts(t *testing.T) {
	defs := Default().WithCustomFont("empty", nil)
	require.Equal(t, DefaultRegular, defs.Family(Proportional)[1])
	require.NotEqual(t, "empty", defs.Resolve(Proportional).Name())
}

func TestLoadCustom(t *testing.T) {
	fs := afero.NewMemMapFs()

	data, err := LoadCustom(fs, "")
	require.NoError(t, err)
	require.Equal(t, gomono.TTF, data)

	require.NoError(t, afero.WriteFile(fs, "/fonts/Hack-Regular.ttf", []byte("ttf-bytes"), 0o644))
	data, err = LoadCustom(fs, "/fonts/Hack-Regular.ttf")
	require.NoError(t, err)
	require.Equal(t, []byte("ttf-bytes"), data)

	_, err = LoadCustom(fs, "/fonts/missing.ttf")
	require.Error(t, err)

	_, err = LoadCustom(fs, "/fonts/readme.txt")
	require.Error(t, err)
}
