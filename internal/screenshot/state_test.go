package screenshot

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"
)

func TestOneShotCapture(t *testing.T) {
	var s State
	require.False(t, s.WantsCapture())

	s.RequestCapture()
	require.True(t, s.WantsCapture())
	require.False(t, s.WantsCapture(), "one-shot request is consumed")

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	require.False(t, s.Captured(img))
	require.Equal(t, img, s.Last())
}

func TestSaveRequest(t *testing.T) {
	var s State
	s.RequestSave()
	require.True(t, s.WantsCapture())

	require.True(t, s.Captured(image.NewRGBA(image.Rect(0, 0, 1, 1))))
	require.False(t, s.Captured(image.NewRGBA(image.Rect(0, 0, 1, 1))), "save flag clears after one capture")
}

func TestContinuous(t *testing.T) {
	var s State
	s.SetContinuous(true)
	require.True(t, s.WantsCapture())
	require.True(t, s.WantsCapture())

	s.SetContinuous(false)
	require.False(t, s.WantsCapture())
}

func TestRegion(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 640, 480))
	require.Equal(t, image.Rect(0, 0, 100, 100), Region(img, 100, 1))
	require.Equal(t, image.Rect(0, 0, 200, 200), Region(img, 100, 2))
	require.Equal(t, image.Rect(0, 0, 150, 150), Region(img, 100, 1.5))
	require.Equal(t, image.Rect(0, 0, 100, 100), Region(img, 100, 0))

	small := image.NewRGBA(image.Rect(10, 10, 60, 40))
	require.Equal(t, image.Rect(10, 10, 60, 40), Region(small, 100, 1))
}

func TestWrite(t *testing.T) {
	test.NewTempApp(t)

	path := filepath.Join(t.TempDir(), "top_left.png")
	require.NoError(t, Write(storage.NewFileURI(path), []byte("png")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("png"), got)
}

func TestCropEmptyRegion(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	_, err := CropPNG(img, image.Rect(20, 20, 30, 30))
	require.ErrorIs(t, err, ErrEmptyRegion)
}
