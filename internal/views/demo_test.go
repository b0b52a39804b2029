package views

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"gui-demos/internal/dropzone"
	"gui-demos/internal/logger"
)

func newDemo(t *testing.T) (*DemoView, fyne.Window) {
	t.Helper()
	a := test.NewTempApp(t)
	w := a.NewWindow("demo")
	t.Cleanup(w.Close)

	v := NewDemoView(w, dropzone.NewInspector(afero.NewMemMapFs()), logger.NoOp{})
	w.SetContent(v.Content())
	w.Resize(fyne.NewSize(400, 1000))
	v.Attach()
	return v, w
}

func TestDemoGreeting(t *testing.T) {
	v, _ := newDemo(t)
	require.Equal(t, "Hello 'Zzrk', age 18", v.Greeting())

	test.Tap(v.clickButton)
	require.Equal(t, "Hello 'Zzrk', age 19", v.Greeting())

	v.nameEntry.SetText("Ford")
	require.Equal(t, "Hello 'Ford', age 19", v.Greeting())

	v.ageSlider.SetValue(120)
	test.Tap(v.clickButton)
	require.Equal(t, "Hello 'Ford', age 120", v.Greeting())
}

func TestDemoCloseNeedsConfirmation(t *testing.T) {
	v, _ := newDemo(t)

	v.requestClose()
	require.True(t, v.guard.ShowingConfirmation())
	require.False(t, v.guard.AllowedToClose())

	test.Tap(v.cancelButton)
	require.False(t, v.guard.ShowingConfirmation())
	require.False(t, v.guard.AllowedToClose())

	v.requestClose()
	test.Tap(v.yesButton)
	require.True(t, v.guard.AllowedToClose())
	require.False(t, v.guard.ShowingConfirmation())
}

func TestDemoShowPicked(t *testing.T) {
	v, _ := newDemo(t)
	require.False(t, v.pickedBox.Visible())

	v.showPicked("/home/zzrk/notes.txt")

	require.True(t, v.pickedBox.Visible())
	require.Equal(t, "/home/zzrk/notes.txt", v.pickedLabel.Text)
}

func TestDemoDropShowsOverlayThenList(t *testing.T) {
	a := test.NewTempApp(t)
	w := a.NewWindow("demo")
	t.Cleanup(w.Close)

	fs := afero.NewMemMapFs()
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	require.NoError(t, afero.WriteFile(fs, "/drop/a.png", png, 0o644))

	v := NewDemoView(w, dropzone.NewInspector(fs), logger.NoOp{})
	w.SetContent(v.Content())

	queued := make(chan func(), 1)
	v.do = func(f func()) { queued <- f }

	v.handleDrop([]fyne.URI{storage.NewFileURI("/drop/a.png")})
	require.True(t, v.overlay.Visible())
	require.Equal(t, "Dropping files:\n\n/drop/a.png", v.overlay.Text())

	select {
	case f := <-queued:
		f()
	case <-time.After(2 * time.Second):
		t.Fatal("drop inspection did not finish")
	}

	require.False(t, v.overlay.Visible())
	require.True(t, v.droppedBox.Visible())
	require.Len(t, v.droppedList.Objects, 1)
	label := v.droppedList.Objects[0].(*widget.Label)
	require.Equal(t, "/drop/a.png (type: image/png, 16 bytes)", label.Text)
}

func TestDemoIgnoresEmptyDrop(t *testing.T) {
	v, _ := newDemo(t)
	v.handleDrop(nil)
	require.False(t, v.overlay.Visible())
	require.False(t, v.droppedBox.Visible())
}

func TestFontView(t *testing.T) {
	test.NewTempApp(t)
	v := NewFontView()
	require.NotNil(t, v.Content())
	require.Equal(t, "Edit this text field if you want", v.Text())
}
