package views

import (
	"context"
	"fmt"
	"image"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/sourcegraph/conc"

	"gui-demos/internal/gui/components"
	"gui-demos/internal/logger"
	"gui-demos/internal/screenshot"
	"gui-demos/internal/style"
)

// SaveFunc writes the top-left corner of a capture.
type SaveFunc func(img image.Image, pixelsPerPoint float32) error

// ScreenshotView captures its own window and shows the capture.
type ScreenshotView struct {
	window fyne.Window
	app    fyne.App
	theme  *style.Theme
	state  *screenshot.State
	logger logger.Logger
	path   string
	save   SaveFunc
	do     func(func())
	saves  conc.WaitGroup

	continuous  *widget.Check
	saveButton  *widget.Button
	takeButton  *widget.Button
	hoverLabel  *components.HoverLabel
	savedLabel  *widget.Label
	image       *canvas.Image
	spinner     *widget.ProgressBarInfinite
	controls    *fyne.Container
	mainContent *fyne.Container

	variant fyne.ThemeVariant
}

func NewScreenshotView(window fyne.Window, app fyne.App, th *style.Theme, path string, region int, log logger.Logger) *ScreenshotView {
	view := &ScreenshotView{
		window:  window,
		app:     app,
		theme:   th,
		state:   &screenshot.State{},
		logger:  log,
		path:    path,
		do:      fyne.Do,
		variant: theme.VariantLight,
	}
	view.save = func(img image.Image, ppp float32) error {
		return screenshot.SaveCorner(img, region, ppp, path)
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

func (v *ScreenshotView) initializeComponents() {
	v.continuous = widget.NewCheck("continuously take screenshots", v.setContinuous)
	v.saveButton = widget.NewButton(fmt.Sprintf("save to '%s'", v.path), v.state.RequestSave)
	v.takeButton = widget.NewButton("take screenshot!", v.state.RequestCapture)
	v.hoverLabel = components.NewHoverLabel("hover me!", v.hovered)
	v.hoverLabel.Hide()
	v.savedLabel = widget.NewLabel("")

	v.image = canvas.NewImageFromImage(nil)
	v.image.FillMode = canvas.ImageFillContain
	v.image.ScaleMode = canvas.ImageScaleFastest
	v.image.Hide()

	v.spinner = widget.NewProgressBarInfinite()
}

func (v *ScreenshotView) buildLayout() {
	v.controls = container.NewHBox(
		v.continuous,
		v.saveButton,
		layout.NewSpacer(),
		v.takeButton,
		v.hoverLabel,
	)

	v.mainContent = container.NewBorder(
		v.controls,
		v.savedLabel,
		nil,
		nil,
		container.NewStack(container.NewCenter(v.spinner), v.image),
	)
}

func (v *ScreenshotView) Content() fyne.CanvasObject {
	return v.mainContent
}

// Run drives Tick on the UI goroutine until ctx is done.
func (v *ScreenshotView) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			v.do(v.Tick)
		}
	}
}

// Tick takes a capture if one was requested. Must run on the UI goroutine.
func (v *ScreenshotView) Tick() {
	if !v.state.WantsCapture() {
		return
	}

	c := v.window.Canvas()
	img := c.Capture()
	if img == nil {
		return
	}
	save := v.state.Captured(img)
	v.showCapture(img)

	if save {
		ppp := pixelsPerPoint(img, c)
		v.saves.Go(func() {
			err := v.save(img, ppp)
			v.do(func() { v.saved(err) })
		})
	}
}

// Wait blocks until in-flight saves are written.
func (v *ScreenshotView) Wait() {
	v.saves.Wait()
}

func (v *ScreenshotView) setContinuous(on bool) {
	v.state.SetContinuous(on)
	if on {
		v.takeButton.Hide()
		v.hoverLabel.Show()
		return
	}
	v.hoverLabel.Hide()
	v.takeButton.Show()
	v.setVariant(theme.VariantLight)
}

func (v *ScreenshotView) hovered(in bool) {
	if in {
		v.setVariant(theme.VariantDark)
		return
	}
	v.setVariant(theme.VariantLight)
}

func (v *ScreenshotView) setVariant(variant fyne.ThemeVariant) {
	if v.variant == variant {
		return
	}
	v.variant = variant
	v.app.Settings().SetTheme(v.theme.WithVariant(variant))
}

func (v *ScreenshotView) showCapture(img image.Image) {
	v.image.Image = img
	v.image.Show()
	v.image.Refresh()
	v.spinner.Hide()
}

func (v *ScreenshotView) saved(err error) {
	if err != nil {
		v.logger.Error("ScreenshotView", err, map[string]interface{}{"path": v.path})
		v.savedLabel.SetText("save failed: " + err.Error())
		return
	}
	v.logger.Info("ScreenshotView", "corner saved", map[string]interface{}{"path": v.path})
	v.savedLabel.SetText(fmt.Sprintf("saved to '%s'", v.path))
}

func pixelsPerPoint(img image.Image, c fyne.Canvas) float32 {
	if w := c.Size().Width; w > 0 {
		return float32(img.Bounds().Dx()) / w
	}
	return c.Scale()
}
