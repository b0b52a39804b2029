package dropzone

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

const unknown = "???"

// File describes one hovered or dropped file.
type File struct {
	Path    string
	Name    string
	MIME    string
	Size    int64
	HasSize bool
}

// HoverText is the overlay text shown while files hover over the window.
func HoverText(files []File) string {
	var b strings.Builder
	b.WriteString("Dropping files:\n")
	for _, f := range files {
		b.WriteByte('\n')
		switch {
		case f.Path != "":
			b.WriteString(f.Path)
		case f.MIME != "":
			b.WriteString(f.MIME)
		default:
			b.WriteString(unknown)
		}
	}
	return b.String()
}

// Describe renders a dropped file as one line for the "Dropped files" list.
func Describe(f File) string {
	info := f.Path
	if info == "" {
		info = f.Name
	}
	if info == "" {
		info = unknown
	}

	var extra []string
	if f.MIME != "" {
		extra = append(extra, "type: "+f.MIME)
	}
	if f.HasSize {
		extra = append(extra, fmt.Sprintf("%d bytes", f.Size))
	}
	if len(extra) > 0 {
		info += " (" + strings.Join(extra, ", ") + ")"
	}
	return info
}

// Inspector fills in size and content type for dropped URIs.
type Inspector struct {
	fs afero.Fs
}

func NewInspector(fs afero.Fs) *Inspector {
	return &Inspector{fs: fs}
}

// Inspect never fails: anything it cannot read is left blank.
func (i *Inspector) Inspect(uri fyne.URI) File {
	f := File{Name: uri.Name()}
	if uri.Scheme() != "file" {
		f.MIME = uri.MimeType()
		return f
	}
	f.Path = uri.Path()

	if info, err := i.fs.Stat(f.Path); err == nil && !info.IsDir() {
		f.Size = info.Size()
		f.HasSize = true
	}

	file, err := i.fs.Open(f.Path)
	if err != nil {
		return f
	}
	defer file.Close()

	if mt, err := mimetype.DetectReader(file); err == nil {
		f.MIME = mt.String()
	}
	return f
}

func (i *Inspector) InspectAll(uris []fyne.URI) []File {
	files := make([]File, 0, len(uris))
	for _, u := range uris {
		files = append(files, i.Inspect(u))
	}
	return files
}
