package social

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"

	"github.com/proofdeck/server/internal/domain/share"
)

// Social card dimensions, the standard Open Graph image size
const (
	imageWidth  = 1200
	imageHeight = 630
)

// Renderer draws testimonial cards as PNG images
type Renderer struct {
	fontPath   string
	brandColor string
}

// NewRenderer creates a renderer. fontPath may be empty, in which case
// the built-in bitmap font is used.
func NewRenderer(fontPath, brandColor string) *Renderer {
	if brandColor == "" {
		brandColor = "#4F46E5"
	}
	return &Renderer{fontPath: fontPath, brandColor: brandColor}
}

// Render draws the testimonial card and returns the encoded PNG
func (r *Renderer) Render(t *share.Testimonial) ([]byte, error) {
	dc := gg.NewContext(imageWidth, imageHeight)

	// Background
	dc.SetHexColor("#FFFFFF")
	dc.Clear()

	// Brand band across the top
	dc.SetHexColor(r.brandColor)
	dc.DrawRectangle(0, 0, imageWidth, 16)
	dc.Fill()

	if r.fontPath != "" {
		if err := dc.LoadFontFace(r.fontPath, 42); err != nil {
			return nil, fmt.Errorf("failed to load font: %w", err)
		}
	}

	// Star row for rated testimonials
	if t.Rating > 0 {
		dc.SetHexColor("#F59E0B")
		stars := ""
		for i := 0; i < t.Rating; i++ {
			stars += "★ "
		}
		dc.DrawString(stars, 100, 120)
	}

	// Quote
	dc.SetHexColor("#111827")
	quote := fmt.Sprintf("\"%s\"", t.Quote)
	dc.DrawStringWrapped(quote, 100, 180, 0, 0, imageWidth-200, 1.5, gg.AlignLeft)

	// Author
	if t.Author != "" {
		dc.SetHexColor(r.brandColor)
		dc.DrawString(fmt.Sprintf("— %s", t.Author), 100, imageHeight-100)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode testimonial image: %w", err)
	}
	return buf.Bytes(), nil
}
