package social

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proofdeck/server/internal/domain/share"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer("", "#4F46E5")

	data, err := r.Render(&share.Testimonial{
		Quote:  "Saved us hours every week",
		Author: "Pat Doe",
		Rating: 5,
	})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, imageWidth, img.Bounds().Dx())
	assert.Equal(t, imageHeight, img.Bounds().Dy())
}

func TestRenderer_RenderWithoutRatingOrAuthor(t *testing.T) {
	r := NewRenderer("", "")

	data, err := r.Render(&share.Testimonial{Quote: "Yes, absolutely"})
	require.NoError(t, err)

	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
}

func TestRenderer_MissingFontFails(t *testing.T) {
	r := NewRenderer("/nonexistent/font.ttf", "#4F46E5")

	_, err := r.Render(&share.Testimonial{Quote: "hi"})
	assert.Error(t, err)
}
