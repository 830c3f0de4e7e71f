//go:build unit
// +build unit

package media

import (
	"errors"
	"testing"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/assets"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectImage_PNG(t *testing.T) {
	info, err := InspectImage(testutil.PNG(t, 4, 3), ImageLimits{MaxWidth: 10, MaxHeight: 10})
	require.NoError(t, err)
	assert.Equal(t, "image/png", info.ContentType)
	assert.Equal(t, ".png", info.Ext)
	assert.Equal(t, 4, info.Width)
	assert.Equal(t, 3, info.Height)
}

func TestInspectImage_TooLarge(t *testing.T) {
	_, err := InspectImage(testutil.PNG(t, 20, 3), ImageLimits{MaxWidth: 10, MaxHeight: 10})
	assert.True(t, errors.Is(err, assets.ErrTooLarge))
}

func TestInspectImage_SVG(t *testing.T) {
	safe := []byte(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect width="10" height="10"/></svg>`)
	info, err := InspectImage(safe, ImageLimits{})
	require.NoError(t, err)
	assert.Equal(t, "image/svg+xml", info.ContentType)
	assert.Equal(t, ".svg", info.Ext)

	unsafe := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)
	_, err = InspectImage(unsafe, ImageLimits{})
	assert.True(t, errors.Is(err, assets.ErrUnsupportedMedia))
}

func TestInspectImage_Unsupported(t *testing.T) {
	_, err := InspectImage([]byte("just text"), ImageLimits{})
	assert.True(t, errors.Is(err, assets.ErrUnsupportedMedia))

	_, err = InspectImage(testutil.PDF(), ImageLimits{})
	assert.True(t, errors.Is(err, assets.ErrUnsupportedMedia))
}

func TestDetectResume(t *testing.T) {
	contentType, ext, err := DetectResume(testutil.PDF())
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", contentType)
	assert.Equal(t, ".pdf", ext)

	_, _, err = DetectResume(testutil.PNG(t, 1, 1))
	assert.True(t, errors.Is(err, assets.ErrUnsupportedMedia))
}

func TestIsZip(t *testing.T) {
	assert.True(t, IsZip(testutil.MastheadZip(t)))
	assert.False(t, IsZip([]byte("PK? not really")))
}

func TestContentType(t *testing.T) {
	tests := []struct {
		name string
		head []byte
		want string
	}{
		{"index.html", nil, "text/html; charset=utf-8"},
		{"js/AD.JS", nil, "text/javascript; charset=utf-8"},
		{"fonts/a.woff2", nil, "font/woff2"},
		{"noext", nil, "application/octet-stream"},
		{"image.bin", testutil.PNG(t, 1, 1), "image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentType(tt.name, tt.head))
		})
	}
}
