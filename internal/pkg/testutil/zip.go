package testutil

import (
	"archive/zip"
	"bytes"
	"mime"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// CreateZip builds an archive holding files keyed by their slash separated
// names. Names ending in "/" become directory entries.
func CreateZip(t *testing.T, files map[string]string) []byte {
	t.Helper()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	writer := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := writer.Create(name)
		require.NoError(t, err)
		if _, err := w.Write([]byte(files[name])); err != nil {
			require.NoError(t, err)
		}
	}
	require.NoError(t, writer.Close())
	return buf.Bytes()
}

// MastheadZip is a minimal well formed masthead archive.
func MastheadZip(t *testing.T) []byte {
	t.Helper()

	return CreateZip(t, map[string]string{
		"index.html":   `<!doctype html><html><head><link rel="stylesheet" href="css/ad.css"></head><body><script src="js/ad.js"></script></body></html>`,
		"css/ad.css":   "body { margin: 0; }",
		"js/ad.js":     "console.log('ad');",
		"img/":         "",
		"img/logo.svg": `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><rect width="10" height="10"/></svg>`,
	})
}

func parseBoundary(contentType string) (string, string, error) {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", "", err
	}
	return mediaType, params["boundary"], nil
}
