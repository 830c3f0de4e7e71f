package testutil

import (
	"bytes"
	"mime/multipart"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// FormFile is a file part of a multipart body.
type FormFile struct {
	Field   string
	Name    string
	Content []byte
}

// CreateMultipartBody encodes fields and files and returns the body together
// with its Content-Type header value.
func CreateMultipartBody(t *testing.T, fields map[string]string, files ...FormFile) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		require.NoError(t, writer.WriteField(k, fields[k]))
	}

	for _, f := range files {
		part, err := writer.CreateFormFile(f.Field, f.Name)
		require.NoError(t, err)
		_, err = part.Write(f.Content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

// CreateFileHeader parses a single file upload the way net/http would and
// returns its header.
func CreateFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	body, contentType := CreateMultipartBody(t, nil, FormFile{Field: "file", Name: name, Content: content})
	_, params, err := parseBoundary(contentType)
	require.NoError(t, err)

	reader := multipart.NewReader(body, params)
	form, err := reader.ReadForm(32 << 20) // 32 MB
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	headers := form.File["file"]
	require.Len(t, headers, 1)
	return headers[0]
}
