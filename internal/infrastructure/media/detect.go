package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"path"
	"strings"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/assets"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/sanitize"

	"github.com/gabriel-vasile/mimetype"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// SniffLen is the number of leading bytes inspected when sniffing content.
const SniffLen = 3072

// Content types accepted for image uploads, with their canonical extension.
var imageTypes = []struct {
	mime string
	ext  string
}{
	{"image/png", ".png"},
	{"image/jpeg", ".jpg"},
	{"image/gif", ".gif"},
	{"image/webp", ".webp"},
	{"image/svg+xml", ".svg"},
}

// Content types accepted for resumes.
var resumeTypes = []struct {
	mime string
	ext  string
}{
	{"application/pdf", ".pdf"},
	{"application/msword", ".doc"},
	{"application/vnd.openxmlformats-officedocument.wordprocessingml.document", ".docx"},
}

// extensionTypes is consulted before sniffing when serving or extracting files.
// Browsers refuse scripts and stylesheets served with sniffed text/plain.
var extensionTypes = map[string]string{
	".html":  "text/html; charset=utf-8",
	".htm":   "text/html; charset=utf-8",
	".css":   "text/css; charset=utf-8",
	".js":    "text/javascript; charset=utf-8",
	".mjs":   "text/javascript; charset=utf-8",
	".json":  "application/json",
	".txt":   "text/plain; charset=utf-8",
	".xml":   "application/xml",
	".svg":   "image/svg+xml",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".webp":  "image/webp",
	".ico":   "image/x-icon",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".otf":   "font/otf",
	".mp4":   "video/mp4",
	".webm":  "video/webm",
	".mp3":   "audio/mpeg",
	".pdf":   "application/pdf",
}

// ImageInfo is the result of inspecting an image upload.
type ImageInfo struct {
	ContentType string
	Ext         string
	Width       int
	Height      int
}

// ImageLimits bounds accepted raster dimensions. Zero disables a bound.
type ImageLimits struct {
	MaxWidth  int
	MaxHeight int
}

// matchMIME walks the detected type and its parents until one of candidates matches.
func matchMIME(m *mimetype.MIME, candidates []struct {
	mime string
	ext  string
}) (string, string, bool) {
	for ; m != nil; m = m.Parent() {
		for _, c := range candidates {
			if m.Is(c.mime) {
				return c.mime, c.ext, true
			}
		}
	}
	return "", "", false
}

// InspectImage sniffs data, checks it is a supported image and reads its
// dimensions. SVG documents carry no pixel size and are checked for script.
func InspectImage(data []byte, limits ImageLimits) (*ImageInfo, error) {
	contentType, ext, ok := matchMIME(mimetype.Detect(data), imageTypes)
	if !ok {
		return nil, fmt.Errorf("%w: expected png, jpeg, gif, webp or svg", assets.ErrUnsupportedMedia)
	}

	info := &ImageInfo{ContentType: contentType, Ext: ext}
	if contentType == "image/svg+xml" {
		if err := sanitize.CheckSVG(data); err != nil {
			return nil, fmt.Errorf("%w: %v", assets.ErrUnsupportedMedia, err)
		}
		return info, nil
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: cannot decode image: %v", assets.ErrUnsupportedMedia, err)
	}
	if (limits.MaxWidth > 0 && cfg.Width > limits.MaxWidth) || (limits.MaxHeight > 0 && cfg.Height > limits.MaxHeight) {
		return nil, fmt.Errorf("%w: image is %dx%d, maximum is %dx%d", assets.ErrTooLarge, cfg.Width, cfg.Height, limits.MaxWidth, limits.MaxHeight)
	}
	info.Width = cfg.Width
	info.Height = cfg.Height
	return info, nil
}

// DetectResume checks that head starts a PDF or Word document.
func DetectResume(head []byte) (contentType, ext string, err error) {
	contentType, ext, ok := matchMIME(mimetype.Detect(head), resumeTypes)
	if !ok {
		return "", "", fmt.Errorf("%w: resume must be a pdf, doc or docx file", assets.ErrUnsupportedMedia)
	}
	return contentType, ext, nil
}

// IsZip reports whether head starts a ZIP archive.
func IsZip(head []byte) bool {
	for m := mimetype.Detect(head); m != nil; m = m.Parent() {
		if m.Is("application/zip") {
			return true
		}
	}
	return false
}

// ContentType returns the type served for name, using the extension table
// first and sniffing head otherwise.
func ContentType(name string, head []byte) string {
	if ct, ok := extensionTypes[strings.ToLower(path.Ext(name))]; ok {
		return ct
	}
	if len(head) == 0 {
		return "application/octet-stream"
	}
	return mimetype.Detect(head).String()
}
