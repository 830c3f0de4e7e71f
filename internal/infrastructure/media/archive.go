package media

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/assets"
)

// ArchiveLimits bounds what a masthead archive may contain.
type ArchiveLimits struct {
	MaxEntries      int
	MaxUncompressed int64
	EntryFile       string
}

// ArchiveEntry is a regular file of an archive with its sanitized,
// root-relative name.
type ArchiveEntry struct {
	Name string
	Size int64
	file *zip.File
}

// Open returns a reader over the entry's contents. Reads past the declared
// size fail so a lying header cannot inflate the extraction.
func (e *ArchiveEntry) Open() (io.ReadCloser, error) {
	rc, err := e.file.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", assets.ErrInvalidArchive, e.Name, err)
	}
	return rc, nil
}

// ReadArchive lists the files of a ZIP archive after checking entry names and
// limits. When every file sits in one top-level folder holding the entry file
// and the root has none, that folder is stripped from the names.
func ReadArchive(r io.ReaderAt, size int64, limits ArchiveLimits) ([]*ArchiveEntry, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", assets.ErrInvalidArchive, err)
	}

	var (
		entries []*ArchiveEntry
		total   uint64
		seen    = make(map[string]struct{})
	)
	for _, f := range zr.File {
		if f.FileInfo().IsDir() {
			continue
		}
		name, err := entryName(f.Name)
		if err != nil {
			return nil, err
		}
		if skipEntry(name) {
			continue
		}
		if !f.Mode().IsRegular() {
			return nil, fmt.Errorf("%w: %s is not a regular file", assets.ErrInvalidArchive, f.Name)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: duplicate entry %s", assets.ErrInvalidArchive, name)
		}
		seen[name] = struct{}{}

		if limits.MaxEntries > 0 && len(entries) >= limits.MaxEntries {
			return nil, fmt.Errorf("%w: archive has more than %d files", assets.ErrTooLarge, limits.MaxEntries)
		}
		total += f.UncompressedSize64
		if limits.MaxUncompressed > 0 && total > uint64(limits.MaxUncompressed) {
			return nil, fmt.Errorf("%w: archive expands beyond %d bytes", assets.ErrTooLarge, limits.MaxUncompressed)
		}

		entries = append(entries, &ArchiveEntry{Name: name, Size: int64(f.UncompressedSize64), file: f}) // #nosec G115 -- bounded by MaxUncompressed
	}

	entryFile := limits.EntryFile
	if entryFile == "" {
		entryFile = "index.html"
	}
	if _, ok := seen[entryFile]; ok {
		return entries, nil
	}
	if prefix := commonFolder(entries); prefix != "" {
		if _, ok := seen[prefix+entryFile]; ok {
			for _, e := range entries {
				e.Name = strings.TrimPrefix(e.Name, prefix)
			}
			return entries, nil
		}
	}
	return nil, assets.ErrMissingEntry
}

// entryName normalizes a ZIP entry name and rejects names that would escape
// the extraction directory.
func entryName(raw string) (string, error) {
	name := strings.ReplaceAll(raw, "\\", "/")
	if name == "" || strings.HasPrefix(name, "/") || strings.ContainsRune(name, 0) ||
		(len(name) > 1 && name[1] == ':') {
		return "", fmt.Errorf("%w: unsafe entry path %q", assets.ErrInvalidArchive, raw)
	}
	for _, segment := range strings.Split(name, "/") {
		if segment == ".." {
			return "", fmt.Errorf("%w: unsafe entry path %q", assets.ErrInvalidArchive, raw)
		}
	}
	cleaned := path.Clean(name)
	if cleaned == "." {
		return "", fmt.Errorf("%w: unsafe entry path %q", assets.ErrInvalidArchive, raw)
	}
	return cleaned, nil
}

// skipEntry drops metadata added by desktop archivers.
func skipEntry(name string) bool {
	base := path.Base(name)
	return strings.HasPrefix(name, "__MACOSX/") || base == ".DS_Store" || base == "Thumbs.db"
}

// commonFolder returns "dir/" when all entries live below the same top-level
// directory, and "" otherwise.
func commonFolder(entries []*ArchiveEntry) string {
	if len(entries) == 0 {
		return ""
	}
	var prefix string
	for _, e := range entries {
		i := strings.IndexByte(e.Name, '/')
		if i < 0 {
			return ""
		}
		top := e.Name[:i+1]
		if prefix == "" {
			prefix = top
		} else if top != prefix {
			return ""
		}
	}
	return prefix
}

// ErrEntryTooLarge is returned by CopyLimited when more than limit bytes are read.
var ErrEntryTooLarge = errors.New("entry exceeds remaining extraction budget")

// CopyLimited copies src to dst and fails once more than limit bytes arrive.
func CopyLimited(dst io.Writer, src io.Reader, limit int64) (int64, error) {
	n, err := io.Copy(dst, io.LimitReader(src, limit+1))
	if err != nil {
		return n, err
	}
	if n > limit {
		return n, fmt.Errorf("%w: %w", assets.ErrTooLarge, ErrEntryTooLarge)
	}
	return n, nil
}
