package app

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/assets"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/domain/content"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/infrastructure/media"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/config"
	"github.com/RusenOzkalEmiroglu/appective-production-sub001/internal/pkg/logger"

	"github.com/google/uuid"
)

const resumeFolder = "resumes"

type assetService struct {
	public   assets.Connector
	private  assets.Connector
	repo     assets.AssetRepository
	settings *config.StorageSettings
	logger   logger.Logger
	now      func() time.Time
}

// NewAssetService creates the upload pipeline. Public files are reachable
// under settings.PublicURLPrefix, private files only through the service.
func NewAssetService(public, private assets.Connector, repo assets.AssetRepository, settings *config.StorageSettings, logger logger.Logger) (assets.AssetService, error) {
	if public == nil || private == nil || repo == nil {
		return nil, errors.New("asset service requires public and private connectors and a repository")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &assetService{
		public:   public,
		private:  private,
		repo:     repo,
		settings: settings,
		logger:   logger,
		now:      timestamp,
	}, nil
}

func (s *assetService) publicPath(key string) string {
	return strings.TrimSuffix(s.settings.PublicURLPrefix, "/") + "/" + key
}

// keyFor maps a public path back to its storage key.
func (s *assetService) keyFor(publicPath string) (string, error) {
	prefix := strings.TrimSuffix(s.settings.PublicURLPrefix, "/") + "/"
	key, ok := strings.CutPrefix(publicPath, prefix)
	if !ok || key == "" {
		return "", fmt.Errorf("%w: %q is not below %s", assets.ErrInvalidPath, publicPath, prefix)
	}
	return strings.TrimSuffix(key, "/"), nil
}

// readUpload reads a whole upload, failing once it exceeds limit bytes.
func readUpload(file *multipart.FileHeader, limit int64) ([]byte, error) {
	if file.Size > limit {
		return nil, fmt.Errorf("%w: %d bytes, maximum is %d", assets.ErrTooLarge, file.Size, limit)
	}
	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w: maximum is %d bytes", assets.ErrTooLarge, limit)
	}
	return data, nil
}

func (s *assetService) UploadImage(ctx context.Context, file *multipart.FileHeader, folder string) (*assets.StoredImage, error) {
	folder = strings.ToLower(strings.TrimSpace(folder))
	if folder == "" {
		folder = assets.FolderGeneral
	}
	if _, ok := assets.ImageFolders[folder]; !ok {
		return nil, content.NewValidationError("unknown upload folder %q", folder)
	}

	data, err := readUpload(file, s.settings.MaxImageBytes)
	if err != nil {
		return nil, err
	}
	info, err := media.InspectImage(data, media.ImageLimits{
		MaxWidth:  s.settings.MaxImageWidth,
		MaxHeight: s.settings.MaxImageHeight,
	})
	if err != nil {
		return nil, err
	}

	key := folder + "/" + uuid.NewString() + info.Ext
	n, err := s.public.Save(ctx, key, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	asset := &assets.Asset{
		ID:          uuid.NewString(),
		Path:        s.publicPath(key),
		ContentType: info.ContentType,
		Size:        n,
		Kind:        assets.KindImage,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, asset); err != nil {
		s.discard(ctx, s.public, key)
		return nil, err
	}

	s.logger.Info("Stored image", "path", asset.Path, "size", n)
	return &assets.StoredImage{
		Path:        asset.Path,
		ContentType: info.ContentType,
		Size:        n,
		Width:       info.Width,
		Height:      info.Height,
	}, nil
}

func (s *assetService) UploadMasthead(ctx context.Context, file *multipart.FileHeader) (*assets.MastheadUpload, error) {
	if strings.ToLower(path.Ext(file.Filename)) != ".zip" {
		return nil, fmt.Errorf("%w: expected a .zip file", assets.ErrInvalidArchive)
	}
	if file.Size > s.settings.MaxArchiveBytes {
		return nil, fmt.Errorf("%w: %d bytes, maximum is %d", assets.ErrTooLarge, file.Size, s.settings.MaxArchiveBytes)
	}

	f, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	head := make([]byte, media.SniffLen)
	n, err := f.ReadAt(head, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}
	if !media.IsZip(head[:n]) {
		return nil, fmt.Errorf("%w: upload is not a zip archive", assets.ErrInvalidArchive)
	}

	entries, err := media.ReadArchive(f, file.Size, media.ArchiveLimits{
		MaxEntries:      s.settings.MaxArchiveEntries,
		MaxUncompressed: s.settings.MaxExtractedBytes,
		EntryFile:       s.settings.MastheadEntryFile,
	})
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	dir := assets.MastheadFolder + "/" + id
	records, err := s.extract(ctx, dir, id, entries)
	if err == nil {
		err = s.checkEntry(ctx, dir)
	}
	if err == nil {
		err = s.repo.CreateBatch(ctx, records)
	}
	if err != nil {
		if rmErr := s.public.DeleteTree(ctx, dir); rmErr != nil {
			s.logger.Warn("Failed to remove partial masthead", "dir", dir, "error", rmErr)
		}
		return nil, err
	}

	upload := &assets.MastheadUpload{
		ID:    id,
		Path:  s.publicPath(dir + "/" + s.settings.MastheadEntryFile),
		Files: len(records),
	}
	s.logger.Info("Extracted masthead", "id", id, "files", upload.Files)
	return upload, nil
}

// extract writes entries below dir while keeping the total within the
// extraction budget. Declared sizes are not trusted.
func (s *assetService) extract(ctx context.Context, dir, groupID string, entries []*media.ArchiveEntry) ([]*assets.Asset, error) {
	remaining := s.settings.MaxExtractedBytes
	records := make([]*assets.Asset, 0, len(entries))
	now := s.now()

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		written, contentType, err := s.extractEntry(ctx, dir+"/"+entry.Name, entry, remaining)
		if err != nil {
			return nil, err
		}
		remaining -= written
		records = append(records, &assets.Asset{
			ID:          uuid.NewString(),
			Path:        s.publicPath(dir + "/" + entry.Name),
			ContentType: contentType,
			Size:        written,
			Kind:        assets.KindMasthead,
			GroupID:     groupID,
			CreatedAt:   now,
		})
	}
	return records, nil
}

func (s *assetService) extractEntry(ctx context.Context, key string, entry *media.ArchiveEntry, budget int64) (int64, string, error) {
	rc, err := entry.Open()
	if err != nil {
		return 0, "", err
	}
	defer rc.Close()

	br := bufio.NewReaderSize(rc, media.SniffLen)
	head, _ := br.Peek(media.SniffLen)
	contentType := media.ContentType(entry.Name, head)

	pr, pw := io.Pipe()
	go func() {
		_, err := media.CopyLimited(pw, br, budget)
		if err != nil && !errors.Is(err, assets.ErrTooLarge) {
			err = fmt.Errorf("%w: %s: %v", assets.ErrInvalidArchive, entry.Name, err)
		}
		pw.CloseWithError(err)
	}()
	written, err := s.public.Save(ctx, key, pr)
	pr.Close()
	if err != nil {
		return 0, "", fmt.Errorf("failed to extract %s: %w", entry.Name, err)
	}
	return written, contentType, nil
}

func (s *assetService) checkEntry(ctx context.Context, dir string) error {
	ok, err := s.public.Exists(ctx, dir+"/"+s.settings.MastheadEntryFile)
	if err != nil {
		return err
	}
	if !ok {
		return assets.ErrMissingEntry
	}
	return nil
}

func (s *assetService) Open(ctx context.Context, publicPath string) (*assets.Object, error) {
	key, err := s.keyFor(publicPath)
	if err != nil {
		return nil, err
	}
	obj, err := s.public.Open(ctx, key)
	if err != nil {
		return nil, err
	}
	obj.ContentType = s.contentType(ctx, publicPath, obj)
	return obj, nil
}

// contentType prefers the type recorded at upload time, then the extension
// table, then sniffing.
func (s *assetService) contentType(ctx context.Context, lookup string, obj *assets.Object) string {
	asset, err := s.repo.GetByPath(ctx, lookup)
	if err == nil && asset.ContentType != "" {
		return asset.ContentType
	}
	if ct := media.ContentType(obj.Name, nil); ct != "application/octet-stream" {
		return ct
	}
	head := make([]byte, media.SniffLen)
	n, _ := io.ReadFull(obj, head)
	if _, err := obj.Seek(0, io.SeekStart); err != nil {
		s.logger.Warn("Failed to rewind file", "path", lookup, "error", err)
	}
	return media.ContentType(obj.Name, head[:n])
}

func (s *assetService) Delete(ctx context.Context, publicPath string) error {
	key, err := s.keyFor(publicPath)
	if err != nil {
		return err
	}

	if group, ok := mastheadGroup(key); ok {
		return s.deleteMasthead(ctx, group)
	}

	if err := s.public.Delete(ctx, key); err != nil {
		return err
	}
	if err := s.repo.DeleteByPath(ctx, publicPath); err != nil && !errors.Is(err, content.ErrNotFound) {
		return err
	}
	s.logger.Info("Deleted asset", "path", publicPath)
	return nil
}

// mastheadGroup extracts the upload ID from a key inside a masthead directory.
func mastheadGroup(key string) (string, bool) {
	rest, ok := strings.CutPrefix(key, assets.MastheadFolder+"/")
	if !ok {
		return "", false
	}
	group, _, _ := strings.Cut(rest, "/")
	return group, group != ""
}

func (s *assetService) deleteMasthead(ctx context.Context, group string) error {
	dir := assets.MastheadFolder + "/" + group
	records, err := s.repo.ListByGroup(ctx, group)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		exists, err := s.public.Exists(ctx, dir+"/"+s.settings.MastheadEntryFile)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("masthead %s: %w", group, content.ErrNotFound)
		}
	}

	if err := s.public.DeleteTree(ctx, dir); err != nil {
		return err
	}
	if err := s.repo.DeleteByGroup(ctx, group); err != nil && !errors.Is(err, content.ErrNotFound) {
		return err
	}
	s.logger.Info("Deleted masthead files", "id", group, "files", len(records))
	return nil
}

func (s *assetService) StoreResume(ctx context.Context, file *multipart.FileHeader) (string, error) {
	data, err := readUpload(file, s.settings.MaxResumeBytes)
	if err != nil {
		return "", err
	}
	contentType, ext, err := media.DetectResume(data)
	if err != nil {
		return "", err
	}

	key := resumeFolder + "/" + uuid.NewString() + ext
	n, err := s.private.Save(ctx, key, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	asset := &assets.Asset{
		ID:          uuid.NewString(),
		Path:        key,
		ContentType: contentType,
		Size:        n,
		Kind:        assets.KindResume,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Create(ctx, asset); err != nil {
		s.discard(ctx, s.private, key)
		return "", err
	}
	return key, nil
}

func (s *assetService) OpenResume(ctx context.Context, key string) (*assets.Object, error) {
	obj, err := s.private.Open(ctx, key)
	if err != nil {
		return nil, err
	}
	obj.ContentType = s.contentType(ctx, key, obj)
	return obj, nil
}

func (s *assetService) DeleteResume(ctx context.Context, key string) error {
	if err := s.private.Delete(ctx, key); err != nil {
		return err
	}
	if err := s.repo.DeleteByPath(ctx, key); err != nil && !errors.Is(err, content.ErrNotFound) {
		return err
	}
	return nil
}

func (s *assetService) discard(ctx context.Context, connector assets.Connector, key string) {
	if err := connector.Delete(ctx, key); err != nil {
		s.logger.Warn("Failed to remove orphaned file", "key", key, "error", err)
	}
}
