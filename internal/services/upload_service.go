package services

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"insurance_backend/internal/imageprocessor"
	"insurance_backend/internal/logger"
	"insurance_backend/internal/models"
	"insurance_backend/internal/storage"
	"insurance_backend/pkg/apperrors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Multipart field names of the application document slots.
const (
	FieldIdentification = "identification"
	FieldIncomeProof    = "incomeProof"
	FieldAdditional     = "additional"
)

type UploadService interface {
	// UploadFile validates one file and stores it under folder.
	UploadFile(ctx context.Context, folder string, file *multipart.FileHeader) (*StoredFile, error)
	// UploadFiles stores a batch in parallel. Either every file is stored or
	// none is: on failure the objects already written are removed.
	UploadFiles(ctx context.Context, folder string, files []*multipart.FileHeader) ([]StoredFile, error)
	// UploadApplicationDocuments fills the named application slots from a
	// multipart form.
	UploadApplicationDocuments(ctx context.Context, form *multipart.Form) (*models.ApplicationDocuments, error)
	// StoreThumbnail stores a preview of an image file next to it. It
	// returns nil when the file has no preview (not an image, or disabled).
	StoreThumbnail(ctx context.Context, folder string, file *multipart.FileHeader) (*StoredFile, error)
	DeleteFile(ctx context.Context, key string) error
}

// StoredFile is an uploaded object: the public tuple plus its storage key.
type StoredFile struct {
	models.DocumentRef
	Key string `json:"-"`
}

type UploadConfig struct {
	MaxFileSize       int64
	AllowedTypes      []string // MIME types
	AllowedExtensions []string // with leading dot
	Parallelism       int
	ThumbnailSize     int // longest side in px, 0 disables previews
}

func GetDefaultUploadConfig() *UploadConfig {
	return &UploadConfig{
		MaxFileSize: 10 * 1024 * 1024, // 10MB
		AllowedTypes: []string{
			"application/pdf",
			"image/jpeg",
			"image/png",
			"application/msword",
			"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		},
		AllowedExtensions: []string{".pdf", ".jpg", ".jpeg", ".png", ".doc", ".docx"},
		Parallelism:       4,
		ThumbnailSize:     imageprocessor.DefaultMaxSide,
	}
}

type uploadService struct {
	storage    storage.Storage
	config     *UploadConfig
	thumbnails *imageprocessor.Processor
	now        func() time.Time
}

func NewUploadService(storage storage.Storage, config *UploadConfig) UploadService {
	if config == nil {
		config = GetDefaultUploadConfig()
	}
	if config.Parallelism <= 0 {
		config.Parallelism = 1
	}
	var thumbnails *imageprocessor.Processor
	if config.ThumbnailSize > 0 {
		thumbnails = imageprocessor.NewProcessor(config.ThumbnailSize, imageprocessor.DefaultQuality)
	}
	return &uploadService{
		storage:    storage,
		config:     config,
		thumbnails: thumbnails,
		now:        time.Now,
	}
}

func (s *uploadService) UploadFile(ctx context.Context, folder string, file *multipart.FileHeader) (*StoredFile, error) {
	mimeType, err := s.validateFile(file)
	if err != nil {
		return nil, err
	}

	key := s.objectKey(folder, file.Filename)

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(fmt.Errorf("failed to open uploaded file: %w", err))
	}
	defer src.Close()

	if err := s.storage.Save(ctx, key, src, mimeType); err != nil {
		return nil, apperrors.ErrStorageFailure.WithError(err)
	}

	return &StoredFile{
		DocumentRef: models.DocumentRef{
			URL:  s.storage.URL(key),
			Name: sanitizeFilename(file.Filename),
			Size: file.Size,
			Type: mimeType,
		},
		Key: key,
	}, nil
}

func (s *uploadService) UploadFiles(ctx context.Context, folder string, files []*multipart.FileHeader) ([]StoredFile, error) {
	if len(files) == 0 {
		return nil, apperrors.ErrNoFiles
	}

	// Reject the whole batch before touching storage if any file is invalid.
	for _, f := range files {
		if _, err := s.validateFile(f); err != nil {
			return nil, err
		}
	}

	results := make([]StoredFile, len(files))
	var (
		mu     sync.Mutex
		stored []string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Parallelism)

	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			res, err := s.UploadFile(gctx, folder, f)
			if err != nil {
				return err
			}
			results[i] = *res

			mu.Lock()
			stored = append(stored, res.Key)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.cleanup(context.WithoutCancel(ctx), stored)
		return nil, err
	}
	return results, nil
}

func (s *uploadService) UploadApplicationDocuments(ctx context.Context, form *multipart.Form) (*models.ApplicationDocuments, error) {
	if form == nil {
		return nil, apperrors.ErrNoFiles
	}

	identification := form.File[FieldIdentification]
	incomeProof := form.File[FieldIncomeProof]
	if len(identification) == 0 || len(incomeProof) == 0 {
		return nil, apperrors.ErrMissingRequiredDocuments
	}

	batch := []*multipart.FileHeader{identification[0], incomeProof[0]}
	batch = append(batch, form.File[FieldAdditional]...)

	stored, err := s.UploadFiles(ctx, "applications", batch)
	if err != nil {
		return nil, err
	}

	docs := &models.ApplicationDocuments{
		Identification: stored[0].DocumentRef,
		IncomeProof:    stored[1].DocumentRef,
	}
	for _, f := range stored[2:] {
		docs.Additional = append(docs.Additional, f.DocumentRef)
	}
	return docs, nil
}

func (s *uploadService) StoreThumbnail(ctx context.Context, folder string, file *multipart.FileHeader) (*StoredFile, error) {
	if s.thumbnails == nil || file == nil || !imageprocessor.Supports(detectMimeType(file)) {
		return nil, nil
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	thumb, err := s.thumbnails.Thumbnail(src)
	if err != nil {
		return nil, err
	}

	ext := ".jpg"
	if thumb.ContentType == "image/png" {
		ext = ".png"
	}
	key := s.objectKey(path.Join(folder, "thumbnails"), ext)
	if err := s.storage.Save(ctx, key, bytes.NewReader(thumb.Body), thumb.ContentType); err != nil {
		return nil, apperrors.ErrStorageFailure.WithError(err)
	}

	return &StoredFile{
		DocumentRef: models.DocumentRef{
			URL:  s.storage.URL(key),
			Name: "thumbnail" + ext,
			Size: int64(len(thumb.Body)),
			Type: thumb.ContentType,
		},
		Key: key,
	}, nil
}

func (s *uploadService) DeleteFile(ctx context.Context, key string) error {
	if err := s.storage.Delete(ctx, key); err != nil {
		return apperrors.ErrStorageFailure.WithError(err)
	}
	return nil
}

func (s *uploadService) cleanup(ctx context.Context, keys []string) {
	for _, key := range keys {
		if err := s.storage.Delete(ctx, key); err != nil {
			logger.CtxWithError(ctx, "Failed to remove object of a failed batch", err, "key", key)
		}
	}
}

// validateFile enforces the size limit and the extension and MIME
// allow-lists. It returns the effective MIME type.
func (s *uploadService) validateFile(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", apperrors.ErrNoFiles
	}
	if file.Size > s.config.MaxFileSize {
		return "", apperrors.ErrFileTooLarge.WithDetails(map[string]interface{}{
			"file":     file.Filename,
			"size":     file.Size,
			"maxBytes": s.config.MaxFileSize,
		})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !contains(s.config.AllowedExtensions, ext) {
		return "", apperrors.ErrInvalidFileType.WithDetails(map[string]string{"file": file.Filename})
	}

	mimeType := detectMimeType(file)
	if !contains(s.config.AllowedTypes, mimeType) {
		return "", apperrors.ErrInvalidFileType.WithDetails(map[string]string{
			"file": file.Filename,
			"type": mimeType,
		})
	}
	return mimeType, nil
}

func (s *uploadService) objectKey(folder, filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return path.Join(folder, s.now().UTC().Format("2006/01"), uuid.NewString()+ext)
}

// detectMimeType prefers the part's Content-Type and falls back to the
// extension when the client sent none or a generic one.
func detectMimeType(file *multipart.FileHeader) string {
	header := file.Header.Get("Content-Type")
	if header != "" {
		if mediaType, _, err := mime.ParseMediaType(header); err == nil && mediaType != "application/octet-stream" {
			return mediaType
		}
	}
	return getMimeTypeFromFilename(file.Filename)
}

func getMimeTypeFromFilename(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return "application/pdf"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" {
		return "document"
	}
	return name
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
