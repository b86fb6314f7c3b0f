package services_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"strings"
	"testing"

	"insurance_backend/internal/services"
	"insurance_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pdfBody = []byte("%PDF-1.4 test document")

func TestUploadFile_Validation(t *testing.T) {
	cfg := services.GetDefaultUploadConfig()
	cfg.MaxFileSize = 64
	svc := services.NewUploadService(newMemoryStorage(), cfg)
	ctx := context.Background()

	t.Run("too large", func(t *testing.T) {
		_, err := svc.UploadFile(ctx, "docs", fileHeader(t, "big.pdf", "application/pdf", bytes.Repeat([]byte("a"), 65)))
		assert.ErrorIs(t, err, apperrors.ErrFileTooLarge)
	})

	t.Run("extension not allowed", func(t *testing.T) {
		_, err := svc.UploadFile(ctx, "docs", fileHeader(t, "setup.exe", "application/pdf", pdfBody))
		assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
	})

	t.Run("mime not allowed", func(t *testing.T) {
		_, err := svc.UploadFile(ctx, "docs", fileHeader(t, "notes.pdf", "text/plain", pdfBody))
		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, 415, appErr.HTTPCode)
	})
}

func TestUploadFile_StoresAndDescribes(t *testing.T) {
	store := newMemoryStorage()
	svc := services.NewUploadService(store, nil)

	res, err := svc.UploadFile(context.Background(), "claims", fileHeader(t, "xray.PNG", "", []byte("png bytes")))
	require.NoError(t, err)

	assert.Equal(t, "xray.PNG", res.Name)
	assert.Equal(t, "image/png", res.Type, "type falls back to the extension")
	assert.Equal(t, int64(len("png bytes")), res.Size)
	assert.True(t, strings.HasPrefix(res.Key, "claims/"))
	assert.True(t, strings.HasSuffix(res.Key, ".png"))
	assert.Equal(t, "https://cdn.test/"+res.Key, res.URL)
	assert.Equal(t, 1, store.count())
}

func TestUploadFiles_RemovesBatchOnFailure(t *testing.T) {
	store := newMemoryStorage()
	store.failWhen = func(_ string, body []byte) bool { return string(body) == "broken" }
	cfg := services.GetDefaultUploadConfig()
	cfg.Parallelism = 2
	svc := services.NewUploadService(store, cfg)

	form := buildForm(t,
		formFile{field: "files", name: "a.pdf", contentType: "application/pdf", body: []byte("first")},
		formFile{field: "files", name: "b.pdf", contentType: "application/pdf", body: []byte("broken")},
		formFile{field: "files", name: "c.pdf", contentType: "application/pdf", body: []byte("third")},
	)

	_, err := svc.UploadFiles(context.Background(), "docs", form.File["files"])
	assert.ErrorIs(t, err, apperrors.ErrStorageFailure)
	assert.Equal(t, 0, store.count())
}

func TestUploadFiles_InvalidFileStoresNothing(t *testing.T) {
	store := newMemoryStorage()
	svc := services.NewUploadService(store, nil)

	form := buildForm(t,
		formFile{field: "files", name: "a.pdf", contentType: "application/pdf", body: pdfBody},
		formFile{field: "files", name: "b.gif", contentType: "image/gif", body: []byte("GIF89a")},
	)

	_, err := svc.UploadFiles(context.Background(), "docs", form.File["files"])
	assert.ErrorIs(t, err, apperrors.ErrInvalidFileType)
	assert.Equal(t, 0, store.count())
	assert.Empty(t, store.deleted)
}

func TestUploadFiles_Empty(t *testing.T) {
	svc := services.NewUploadService(newMemoryStorage(), nil)
	_, err := svc.UploadFiles(context.Background(), "docs", []*multipart.FileHeader{})
	assert.ErrorIs(t, err, apperrors.ErrNoFiles)
}

func TestUploadApplicationDocuments(t *testing.T) {
	store := newMemoryStorage()
	svc := services.NewUploadService(store, nil)
	ctx := context.Background()

	form := buildForm(t,
		formFile{field: services.FieldIdentification, name: "passport.pdf", contentType: "application/pdf", body: pdfBody},
		formFile{field: services.FieldIncomeProof, name: "payslip.jpg", contentType: "image/jpeg", body: []byte("jpeg")},
		formFile{field: services.FieldAdditional, name: "letter.docx", body: []byte("docx")},
	)

	docs, err := svc.UploadApplicationDocuments(ctx, form)
	require.NoError(t, err)
	assert.True(t, docs.HasRequired())
	assert.Equal(t, "passport.pdf", docs.Identification.Name)
	assert.Equal(t, "payslip.jpg", docs.IncomeProof.Name)
	require.Len(t, docs.Additional, 1)
	assert.Equal(t, "letter.docx", docs.Additional[0].Name)
	assert.Equal(t, 3, store.count())

	missing := buildForm(t,
		formFile{field: services.FieldIdentification, name: "passport.pdf", contentType: "application/pdf", body: pdfBody},
	)
	_, err = svc.UploadApplicationDocuments(ctx, missing)
	assert.ErrorIs(t, err, apperrors.ErrMissingRequiredDocuments)
	assert.Equal(t, 3, store.count())
}
