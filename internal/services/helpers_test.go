package services_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"sync"
	"testing"
	"time"

	"insurance_backend/internal/cache"
	"insurance_backend/internal/models"
	"insurance_backend/internal/services/dto"

	"github.com/stretchr/testify/require"
)

type recordingInvalidator struct {
	mu     sync.Mutex
	emails []string
}

func (r *recordingInvalidator) Invalidate(_ context.Context, adminEmail string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.emails = append(r.emails, adminEmail)
}

// memoryStorage is an in-process object store that can be told to fail.
type memoryStorage struct {
	mu       sync.Mutex
	objects  map[string][]byte
	deleted  []string
	failWhen func(key string, body []byte) bool
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{objects: make(map[string][]byte)}
}

func (m *memoryStorage) Save(_ context.Context, key string, r io.Reader, _ string) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWhen != nil && m.failWhen(key, body) {
		return errors.New("bucket unavailable")
	}
	m.objects[key] = body
	return nil
}

func (m *memoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *memoryStorage) Exists(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[key]
	return ok, nil
}

func (m *memoryStorage) URL(key string) string {
	return "https://cdn.test/" + key
}

func (m *memoryStorage) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// memoryCache counts hits so tests can tell cached reads from fresh ones.
type memoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
	hits  int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[key]
	if !ok {
		return nil, cache.ErrMiss
	}
	c.hits++
	return v, nil
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.items, k)
	}
	return nil
}

type formFile struct {
	field       string
	name        string
	contentType string
	body        []byte
}

// buildForm encodes files as multipart and parses them back, yielding real
// *multipart.FileHeader values.
func buildForm(t *testing.T, files ...formFile) *multipart.Form {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, f.field, f.name))
		if f.contentType != "" {
			h.Set("Content-Type", f.contentType)
		}
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.body)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form
}

func fileHeader(t *testing.T, name, contentType string, body []byte) *multipart.FileHeader {
	t.Helper()
	form := buildForm(t, formFile{field: "file", name: name, contentType: contentType, body: body})
	return form.File["file"][0]
}

func validApplicationRequest(userID, policyID string) *dto.CreateApplicationRequest {
	return &dto.CreateApplicationRequest{
		UserID:         userID,
		PolicyID:       policyID,
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane@example.com",
		Phone:          "+1-555-0100",
		Occupation:     "Engineer",
		AnnualIncome:   90000,
		CoverageAmount: 250000,
		Documents: models.ApplicationDocuments{
			Identification: models.DocumentRef{URL: "https://cdn.test/id.pdf", Name: "id.pdf", Size: 1024, Type: "application/pdf"},
			IncomeProof:    models.DocumentRef{URL: "https://cdn.test/income.pdf", Name: "income.pdf", Size: 2048, Type: "application/pdf"},
		},
	}
}

func validClaimRequest(userID, policyID string) *dto.CreateClaimRequest {
	return &dto.CreateClaimRequest{
		UserID:           userID,
		PolicyID:         policyID,
		PolicyName:       "Health Basic",
		InsuranceCompany: "Acme Insurance",
		IncidentDate:     "2024-04-12",
		ClaimAmount:      "1500.00",
		Description:      "Hospital stay",
		Documents: []models.DocumentRef{
			{URL: "https://cdn.test/bill.pdf", Name: "bill.pdf", Size: 300, Type: "application/pdf"},
			{URL: "https://cdn.test/xray.png", Name: "xray.png", Size: 900, Type: "image/png"},
		},
	}
}
