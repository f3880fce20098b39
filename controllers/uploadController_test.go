package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ainamoi-portal-be/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlobStore struct {
	uploadErr error
	openErr   error
	nextID    string
	filename  string
	blobs     map[string][]byte
	types     map[string]string
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{
		nextID: "64f1a2b3c4d5e6f708192a3b",
		blobs:  map[string][]byte{},
		types:  map[string]string{},
	}
}

func (s *fakeBlobStore) Upload(_ context.Context, filename, contentType string, src io.Reader) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return "", err
	}
	s.filename = filename
	s.blobs[s.nextID] = data
	s.types[s.nextID] = contentType
	return s.nextID, nil
}

func (s *fakeBlobStore) Open(_ context.Context, id string) (io.ReadCloser, int64, string, error) {
	if s.openErr != nil {
		return nil, 0, "", s.openErr
	}
	data, ok := s.blobs[id]
	if !ok {
		return nil, 0, "", repository.ErrBlobNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), int64(len(data)), s.types[id], nil
}

func setupUploadRouter(store *fakeBlobStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	InitUploadController(store)

	r := gin.New()
	r.POST("/api/uploads", UploadAttachment)
	r.GET("/uploads/:id", ServeAttachment)
	return r
}

func postImage(r *gin.Engine, filename string, content []byte) *httptest.ResponseRecorder {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, _ := mw.CreateFormFile("image", filename)
	part.Write(content)
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadAttachmentRoundTrip(t *testing.T) {
	t.Setenv("PUBLIC_BASE_URL", "https://portal.example.org")
	store := newFakeBlobStore()
	r := setupUploadRouter(store)

	photo := []byte("not really a png")
	w := postImage(r, "pothole.png", photo)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		URL string `json:"url"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "https://portal.example.org/uploads/"+store.nextID, resp.URL)

	// Stored name is a fresh UUID carrying the original extension
	assert.True(t, strings.HasSuffix(store.filename, ".png"), "filename %q", store.filename)
	assert.NotContains(t, store.filename, "pothole")

	// The returned URL path serves the same bytes back
	req := httptest.NewRequest(http.MethodGet, "/uploads/"+store.nextID, nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	require.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, photo, w2.Body.Bytes())
}

func TestUploadAttachmentRequiresFile(t *testing.T) {
	store := newFakeBlobStore()
	r := setupUploadRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.blobs)
}

func TestUploadAttachmentStoreFailure(t *testing.T) {
	store := newFakeBlobStore()
	store.uploadErr = errors.New("bucket unavailable")
	r := setupUploadRouter(store)

	w := postImage(r, "pothole.jpg", []byte("jpeg bytes"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServeAttachmentNotFound(t *testing.T) {
	store := newFakeBlobStore()
	r := setupUploadRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/uploads/ffffffffffffffffffffffff", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServeAttachmentStoreFailure(t *testing.T) {
	store := newFakeBlobStore()
	store.openErr = errors.New("cursor timeout")
	r := setupUploadRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/uploads/64f1a2b3c4d5e6f708192a3b", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
