package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"ainamoi-portal-be/config"
	"ainamoi-portal-be/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BlobStore is the attachment storage capability the upload handlers depend on
type BlobStore interface {
	Upload(ctx context.Context, filename, contentType string, src io.Reader) (string, error)
	Open(ctx context.Context, id string) (io.ReadCloser, int64, string, error)
}

var blobStore BlobStore

// InitUploadController wires the attachment store
func InitUploadController(store BlobStore) {
	blobStore = store
}

// UploadAttachment stores an image and returns the public URL the submission
// form carries on the issue payload. Size and type limits are whatever the
// storage backend enforces.
func UploadAttachment(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}
	defer file.Close()

	filename := uuid.New().String() + filepath.Ext(fileHeader.Filename)
	fileID, err := blobStore.Upload(c.Request.Context(), filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		config.Log.WithError(err).Error("failed to store attachment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	config.AttachmentUploads.Inc()

	baseURL := os.Getenv("PUBLIC_BASE_URL")
	c.JSON(http.StatusCreated, gin.H{
		"url": baseURL + "/uploads/" + fileID,
	})
}

// ServeAttachment streams an uploaded image back publicly
func ServeAttachment(c *gin.Context) {
	stream, length, contentType, err := blobStore.Open(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrBlobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Attachment not found"})
			return
		}
		config.Log.WithError(err).Error("failed to fetch attachment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attachment"})
		return
	}
	defer stream.Close()

	c.DataFromReader(http.StatusOK, length, contentType, stream, nil)
}
