package repository

import (
	"context"
	"errors"
	"io"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrBlobNotFound is returned when no stored attachment matches the ID
var ErrBlobNotFound = errors.New("attachment not found")

// BlobRepo stores attachment blobs in GridFS
type BlobRepo struct {
	db *mongo.Database
}

func NewBlobRepo(db *mongo.Database) *BlobRepo {
	return &BlobRepo{db: db}
}

// Upload stores a blob and returns its hex ID
func (r *BlobRepo) Upload(_ context.Context, filename, contentType string, src io.Reader) (string, error) {
	bucket, err := gridfs.NewBucket(r.db)
	if err != nil {
		return "", err
	}

	uploadOpts := options.GridFSUpload().SetMetadata(bson.M{
		"contentType": contentType,
	})

	fileID, err := bucket.UploadFromStream(filename, src, uploadOpts)
	if err != nil {
		return "", err
	}
	return fileID.Hex(), nil
}

// Open returns a reader over the stored blob along with its length and
// content type. The caller owns closing the reader.
func (r *BlobRepo) Open(_ context.Context, id string) (io.ReadCloser, int64, string, error) {
	fileID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, 0, "", ErrBlobNotFound
	}

	bucket, err := gridfs.NewBucket(r.db)
	if err != nil {
		return nil, 0, "", err
	}

	stream, err := bucket.OpenDownloadStream(fileID)
	if err != nil {
		if errors.Is(err, gridfs.ErrFileNotFound) {
			return nil, 0, "", ErrBlobNotFound
		}
		return nil, 0, "", err
	}

	gridFile := stream.GetFile()
	contentType := "application/octet-stream"
	if gridFile.Metadata != nil {
		if v, ok := gridFile.Metadata.Lookup("contentType").StringValueOK(); ok && v != "" {
			contentType = v
		}
	}

	return stream, gridFile.Length, contentType, nil
}
