package controllers

import (
	"context"
	"net/http"
	"time"

	"ainamoi-portal-be/config"
	"ainamoi-portal-be/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// imageDeleter is the slice of the image collection the cascade needs
type imageDeleter interface {
	DeleteMany(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (*mongo.DeleteResult, error)
}

// deleteAlbumImages cascades an album deletion to its images. The album row
// is already gone at this point, so a failed cascade leaves orphaned images;
// the failure is logged for cleanup rather than failing the request.
func deleteAlbumImages(ctx context.Context, images imageDeleter, albumID primitive.ObjectID) {
	if _, err := images.DeleteMany(ctx, bson.M{"album_id": albumID}); err != nil {
		config.Log.WithError(err).Error("failed to cascade delete album images")
	}
}

// GetGallery returns all albums ordered by their display order, each with
// its images ordered the same way
func GetGallery(c *gin.Context) {
	albumCollection := config.GetCollection("gallery_albums")
	imageCollection := config.GetCollection("gallery_images")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := albumCollection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve albums"})
		return
	}
	defer cursor.Close(ctx)

	albums := []models.GalleryAlbum{}
	if err := cursor.All(ctx, &albums); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode albums"})
		return
	}

	type albumWithImages struct {
		models.GalleryAlbum
		Images []models.GalleryImage `json:"images"`
	}

	response := make([]albumWithImages, 0, len(albums))
	for _, album := range albums {
		imgCursor, err := imageCollection.Find(ctx, bson.M{"album_id": album.ID},
			options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve images"})
			return
		}

		images := []models.GalleryImage{}
		if err := imgCursor.All(ctx, &images); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode images"})
			return
		}

		response = append(response, albumWithImages{GalleryAlbum: album, Images: images})
	}

	c.JSON(http.StatusOK, gin.H{"albums": response})
}

// CreateAlbum inserts a new album
func CreateAlbum(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
		CoverImage  string `json:"cover_image"`
		Order       int    `json:"order"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	album := models.GalleryAlbum{
		ID:          primitive.NewObjectID(),
		Name:        input.Name,
		Description: input.Description,
		CoverImage:  input.CoverImage,
		Order:       input.Order,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	albumCollection := config.GetCollection("gallery_albums")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := albumCollection.InsertOne(ctx, album); err != nil {
		config.Log.WithError(err).Error("failed to insert album")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create album"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "album": album})
}

// UpdateAlbum applies partial updates to an album
func UpdateAlbum(c *gin.Context) {
	albumID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid album ID"})
		return
	}

	var input struct {
		Name        *string `json:"name,omitempty"`
		Description *string `json:"description,omitempty"`
		CoverImage  *string `json:"cover_image,omitempty"`
		Order       *int    `json:"order,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	update := bson.M{"updated_at": time.Now()}
	if input.Name != nil {
		update["name"] = *input.Name
	}
	if input.Description != nil {
		update["description"] = *input.Description
	}
	if input.CoverImage != nil {
		update["cover_image"] = *input.CoverImage
	}
	if input.Order != nil {
		update["order"] = *input.Order
	}

	albumCollection := config.GetCollection("gallery_albums")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := albumCollection.UpdateOne(ctx, bson.M{"_id": albumID}, bson.M{"$set": update})
	if err != nil {
		config.Log.WithError(err).Error("failed to update album")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update album"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteAlbum removes an album and cascades to its images
func DeleteAlbum(c *gin.Context) {
	albumID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid album ID"})
		return
	}

	albumCollection := config.GetCollection("gallery_albums")
	imageCollection := config.GetCollection("gallery_images")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := albumCollection.DeleteOne(ctx, bson.M{"_id": albumID})
	if err != nil {
		config.Log.WithError(err).Error("failed to delete album")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete album"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
		return
	}

	deleteAlbumImages(ctx, imageCollection, albumID)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// AddAlbumImage inserts an image into an album
func AddAlbumImage(c *gin.Context) {
	albumID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid album ID"})
		return
	}

	var input struct {
		Src     string `json:"src" binding:"required"`
		Caption string `json:"caption"`
		Order   int    `json:"order"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	albumCollection := config.GetCollection("gallery_albums")
	imageCollection := config.GetCollection("gallery_images")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := albumCollection.CountDocuments(ctx, bson.M{"_id": albumID})
	if err != nil || count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Album not found"})
		return
	}

	image := models.GalleryImage{
		ID:        primitive.NewObjectID(),
		AlbumID:   albumID,
		Src:       input.Src,
		Caption:   input.Caption,
		Order:     input.Order,
		CreatedAt: time.Now(),
	}

	if _, err := imageCollection.InsertOne(ctx, image); err != nil {
		config.Log.WithError(err).Error("failed to insert image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "image": image})
}

// DeleteAlbumImage removes one image
func DeleteAlbumImage(c *gin.Context) {
	imageID, err := primitive.ObjectIDFromHex(c.Param("imageId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image ID"})
		return
	}

	imageCollection := config.GetCollection("gallery_images")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := imageCollection.DeleteOne(ctx, bson.M{"_id": imageID})
	if err != nil {
		config.Log.WithError(err).Error("failed to delete image")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Image not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
