package routes

import (
	"github.com/agusbudigame/elegance-wheels-rental-hub/models"
	"github.com/agusbudigame/elegance-wheels-rental-hub/storage"
	"github.com/kataras/iris/v12"
)

// GetGallery lists event gallery entries, featured first then newest.
// An optional event_type query narrows the listing.
func GetGallery(ctx iris.Context) {
	eventType := ctx.URLParam("event_type")

	query := storage.DB.Model(&models.GalleryItem{})
	if eventType != "" {
		query = query.Where("event_type = ?", eventType)
	}

	var items []models.GalleryItem
	err := query.Order("is_featured DESC, created_at DESC").Find(&items).Error
	if err != nil {
		ctx.StatusCode(iris.StatusInternalServerError)
		ctx.JSON(iris.Map{"message": "Failed to fetch gallery"})
		return
	}

	ctx.JSON(iris.Map{
		"success": true,
		"data":    items,
		"count":   len(items),
	})
}
