package routes

import (
	"github.com/agusbudigame/elegance-wheels-rental-hub/models"
	"github.com/agusbudigame/elegance-wheels-rental-hub/storage"
	"github.com/kataras/iris/v12"
)

// GetCategories returns all car categories ordered by name.
func GetCategories(ctx iris.Context) {
	var categories []models.Category
	err := storage.DB.Order("name ASC").Find(&categories).Error
	if err != nil {
		ctx.StatusCode(iris.StatusInternalServerError)
		ctx.JSON(iris.Map{"message": "Failed to fetch categories"})
		return
	}

	ctx.JSON(iris.Map{
		"success": true,
		"data":    categories,
		"count":   len(categories),
	})
}
