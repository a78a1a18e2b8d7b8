package routes

import (
	"github.com/agusbudigame/elegance-wheels-rental-hub/models"
	"github.com/agusbudigame/elegance-wheels-rental-hub/storage"
	"github.com/kataras/iris/v12"
)

// GetTestimonials lists customer testimonials, featured first then newest.
func GetTestimonials(ctx iris.Context) {
	var testimonials []models.Testimonial
	err := storage.DB.Order("is_featured DESC, created_at DESC").
		Find(&testimonials).Error
	if err != nil {
		ctx.StatusCode(iris.StatusInternalServerError)
		ctx.JSON(iris.Map{"message": "Failed to fetch testimonials"})
		return
	}

	ctx.JSON(iris.Map{
		"success": true,
		"data":    testimonials,
		"count":   len(testimonials),
	})
}
