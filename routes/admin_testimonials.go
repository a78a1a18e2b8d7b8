package routes

import (
	"net/http"

	"github.com/agusbudigame/elegance-wheels-rental-hub/models"
	"github.com/agusbudigame/elegance-wheels-rental-hub/storage"
	"github.com/agusbudigame/elegance-wheels-rental-hub/utils"
	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
)

type TestimonialInput struct {
	CustomerName  string `json:"customerName" validate:"required"`
	CustomerTitle string `json:"customerTitle"`
	Content       string `json:"content" validate:"required"`
	Rating        int    `json:"rating" validate:"required,min=1,max=5"`
	Base64Image   string `json:"base64Image"`
	IsFeatured    bool   `json:"isFeatured"`
}

// GET /admin/testimonials
func AdminListTestimonials(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.Testimonial{})

	var total int64
	q.Count(&total)

	var testimonials []models.Testimonial
	if err := q.Offset((page - 1) * perPage).Limit(perPage).
		Order("created_at DESC").Find(&testimonials).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, testimonials, page, perPage, total)
}

// POST /admin/testimonials
func AdminCreateTestimonial(ctx iris.Context) {
	var input TestimonialInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	testimonial := models.Testimonial{
		CustomerName:  input.CustomerName,
		CustomerTitle: input.CustomerTitle,
		Content:       input.Content,
		Rating:        input.Rating,
		IsFeatured:    input.IsFeatured,
	}
	if input.Base64Image != "" {
		testimonial.ImageURL = storage.UploadBase64Image(input.Base64Image, "testimonials/"+uuid.NewString())
	}

	if err := storage.DB.Create(&testimonial).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "testimonial.create", "testimonial", testimonial.ID, nil, testimonial)
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"data": testimonial, "meta": iris.Map{}, "links": iris.Map{}})
}

// PATCH /admin/testimonials/:id/feature { isFeatured }
func AdminFeatureTestimonial(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var body struct {
		IsFeatured *bool `json:"isFeatured"`
	}
	if err := ctx.ReadJSON(&body); err != nil || body.IsFeatured == nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_payload", "isFeatured required")
		return
	}

	var testimonial models.Testimonial
	if err := storage.DB.First(&testimonial, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "testimonial not found")
		return
	}

	before := testimonial
	testimonial.IsFeatured = *body.IsFeatured
	if err := storage.DB.Save(&testimonial).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "testimonial.feature", "testimonial", testimonial.ID, before, testimonial)
	ctx.JSON(iris.Map{"data": testimonial, "meta": iris.Map{}, "links": iris.Map{}})
}
