package routes

import (
	"net/http"

	"github.com/agusbudigame/elegance-wheels-rental-hub/models"
	"github.com/agusbudigame/elegance-wheels-rental-hub/storage"
	"github.com/agusbudigame/elegance-wheels-rental-hub/utils"
	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
)

type GalleryItemInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	EventType   string `json:"eventType"`
	Base64Image string `json:"base64Image"`
	IsFeatured  bool   `json:"isFeatured"`
}

// GET /admin/gallery
func AdminListGallery(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.GalleryItem{})

	var total int64
	q.Count(&total)

	var items []models.GalleryItem
	if err := q.Offset((page - 1) * perPage).Limit(perPage).
		Order("created_at DESC").Find(&items).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, items, page, perPage, total)
}

// POST /admin/gallery
func AdminCreateGalleryItem(ctx iris.Context) {
	var input GalleryItemInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	item := models.GalleryItem{
		Title:       input.Title,
		Description: input.Description,
		EventType:   input.EventType,
		IsFeatured:  input.IsFeatured,
	}
	if input.Base64Image != "" {
		item.ImageURL = storage.UploadBase64Image(input.Base64Image, "gallery/"+uuid.NewString())
	}

	if err := storage.DB.Create(&item).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "gallery.create", "gallery_item", item.ID, nil, item)
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"data": item, "meta": iris.Map{}, "links": iris.Map{}})
}

// PATCH /admin/gallery/:id/feature { isFeatured }
func AdminFeatureGalleryItem(ctx iris.Context) {
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

	var item models.GalleryItem
	if err := storage.DB.First(&item, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "gallery item not found")
		return
	}

	before := item
	item.IsFeatured = *body.IsFeatured
	if err := storage.DB.Save(&item).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "gallery.feature", "gallery_item", item.ID, before, item)
	ctx.JSON(iris.Map{"data": item, "meta": iris.Map{}, "links": iris.Map{}})
}
