package routes

import (
	"encoding/json"
	"net/http"

	"github.com/agusbudigame/elegance-wheels-rental-hub/models"
	"github.com/agusbudigame/elegance-wheels-rental-hub/storage"
	"github.com/agusbudigame/elegance-wheels-rental-hub/utils"
	"github.com/google/uuid"
	"github.com/kataras/iris/v12"
	"gorm.io/datatypes"
)

type CarInput struct {
	Brand        string   `json:"brand" validate:"required"`
	Model        string   `json:"model" validate:"required"`
	Year         int      `json:"year" validate:"required,min=1950"`
	Color        string   `json:"color"`
	PricePerDay  float64  `json:"pricePerDay" validate:"required,min=0"`
	Transmission string   `json:"transmission"`
	FuelType     string   `json:"fuelType"`
	Seats        int      `json:"seats" validate:"min=0"`
	Features     []string `json:"features"`
	Description  string   `json:"description"`
	Base64Image  string   `json:"base64Image"`
	CategoryID   *uint    `json:"categoryID"`
	IsFeatured   bool     `json:"isFeatured"`
	IsAvailable  *bool    `json:"isAvailable"`
}

// GET /admin/cars — full inventory including unavailable cars.
func AdminListCars(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	q := storage.DB.Model(&models.Car{})
	if brand := ctx.URLParamDefault("brand", ""); brand != "" {
		q = q.Where("brand = ?", brand)
	}

	var total int64
	q.Count(&total)

	var cars []models.Car
	if err := q.Preload("Category").Offset((page - 1) * perPage).Limit(perPage).
		Order("created_at DESC").Find(&cars).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, cars, page, perPage, total)
}

// POST /admin/cars
func AdminCreateCar(ctx iris.Context) {
	var input CarInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	car := models.Car{
		Brand:        input.Brand,
		Model:        input.Model,
		Year:         input.Year,
		Color:        input.Color,
		PricePerDay:  input.PricePerDay,
		Transmission: input.Transmission,
		FuelType:     input.FuelType,
		Seats:        input.Seats,
		Description:  input.Description,
		CategoryID:   input.CategoryID,
		IsFeatured:   input.IsFeatured,
		IsAvailable:  true,
	}
	if input.IsAvailable != nil {
		car.IsAvailable = *input.IsAvailable
	}
	if input.Features != nil {
		if raw, err := json.Marshal(input.Features); err == nil {
			car.Features = datatypes.JSON(raw)
		}
	}
	if input.Base64Image != "" {
		car.ImageURL = storage.UploadBase64Image(input.Base64Image, "cars/"+uuid.NewString())
	}

	if err := storage.DB.Create(&car).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "car.create", "car", car.ID, nil, car)
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(iris.Map{"data": car, "meta": iris.Map{}, "links": iris.Map{}})
}

// PATCH /admin/cars/:id
func AdminUpdateCar(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var car models.Car
	if err := storage.DB.First(&car, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "car not found")
		return
	}

	var input CarInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	before := car
	car.Brand = input.Brand
	car.Model = input.Model
	car.Year = input.Year
	car.Color = input.Color
	car.PricePerDay = input.PricePerDay
	car.Transmission = input.Transmission
	car.FuelType = input.FuelType
	car.Seats = input.Seats
	car.Description = input.Description
	car.CategoryID = input.CategoryID
	car.IsFeatured = input.IsFeatured
	if input.IsAvailable != nil {
		car.IsAvailable = *input.IsAvailable
	}
	if input.Features != nil {
		if raw, err := json.Marshal(input.Features); err == nil {
			car.Features = datatypes.JSON(raw)
		}
	}
	if input.Base64Image != "" {
		if uploaded := storage.UploadBase64Image(input.Base64Image, "cars/"+uuid.NewString()); uploaded != "" {
			car.ImageURL = uploaded
		}
	}

	if err := storage.DB.Save(&car).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "car.update", "car", car.ID, before, car)
	ctx.JSON(iris.Map{"data": car, "meta": iris.Map{}, "links": iris.Map{}})
}

// PATCH /admin/cars/:id/availability { isAvailable }
func AdminSetCarAvailability(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var body struct {
		IsAvailable *bool `json:"isAvailable"`
	}
	if err := ctx.ReadJSON(&body); err != nil || body.IsAvailable == nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_payload", "isAvailable required")
		return
	}

	var car models.Car
	if err := storage.DB.First(&car, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "car not found")
		return
	}

	before := car
	car.IsAvailable = *body.IsAvailable
	if err := storage.DB.Save(&car).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "car.availability", "car", car.ID, before, car)
	ctx.JSON(iris.Map{"data": car, "meta": iris.Map{}, "links": iris.Map{}})
}
