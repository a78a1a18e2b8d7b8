package routes

import (
	"github.com/agusbudigame/elegance-wheels-rental-hub/models"
	"github.com/agusbudigame/elegance-wheels-rental-hub/storage"
	"github.com/agusbudigame/elegance-wheels-rental-hub/utils"
	"github.com/kataras/iris/v12"
)

// CategoryAll is the sentinel meaning "no category filter".
const CategoryAll = "all"

// FilterByCategory returns the cars whose category name equals the
// selection, preserving order. The sentinel "all" (or an empty selection)
// returns the input unchanged.
func FilterByCategory(cars []models.Car, category string) []models.Car {
	if category == "" || category == CategoryAll {
		return cars
	}
	filtered := make([]models.Car, 0, len(cars))
	for _, car := range cars {
		if car.Category != nil && car.Category.Name == category {
			filtered = append(filtered, car)
		}
	}
	return filtered
}

// GetCars lists the available fleet, featured cars first. The category
// filter runs in memory over the fetched list, like the storefront does.
func GetCars(ctx iris.Context) {
	var cars []models.Car
	err := storage.DB.Preload("Category").
		Where("is_available = ?", true).
		Order("is_featured DESC, created_at DESC").
		Find(&cars).Error
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	cars = FilterByCategory(cars, ctx.URLParamDefault("category", CategoryAll))

	ctx.JSON(iris.Map{
		"success": true,
		"data":    cars,
		"count":   len(cars),
	})
}

// GetCar returns a single car with its category.
func GetCar(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.CreateError(iris.StatusBadRequest, "Invalid ID", "Invalid car ID.", ctx)
		return
	}

	var car models.Car
	if err := storage.DB.Preload("Category").First(&car, id).Error; err != nil {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(iris.Map{"success": true, "data": car})
}
