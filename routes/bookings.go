package routes

import (
	"log"
	"math"
	"time"

	"github.com/agusbudigame/elegance-wheels-rental-hub/models"
	"github.com/agusbudigame/elegance-wheels-rental-hub/storage"
	"github.com/agusbudigame/elegance-wheels-rental-hub/utils"
	"github.com/kataras/iris/v12"
)

const dateLayout = "2006-01-02"

// TotalDays returns the rental duration between two calendar dates. Either
// date absent or unparsable yields 0. A same-day or inverted range yields 1:
// that is a pre-validation display convenience only, the submission path
// rejects end <= start before anything is persisted.
func TotalDays(startDate, endDate string) int {
	if startDate == "" || endDate == "" {
		return 0
	}
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return 0
	}

	days := int(math.Ceil(end.Sub(start).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// TotalPrice is the quoted rental total: duration times the daily rate.
func TotalPrice(totalDays int, pricePerDay float64) float64 {
	return float64(totalDays) * pricePerDay
}

type CreateBookingInput struct {
	CarID         uint   `json:"carID" validate:"required"`
	CustomerName  string `json:"customerName" validate:"required"`
	CustomerEmail string `json:"customerEmail" validate:"required,email"`
	CustomerPhone string `json:"customerPhone" validate:"required"`
	StartDate     string `json:"startDate" validate:"required"`
	EndDate       string `json:"endDate" validate:"required"`
	Notes         string `json:"notes"`
}

// CreateBooking validates the rental request and inserts a single pending
// booking row. The total is locked in from the car's current daily rate.
// There is no de-duplication: two identical submissions create two rows.
func CreateBooking(ctx iris.Context) {
	var input CreateBookingInput
	err := ctx.ReadJSON(&input)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var car models.Car
	if err := storage.DB.First(&car, input.CarID).Error; err != nil {
		utils.CreateError(iris.StatusBadRequest, "Booking Error", "Please select a car first.", ctx)
		return
	}
	if !car.IsAvailable {
		utils.CreateError(iris.StatusBadRequest, "Booking Error", "This car is not available for booking.", ctx)
		return
	}

	start, startErr := time.Parse(dateLayout, input.StartDate)
	end, endErr := time.Parse(dateLayout, input.EndDate)
	if startErr != nil || endErr != nil {
		utils.CreateError(iris.StatusBadRequest, "Booking Error", "Dates must be in YYYY-MM-DD format.", ctx)
		return
	}
	if !end.After(start) {
		utils.CreateError(iris.StatusBadRequest, "Booking Error", "End date must be after start date.", ctx)
		return
	}

	totalDays := TotalDays(input.StartDate, input.EndDate)

	booking := models.Booking{
		CarID:         car.ID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		TotalDays:     totalDays,
		TotalPrice:    TotalPrice(totalDays, car.PricePerDay),
		Notes:         input.Notes,
		Status:        "pending",
	}

	if err := storage.DB.Create(&booking).Error; err != nil {
		log.Println("error creating booking:", err)
		utils.CreateInternalServerError(ctx)
		return
	}

	booking.Car = car
	ctx.StatusCode(iris.StatusCreated)
	ctx.JSON(booking)
}
