package routes

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/agusbudigame/elegance-wheels-rental-hub/models"
	"github.com/agusbudigame/elegance-wheels-rental-hub/storage"
	"github.com/agusbudigame/elegance-wheels-rental-hub/utils"
	"github.com/kataras/iris/v12"
)

var bookingStatuses = map[string]bool{
	"pending":   true,
	"confirmed": true,
	"completed": true,
	"cancelled": true,
}

// GET /admin/bookings?status=&date_from=&date_to=&page=&per_page=
func AdminListBookings(ctx iris.Context) {
	page := ctx.URLParamIntDefault("page", 1)
	perPage := ctx.URLParamIntDefault("per_page", 25)
	if perPage <= 0 || perPage > 100 {
		perPage = 25
	}

	status := ctx.URLParamDefault("status", "")
	dateFrom := ctx.URLParamDefault("date_from", "")
	dateTo := ctx.URLParamDefault("date_to", "")

	q := storage.DB.Model(&models.Booking{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if dateFrom != "" {
		q = q.Where("start_date >= ?", dateFrom)
	}
	if dateTo != "" {
		q = q.Where("end_date <= ?", dateTo)
	}

	var total int64
	q.Count(&total)

	var bookings []models.Booking
	if err := q.Preload("Car").Offset((page - 1) * perPage).Limit(perPage).
		Order("created_at DESC").Find(&bookings).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}
	utils.JSONPage(ctx, bookings, page, perPage, total)
}

// GET /admin/bookings/:id
func AdminGetBooking(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}
	var booking models.Booking
	if err := storage.DB.Preload("Car").First(&booking, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "booking not found")
		return
	}
	ctx.JSON(iris.Map{"data": booking, "meta": iris.Map{}, "links": iris.Map{}})
}

// PATCH /admin/bookings/:id/status { status }
func AdminUpdateBookingStatus(ctx iris.Context) {
	id, err := ctx.Params().GetUint("id")
	if err != nil {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_id", "invalid id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := ctx.ReadJSON(&body); err != nil || !bookingStatuses[body.Status] {
		utils.JSONError(ctx, http.StatusBadRequest, "invalid_status",
			"status must be one of pending, confirmed, completed, cancelled")
		return
	}

	var booking models.Booking
	if err := storage.DB.First(&booking, id).Error; err != nil {
		utils.JSONError(ctx, http.StatusNotFound, "not_found", "booking not found")
		return
	}

	before := booking
	booking.Status = body.Status
	if err := storage.DB.Save(&booking).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	utils.Audit(ctx, "booking.status_update", "booking", booking.ID, before, booking)
	ctx.JSON(iris.Map{"data": booking, "meta": iris.Map{}, "links": iris.Map{}})
}

// GET /admin/bookings/export — CSV download with storefront-formatted totals.
func AdminExportBookings(ctx iris.Context) {
	var bookings []models.Booking
	if err := storage.DB.Preload("Car").Order("created_at DESC").Find(&bookings).Error; err != nil {
		utils.JSONError(ctx, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	ctx.Header("Content-Type", "text/csv")
	ctx.Header("Content-Disposition", `attachment; filename="bookings.csv"`)

	w := csv.NewWriter(ctx.ResponseWriter())
	w.Write([]string{"id", "customer", "email", "phone", "car", "start_date", "end_date", "days", "total", "status"})
	for _, b := range bookings {
		w.Write([]string{
			strconv.FormatUint(uint64(b.ID), 10),
			b.CustomerName,
			b.CustomerEmail,
			b.CustomerPhone,
			b.Car.Brand + " " + b.Car.Model,
			b.StartDate,
			b.EndDate,
			strconv.Itoa(b.TotalDays),
			utils.FormatIDR(b.TotalPrice),
			b.Status,
		})
	}
	w.Flush()
}
