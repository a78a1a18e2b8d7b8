package routes

import (
	"github.com/agusbudigame/elegance-wheels-rental-hub/models"
	"github.com/agusbudigame/elegance-wheels-rental-hub/storage"
	"github.com/kataras/iris/v12"
)

// GET /admin/stats
//
// The booking figures are reduced in memory over a full fetch, the same way
// the dashboard has always computed them. Revenue deliberately sums
// total_price across every status, cancelled bookings included.
func AdminStats(ctx iris.Context) {
	var totalCars int64
	storage.DB.Model(&models.Car{}).Count(&totalCars)

	var bookings []models.Booking
	storage.DB.Select("total_price", "status").Find(&bookings)

	pendingBookings := 0
	totalRevenue := 0.0
	for _, booking := range bookings {
		if booking.Status == "pending" {
			pendingBookings++
		}
		totalRevenue += booking.TotalPrice
	}

	ctx.JSON(iris.Map{
		"data": iris.Map{
			"total_cars":       totalCars,
			"total_bookings":   len(bookings),
			"pending_bookings": pendingBookings,
			"total_revenue":    totalRevenue,
		},
		"meta":  iris.Map{},
		"links": iris.Map{},
	})
}

// GET /admin/activity
func AdminActivity(ctx iris.Context) {
	var logs []models.AuditLog
	storage.DB.Order("created_at DESC").Limit(100).Find(&logs)
	ctx.JSON(iris.Map{"data": logs, "meta": iris.Map{}, "links": iris.Map{}})
}
