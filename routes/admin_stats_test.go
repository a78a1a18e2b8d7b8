package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agusbudigame/elegance-wheels-rental-hub/models"
)

func fetchStats(t *testing.T) map[string]float64 {
	t.Helper()

	app := newTestApp(t)
	app.Get("/api/admin/stats", AdminStats)
	app.Build()

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	resp := httptest.NewRecorder()
	app.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body struct {
		Data map[string]float64 `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode stats: %v", err)
	}
	return body.Data
}

func TestAdminStats(t *testing.T) {
	db := setupTestDB(t)

	car := models.Car{Brand: "Rolls-Royce", Model: "Phantom", PricePerDay: 500000, IsAvailable: true}
	mustCreate(t, db, &car)
	mustCreate(t, db, &models.Car{Brand: "Bentley", Model: "Bentayga", PricePerDay: 400000, IsAvailable: false})

	seed := []models.Booking{
		{CarID: car.ID, CustomerName: "a", CustomerEmail: "a@example.com", CustomerPhone: "1",
			StartDate: "2024-01-01", EndDate: "2024-01-04", TotalDays: 3, TotalPrice: 1500000, Status: "pending"},
		{CarID: car.ID, CustomerName: "b", CustomerEmail: "b@example.com", CustomerPhone: "2",
			StartDate: "2024-02-01", EndDate: "2024-02-03", TotalDays: 2, TotalPrice: 1000000, Status: "confirmed"},
		{CarID: car.ID, CustomerName: "c", CustomerEmail: "c@example.com", CustomerPhone: "3",
			StartDate: "2024-03-01", EndDate: "2024-03-02", TotalDays: 1, TotalPrice: 500000, Status: "cancelled"},
	}
	for i := range seed {
		mustCreate(t, db, &seed[i])
	}

	stats := fetchStats(t)

	if got := stats["total_cars"]; got != 2 {
		t.Fatalf("expected 2 cars (availability is irrelevant here), got %v", got)
	}
	if got := stats["total_bookings"]; got != 3 {
		t.Fatalf("expected 3 bookings, got %v", got)
	}
	if got := stats["pending_bookings"]; got != 1 {
		t.Fatalf("expected 1 pending booking, got %v", got)
	}
	// Revenue sums every status, cancelled included.
	if got := stats["total_revenue"]; got != 3000000 {
		t.Fatalf("expected revenue 3000000 across all statuses, got %v", got)
	}
}

func TestAdminStatsRevenueIgnoresStatus(t *testing.T) {
	db := setupTestDB(t)

	car := models.Car{Brand: "Mercedes", Model: "S-Class", PricePerDay: 300000, IsAvailable: true}
	mustCreate(t, db, &car)

	pendingOnly := []models.Booking{
		{CarID: car.ID, CustomerName: "a", CustomerEmail: "a@example.com", CustomerPhone: "1",
			StartDate: "2024-01-01", EndDate: "2024-01-02", TotalDays: 1, TotalPrice: 300000, Status: "pending"},
		{CarID: car.ID, CustomerName: "b", CustomerEmail: "b@example.com", CustomerPhone: "2",
			StartDate: "2024-01-03", EndDate: "2024-01-04", TotalDays: 1, TotalPrice: 300000, Status: "pending"},
	}
	for i := range pendingOnly {
		mustCreate(t, db, &pendingOnly[i])
	}

	if got := fetchStats(t)["total_revenue"]; got != 600000 {
		t.Fatalf("expected revenue 600000 for pending-only fixture, got %v", got)
	}

	// Flip one to cancelled: the sum must not change.
	db.Model(&models.Booking{}).Where("customer_name = ?", "b").Update("status", "cancelled")

	if got := fetchStats(t)["total_revenue"]; got != 600000 {
		t.Fatalf("expected revenue unchanged after cancellation, got %v", got)
	}
}

func TestAdminStatsEmpty(t *testing.T) {
	setupTestDB(t)

	stats := fetchStats(t)
	for _, key := range []string{"total_cars", "total_bookings", "pending_bookings", "total_revenue"} {
		if stats[key] != 0 {
			t.Fatalf("expected %s = 0 on empty database, got %v", key, stats[key])
		}
	}
}
