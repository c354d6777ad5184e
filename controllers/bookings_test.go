package controllers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Adisheth/car-rental-website/models"
)

func bookForm(carID string) url.Values {
	return url.Values{
		"car_id":     {carID},
		"start_date": {"2024-01-01"},
		"end_date":   {"2024-01-03"},
		"name":       {"Walk-in Customer"},
		"phone":      {"555-0102"},
		"email":      {"walkin@example.com"},
		"location":   {"Airport"},
	}
}

func TestBookCarComputesPrice(t *testing.T) {
	app := newTestApp(t)
	car := app.createCar(t, "Budget Sedan", 1000, true)

	w := app.do(formRequest("POST", "/book", bookForm(car.ID)))
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/book-success", w.Header().Get("Location"))

	var booking models.Booking
	require.NoError(t, app.db.Where("car_id = ?", car.ID).First(&booking).Error)
	assert.Equal(t, int64(2000), booking.TotalPrice) // 2 days x 1000
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, "Walk-in Customer", booking.UserID)
}

func TestBookCarUnknownCar(t *testing.T) {
	app := newTestApp(t)

	w := app.do(formRequest("POST", "/book", bookForm("no-such-car")))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Car not found")
}

func TestBookCarRejectsBadDates(t *testing.T) {
	app := newTestApp(t)
	car := app.createCar(t, "Budget Sedan", 1000, true)

	form := bookForm(car.ID)
	form.Set("start_date", "2024-01-03")
	form.Set("end_date", "2024-01-01")
	w := app.do(formRequest("POST", "/book", form))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	form = bookForm(car.ID)
	form.Set("end_date", form.Get("start_date"))
	w = app.do(formRequest("POST", "/book", form))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookCarSignedInRecordsUserID(t *testing.T) {
	app := newTestApp(t)
	car := app.createCar(t, "Budget Sedan", 1000, true)
	user := app.createUser(t, "renter@example.com", "pw123456", false)

	w := app.do(formRequest("POST", "/book", bookForm(car.ID)), app.sessionCookie(t, &user))
	require.Equal(t, http.StatusFound, w.Code)

	var booking models.Booking
	require.NoError(t, app.db.Where("car_id = ?", car.ID).First(&booking).Error)
	assert.Equal(t, user.ID, booking.UserID)
}

// The quick-booking widget path: no date validation, no pricing, name in
// the user id column.
func TestRawBooking(t *testing.T) {
	app := newTestApp(t)
	car := app.createCar(t, "Budget Sedan", 1000, true)

	form := url.Values{
		"carId":     {car.ID},
		"name":      {"Quick Customer"},
		"email":     {"quick@example.com"},
		"phone":     {"555-0103"},
		"startDate": {"2024-01-03"},
		"endDate":   {"2024-01-01"}, // inverted on purpose, still accepted
	}
	w := app.do(formRequest("POST", "/bookings", form))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Booking saved", w.Body.String())

	var booking models.Booking
	require.NoError(t, app.db.Where("car_id = ?", car.ID).First(&booking).Error)
	assert.Zero(t, booking.TotalPrice)
	assert.Equal(t, "Quick Customer", booking.UserID)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
}

func TestMyBookingsPage(t *testing.T) {
	app := newTestApp(t)
	car := app.createCar(t, "Family Van", 3000, true)
	user := app.createUser(t, "renter@example.com", "pw123456", false)
	other := app.createUser(t, "other@example.com", "pw123456", false)

	require.NoError(t, app.db.Create(&models.Booking{
		ID: "b-mine", CarID: car.ID, UserID: user.ID,
		StartDate: "2024-02-01", EndDate: "2024-02-03",
		TotalPrice: 6000, Status: models.BookingStatusConfirmed,
	}).Error)
	require.NoError(t, app.db.Create(&models.Booking{
		ID: "b-theirs", CarID: car.ID, UserID: other.ID,
		StartDate: "2024-02-05", EndDate: "2024-02-06",
		TotalPrice: 3000, Status: models.BookingStatusPending,
	}).Error)

	// Requires a session.
	w := app.do(httptest.NewRequest("GET", "/bookings", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.do(httptest.NewRequest("GET", "/bookings", nil), app.sessionCookie(t, &user))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Family Van")
	assert.Contains(t, w.Body.String(), "6000")
	assert.NotContains(t, w.Body.String(), "2024-02-05")
}

func TestUpdateBookingStatus(t *testing.T) {
	app := newTestApp(t)
	admin := app.createUser(t, "adm@example.com", "pw123456", true)
	car := app.createCar(t, "Status Car", 1000, true)

	require.NoError(t, app.db.Create(&models.Booking{
		ID: "b-1", CarID: car.ID, UserID: "walk-in",
		StartDate: "2024-03-01", EndDate: "2024-03-02",
		TotalPrice: 1000, Status: models.BookingStatusPending,
	}).Error)

	put := func(id, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("PUT", "/api/bookings/"+id+"/status", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return app.do(req, app.sessionCookie(t, &admin))
	}

	w := put("b-1", `{"status": "confirmed"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var booking models.Booking
	require.NoError(t, app.db.First(&booking, "id = ?", "b-1").Error)
	assert.Equal(t, models.BookingStatusConfirmed, booking.Status)

	w = put("b-1", `{"status": "shipped"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = put("no-such-booking", `{"status": "cancelled"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboardStats(t *testing.T) {
	app := newTestApp(t)
	admin := app.createUser(t, "adm@example.com", "pw123456", true)
	car := app.createCar(t, "Counted Car", 1000, true)

	require.NoError(t, app.db.Create(&models.Booking{
		ID: "b-1", CarID: car.ID, UserID: "x",
		StartDate: "2024-01-01", EndDate: "2024-01-02",
		TotalPrice: 1000, Status: models.BookingStatusPending,
	}).Error)

	w := app.do(httptest.NewRequest("GET", "/api/admin/stats", nil), app.sessionCookie(t, &admin))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_cars":1`)
	assert.Contains(t, w.Body.String(), `"pending_bookings":1`)
}
