package validations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRequest() BookCarRequest {
	return BookCarRequest{
		CarID:     "car-1",
		StartDate: "2024-01-01",
		EndDate:   "2024-01-03",
		Name:      "Grace Hopper",
		Email:     "grace@example.com",
	}
}

func TestValidateBookCar(t *testing.T) {
	req := validRequest()
	assert.NoError(t, ValidateBookCar(&req))
}

func TestValidateBookCarRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BookCarRequest)
	}{
		{"missing car id", func(r *BookCarRequest) { r.CarID = "" }},
		{"missing name", func(r *BookCarRequest) { r.Name = "" }},
		{"bad date format", func(r *BookCarRequest) { r.StartDate = "01/01/2024" }},
		{"end before start", func(r *BookCarRequest) { r.StartDate = "2024-01-03"; r.EndDate = "2024-01-01" }},
		{"end equals start", func(r *BookCarRequest) { r.EndDate = r.StartDate }},
		{"bad email", func(r *BookCarRequest) { r.Email = "not-an-email" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			assert.Error(t, ValidateBookCar(&req))
		})
	}
}
