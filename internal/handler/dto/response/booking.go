package response

import (
	"time"

	"github.com/bothrasports-ops/arena-manager/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID                 uuid.UUID           `json:"id"`
	CustomerName       string              `json:"customerName"`
	PhoneNumber        string              `json:"phoneNumber"`
	Platform           string              `json:"platform"`
	BookingAmount      int64               `json:"bookingAmount"`
	ExtraHoursEnabled  bool                `json:"extraHoursEnabled"`
	ExtraHoursDuration float64             `json:"extraHoursDuration"`
	ExtraHoursAmount   int64               `json:"extraHoursAmount"`
	TotalAmount        int64               `json:"totalAmount"`
	Drinks             []DrinkLineResponse `json:"drinks"`
	CreatedAt          time.Time           `json:"createdAt"`
}

type DrinkLineResponse struct {
	ID          uuid.UUID `json:"id"`
	DrinkID     uuid.UUID `json:"drinkId"`
	Quantity    int32     `json:"quantity"`
	PriceAtTime int64     `json:"priceAtTime"`
}

type BookingListResponse struct {
	Bookings []*BookingResponse   `json:"bookings"`
	Stats    BookingStatsResponse `json:"stats"`
}

type BookingStatsResponse struct {
	Count         int   `json:"count"`
	TotalRevenue  int64 `json:"totalRevenue"`
	AverageAmount int64 `json:"averageAmount"`
}

type BookingDetailResponse struct {
	Booking     *BookingResponse         `json:"booking"`
	Lines       []DrinkBreakdownResponse `json:"lines"`
	DrinksTotal int64                    `json:"drinksTotal"`
}

type DrinkBreakdownResponse struct {
	ID          uuid.UUID `json:"id"`
	DrinkID     uuid.UUID `json:"drinkId"`
	DrinkName   string    `json:"drinkName"`
	Quantity    int32     `json:"quantity"`
	PriceAtTime int64     `json:"priceAtTime"`
	Subtotal    int64     `json:"subtotal"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	drinks := make([]DrinkLineResponse, len(v.Drinks))
	for i, d := range v.Drinks {
		drinks[i] = DrinkLineResponse{
			ID:          d.ID,
			DrinkID:     d.DrinkID,
			Quantity:    d.Quantity,
			PriceAtTime: d.PriceAtTime,
		}
	}
	return &BookingResponse{
		ID:                 v.ID,
		CustomerName:       v.CustomerName,
		PhoneNumber:        v.PhoneNumber,
		Platform:           v.Platform,
		BookingAmount:      v.BookingAmount,
		ExtraHoursEnabled:  v.ExtraHoursEnabled,
		ExtraHoursDuration: v.ExtraHoursDuration,
		ExtraHoursAmount:   v.ExtraHoursAmount,
		TotalAmount:        v.TotalAmount,
		Drinks:             drinks,
		CreatedAt:          v.CreatedAt,
	}
}

func FromBookingListResult(r *queries.BookingListResult) *BookingListResponse {
	bookings := make([]*BookingResponse, len(r.Bookings))
	for i, b := range r.Bookings {
		bookings[i] = FromBookingView(b)
	}
	return &BookingListResponse{
		Bookings: bookings,
		Stats: BookingStatsResponse{
			Count:         r.Stats.Count,
			TotalRevenue:  r.Stats.TotalRevenue,
			AverageAmount: r.Stats.AverageAmount,
		},
	}
}

func FromBookingDetailView(v *queries.BookingDetailView) *BookingDetailResponse {
	lines := make([]DrinkBreakdownResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = DrinkBreakdownResponse{
			ID:          l.ID,
			DrinkID:     l.DrinkID,
			DrinkName:   l.DrinkName,
			Quantity:    l.Quantity,
			PriceAtTime: l.PriceAtTime,
			Subtotal:    l.Subtotal,
		}
	}
	return &BookingDetailResponse{
		Booking:     FromBookingView(v.Booking),
		Lines:       lines,
		DrinksTotal: v.DrinksTotal,
	}
}
