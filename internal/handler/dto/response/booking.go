package response

import (
	"time"

	"inkslot/internal/usecase/commands"
	"inkslot/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingCreatedResponse struct {
	ReservationID   uuid.UUID `json:"reservationId"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"paymentStatus"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DepositCents    int64     `json:"depositCents"`
	Currency        string    `json:"currency"`
	PaymentIntentID string    `json:"paymentIntentId"`
	ClientSecret    string    `json:"clientSecret"`
}

func FromCreateBookingResult(r *commands.CreateBookingResult) *BookingCreatedResponse {
	return &BookingCreatedResponse{
		ReservationID:   r.ReservationID,
		Status:          r.BookingStatus.String(),
		PaymentStatus:   r.PaymentStatus.String(),
		StartTime:       r.StartTime.UTC(),
		EndTime:         r.EndTime.UTC(),
		DepositCents:    r.DepositCents,
		Currency:        r.Currency,
		PaymentIntentID: r.PaymentIntentID,
		ClientSecret:    r.ClientSecret,
	}
}

type PaymentIntentResponse struct {
	ReservationID   uuid.UUID `json:"reservationId"`
	PaymentIntentID string    `json:"paymentIntentId"`
	ClientSecret    string    `json:"clientSecret"`
}

func FromPaymentIntentResult(r *commands.PaymentIntentResult) *PaymentIntentResponse {
	out := &PaymentIntentResponse{}
	_ = copier.Copy(out, r)
	return out
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	ArtistID        uuid.UUID `json:"artistId"`
	ServiceID       uuid.UUID `json:"serviceId"`
	ServiceTitle    string    `json:"serviceTitle"`
	ServiceKind     string    `json:"serviceKind"`
	ClientName      string    `json:"clientName"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int32     `json:"durationMinutes"`
	PriceCents      int64     `json:"priceCents"`
	DepositCents    int64     `json:"depositCents"`
	Currency        string    `json:"currency"`
	PaymentStatus   string    `json:"paymentStatus"`
	BookingStatus   string    `json:"bookingStatus"`
	CreatedAt       time.Time `json:"createdAt"`
}

// FromReservationView leaves out contact details and the intent id; the
// booking page only needs the status and the times.
func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	out := &ReservationResponse{}
	_ = copier.Copy(out, v)
	return out
}

type ReservationListItemResponse struct {
	ID              uuid.UUID `json:"id"`
	ServiceID       uuid.UUID `json:"serviceId"`
	ServiceTitle    string    `json:"serviceTitle"`
	ClientName      string    `json:"clientName"`
	ClientEmail     string    `json:"clientEmail"`
	StartTime       time.Time `json:"startTime"`
	EndTime         time.Time `json:"endTime"`
	DurationMinutes int32     `json:"durationMinutes"`
	DepositCents    int64     `json:"depositCents"`
	Currency        string    `json:"currency"`
	PaymentStatus   string    `json:"paymentStatus"`
	BookingStatus   string    `json:"bookingStatus"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromReservationList(items []*queries.ReservationListItem) []*ReservationListItemResponse {
	res := make([]*ReservationListItemResponse, len(items))
	for i, it := range items {
		res[i] = &ReservationListItemResponse{}
		_ = copier.Copy(res[i], it)
	}
	return res
}
