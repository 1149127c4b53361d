package queries

import "errors"

var (
	ErrInvalidQuery          = errors.New("invalid query")
	ErrArtistNotFound        = errors.New("artist not found")
	ErrServiceNotFound       = errors.New("service not found")
	ErrServiceUnavailable    = errors.New("service is not currently offered")
	ErrReservationNotFound   = errors.New("reservation not found")
	ErrSlotSourceUnavailable = errors.New("slot source unavailable")
	ErrQueryFailed           = errors.New("query failed")
)
