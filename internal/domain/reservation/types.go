package reservation

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
)

func (s BookingStatus) String() string {
	return string(s)
}

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	default:
		return false
	}
}

// HoldsSlot is true for statuses that take part in the no-overlap guarantee.
func (s BookingStatus) HoldsSlot() bool {
	return s == BookingPending || s == BookingConfirmed
}

// ActiveStatuses are the booking statuses that block a time range.
var ActiveStatuses = []BookingStatus{BookingPending, BookingConfirmed}

type PaymentStatus string

const (
	PaymentPending     PaymentStatus = "pending"
	PaymentDepositPaid PaymentStatus = "deposit_paid"
	PaymentRefunded    PaymentStatus = "refunded"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentDepositPaid, PaymentRefunded:
		return true
	default:
		return false
	}
}
