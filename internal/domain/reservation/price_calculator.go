package reservation

import (
	"time"

	"inkslot/internal/domain/artist"
)

type Quote struct {
	PriceCents   int64
	DepositCents int64
}

type PriceCalculator interface {
	Quote(o *artist.Offering, d time.Duration) Quote
}

// ProRataCalculator scales a service's list price with the booked length.
// The deposit is the offering's fixed deposit, capped at the price.
type ProRataCalculator struct{}

func NewProRataCalculator() *ProRataCalculator {
	return &ProRataCalculator{}
}

func (ProRataCalculator) Quote(o *artist.Offering, d time.Duration) Quote {
	price := o.PriceCents()
	if !o.HasFixedDuration() && d != o.Duration() && o.Duration() > 0 {
		price = price * int64(d/time.Minute) / int64(o.Duration()/time.Minute)
	}
	deposit := o.DepositCents()
	if deposit > price {
		deposit = price
	}
	return Quote{PriceCents: price, DepositCents: deposit}
}
