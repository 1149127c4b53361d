package reservation

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrInvalidDuration    = errors.New("duration must be between 15 and 480 minutes")
	ErrInvalidClientName  = errors.New("client name is required")
	ErrInvalidClientEmail = errors.New("invalid client email format")
	ErrNoteTooLong        = errors.New("note is too long (max 2000 characters)")
	ErrNegativeAmount     = errors.New("amount cannot be negative")
)

const (
	MinDuration   = 15 * time.Minute
	MaxDuration   = 480 * time.Minute
	MaxNoteLength = 2000
)

// ValidateDuration enforces the bookable length range in whole minutes.
func ValidateDuration(d time.Duration) error {
	if d < MinDuration || d > MaxDuration || d%time.Minute != 0 {
		return ErrInvalidDuration
	}
	return nil
}

type Money struct {
	cents    int64
	currency string
}

func NewMoney(cents int64, currency string) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents, currency: strings.ToLower(currency)}, nil
}

func (m Money) Cents() int64     { return m.cents }
func (m Money) Currency() string { return m.currency }
func (m Money) IsZero() bool     { return m.cents == 0 }

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type ClientContact struct {
	name  string
	email string
	phone string
}

func NewClientContact(name, email, phone string) (ClientContact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ClientContact{}, ErrInvalidClientName
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRegex.MatchString(email) {
		return ClientContact{}, ErrInvalidClientEmail
	}
	return ClientContact{name: name, email: email, phone: strings.TrimSpace(phone)}, nil
}

func (c ClientContact) Name() string  { return c.name }
func (c ClientContact) Email() string { return c.email }
func (c ClientContact) Phone() string { return c.phone }

type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	value = strings.TrimSpace(value)
	if len([]rune(value)) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: value}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
