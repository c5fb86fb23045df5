package domain

import (
	"errors"
	"fmt"
	"time"
)

// InquiryStatus represents the triage state of an inquiry in the admin inbox.
type InquiryStatus string

const (
	// InquiryStatusNew indicates the inquiry has not been looked at yet.
	InquiryStatusNew InquiryStatus = "new"
	// InquiryStatusViewed indicates the operator has seen the inquiry.
	InquiryStatusViewed InquiryStatus = "viewed"
	// InquiryStatusResolved indicates the inquiry was handled.
	InquiryStatusResolved InquiryStatus = "resolved"
)

var (
	// ErrInvalidInquiryStatus is returned for values outside the closed set.
	ErrInvalidInquiryStatus = errors.New("invalid inquiry status")
	// ErrMissingContact is returned when an inquiry has neither name nor phone.
	ErrMissingContact = errors.New("inquiry name and phone are required")
)

// ParseInquiryStatus validates a raw string against the closed status set.
func ParseInquiryStatus(raw string) (InquiryStatus, error) {
	switch s := InquiryStatus(raw); s {
	case InquiryStatusNew, InquiryStatusViewed, InquiryStatusResolved:
		return s, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidInquiryStatus, raw)
	}
}

// Inquiry represents one price/booking request from the public contact form.
type Inquiry struct {
	// ID is the unique identifier for the inquiry.
	ID string `json:"id"`
	// Name is the prospect's name.
	Name string `json:"name"`
	// Phone is the prospect's contact number.
	Phone string `json:"phone"`
	// Service is the offering the prospect asked about.
	Service string `json:"service"`
	// Notes is the free-text message from the form.
	Notes string `json:"notes"`
	// Date is when the inquiry was submitted.
	Date time.Time `json:"date"`
	// Status is the operator's triage state.
	Status InquiryStatus `json:"status"`
}
