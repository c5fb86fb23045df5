package domain

import "errors"

var (
	// ErrInvalidRating is returned when a rating falls outside 1..5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrMissingQuote is returned when a testimonial has no quote text.
	ErrMissingQuote = errors.New("testimonial quote is required")
)

// Testimonial represents one client review. Only approved testimonials
// appear on the public site; submissions start unapproved.
type Testimonial struct {
	// ID is the unique identifier for the testimonial.
	ID string `json:"id"`
	// Name is the reviewer's name.
	Name string `json:"name"`
	// Company is the reviewer's business.
	Company string `json:"company"`
	// Role is the reviewer's position at the company.
	Role string `json:"role"`
	// Quote is the review text.
	Quote string `json:"quote"`
	// Rating is the star rating, 1 to 5.
	Rating int `json:"rating"`
	// Approved controls public visibility; toggled by the operator.
	Approved bool `json:"approved"`
}

// NewTestimonial creates an unapproved Testimonial and validates it.
func NewTestimonial(id, name, company, role, quote string, rating int) (*Testimonial, error) {
	if quote == "" {
		return nil, ErrMissingQuote
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	return &Testimonial{
		ID:       id,
		Name:     name,
		Company:  company,
		Role:     role,
		Quote:    quote,
		Rating:   rating,
		Approved: false,
	}, nil
}
