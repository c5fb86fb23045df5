package domain

import "errors"

// ErrMissingTitle is returned when an offering has no title.
var ErrMissingTitle = errors.New("offering title is required")

// Offering represents one logistics service the company sells,
// shown on the public services page.
type Offering struct {
	// ID is the unique identifier for the offering.
	ID string `json:"id"`
	// Title is the display name, e.g. "Refrigerated Trucks Logistics Services".
	Title string `json:"title"`
	// Description is the marketing copy for the offering.
	Description string `json:"description"`
	// Icon names the pictogram shown next to the offering.
	Icon string `json:"icon"`
	// Image is an optional illustration URL or data URI.
	Image string `json:"image,omitempty"`
}

// Defaults returns the stock offerings used when the store holds none yet.
func Defaults() []Offering {
	return []Offering{
		{
			ID:          "mini-truck",
			Title:       "Mini Truck Logistics Services",
			Description: "High-quality Mini Truck solutions for agile urban and inter-city distribution.",
			Icon:        "truck",
		},
		{
			ID:          "refrigerated",
			Title:       "Refrigerated Trucks Logistics Services",
			Description: "Specialized temperature-controlled transportation for sensitive pharmaceutical and perishable goods.",
			Icon:        "thermometer",
		},
		{
			ID:          "truck-transport",
			Title:       "Truck Transportation Logistic Services",
			Description: "Heavy-duty industrial transportation solutions acknowledged for safety and reliability.",
			Icon:        "truck-moving",
		},
		{
			ID:          "garbage-truck",
			Title:       "Garbage Truck Logistics Services",
			Description: "Professional disposal and waste management logistics for municipal and industrial sectors.",
			Icon:        "trash-2",
		},
		{
			ID:          "tata-shaktee",
			Title:       "Tata Shaktee Logistics Service",
			Description: "Leveraging high-tonnage Tata Shaktee fleets for robust material movement across industrial hubs.",
			Icon:        "zap",
		},
		{
			ID:          "box-truck",
			Title:       "Box Truck Logistics Services",
			Description: "Secure and enclosed transportation for high-value commercial cargo and retail goods.",
			Icon:        "box",
		},
	}
}
