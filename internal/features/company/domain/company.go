package domain

// Link is a labeled URL used for social and footer navigation.
type Link struct {
	Platform string `json:"platform,omitempty"`
	Label    string `json:"label,omitempty"`
	URL      string `json:"url"`
}

// CompanyDetails is the editable identity of the business shown across the
// public site and fed to the assistant.
type CompanyDetails struct {
	Name        string `json:"name"`
	CEO         string `json:"ceo"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	GST         string `json:"gst"`
	Location    string `json:"location"`
	Estd        int    `json:"estd"`
	AboutText   string `json:"aboutText"`
	SocialLinks []Link `json:"socialLinks"`
	FooterLinks []Link `json:"footerLinks"`
}

// SiteAssets holds the editable imagery for the public pages.
type SiteAssets struct {
	HeroImage  string `json:"heroImage"`
	AboutImage string `json:"aboutImage"`
}

// DefaultDetails returns the company identity used until an operator edits it.
func DefaultDetails() CompanyDetails {
	return CompanyDetails{
		Name:     "Deluxe Roadways",
		CEO:      "Ram Bhagat",
		Address:  "Plot No. 15, Sector 24, Faridabad - 121005, Haryana, India",
		Phone:    "+91 80489 67409",
		Email:    "info@deluxeroadways.com",
		GST:      "06BYTPB5931P1ZS",
		Location: "Faridabad, Haryana",
		Estd:     2017,
		AboutText: "Established as a Proprietor Firm in 2017, Deluxe Roadways has evolved into a premier name " +
			"in the Indian logistics sector. Based in Faridabad, Haryana, we serve as the logistical backbone " +
			"for major industrial players. Under the direct leadership of Ram Bhagat, our skilled experts " +
			"ensure every shipment delivers precision results.",
		SocialLinks: []Link{
			{Platform: "facebook", URL: "#"},
			{Platform: "linkedin", URL: "#"},
			{Platform: "instagram", URL: "#"},
		},
		FooterLinks: []Link{
			{Label: "Privacy Policy", URL: "#"},
			{Label: "Carrier Terms", URL: "#"},
		},
	}
}

// DefaultAssets returns the stock imagery used until an operator uploads
// replacements.
func DefaultAssets() SiteAssets {
	return SiteAssets{
		HeroImage:  "https://images.unsplash.com/photo-1621259182978-f09e5e2ca845?auto=format&fit=crop&q=80&w=2400",
		AboutImage: "https://images.unsplash.com/photo-1586528116311-ad8dd3c8310d?auto=format&fit=crop&q=80&w=1200",
	}
}
