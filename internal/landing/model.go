package landing

// Tier is one pricing option shown on a service landing page.
type Tier struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Duration string `json:"duration"`
}

// FAQ is one accordion entry.
type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// SEO is the metadata injected into the document head for a page.
type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// Page is the per-service configuration record that drives a single
// shared landing template, instead of one hand-written page per service.
type Page struct {
	Slug     string   `json:"slug"`
	Name     string   `json:"name"`
	Tagline  string   `json:"tagline"`
	Tiers    []Tier   `json:"tiers"`
	Features []string `json:"features"`
	FAQs     []FAQ    `json:"faqs"`
	Meta     SEO      `json:"meta"`
}
