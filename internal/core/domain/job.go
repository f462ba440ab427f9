package domain

// CompanyRef is the owning-company summary embedded in a listing.
type CompanyRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// JobListing is a posted job opening. Owned by a company, read-only to
// students; the search workflow treats it as an opaque result row.
type JobListing struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Type        string     `json:"type,omitempty"`
	Status      string     `json:"status,omitempty"`
	Company     CompanyRef `json:"company"`
}
