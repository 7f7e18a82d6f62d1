package models

// Job is the posting handed to the submitter by the upstream matching
// pipeline. Read-only input; the submitter never mutates it.
type Job struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	Title        string `json:"title"`
	Company      string `json:"company"`
	Source       string `json:"source"`
	FounderName  string `json:"founder_name,omitempty"`
	FounderEmail string `json:"founder_email,omitempty"`
}
