package models

import (
	"strings"

	"vibejobhunter/config"
)

// ApplicantProfile is an immutable snapshot of the candidate's facts,
// created once per process from configuration.
type ApplicantProfile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Portfolio string `json:"portfolio"`
	Website   string `json:"website"`

	Location string `json:"location"`

	// Work authorization. These answers are filled into forms verbatim:
	// the submitter must never assert authorization status the profile
	// does not hold.
	AuthorizedInUS      bool `json:"authorized_in_us"`
	RequiresSponsorship bool `json:"requires_sponsorship"`

	CurrentCompany string   `json:"current_company"`
	CurrentTitle   string   `json:"current_title"`
	Education      string   `json:"education"`
	Languages      []string `json:"languages"`
	Availability   string   `json:"availability"`

	// Legal consent defaults for standard application checkboxes.
	OverEighteen           bool `json:"over_eighteen"`
	ConsentBackgroundCheck bool `json:"consent_background_check"`
	AcceptTerms            bool `json:"accept_terms"`
}

// LoadApplicantProfile builds the profile from configuration. Fields the
// config does not cover carry the candidate's standing defaults.
func LoadApplicantProfile(cfg config.ApplicantConfig) *ApplicantProfile {
	return &ApplicantProfile{
		FirstName: cfg.FirstName,
		LastName:  cfg.LastName,
		FullName:  strings.TrimSpace(cfg.FirstName + " " + cfg.LastName),
		Email:     cfg.Email,
		Phone:     cfg.Phone,
		LinkedIn:  cfg.LinkedIn,
		GitHub:    cfg.GitHub,
		Portfolio: cfg.Portfolio,
		Website:   cfg.Website,
		Location:  cfg.Location,

		AuthorizedInUS:      false,
		RequiresSponsorship: true,

		CurrentCompany: "EspaLuz",
		CurrentTitle:   "Founder / AI Engineer",
		Education:      "Master's Degree",
		Languages:      []string{"English", "Spanish", "Russian"},
		Availability:   "immediately",

		OverEighteen:           true,
		ConsentBackgroundCheck: true,
		AcceptTerms:            true,
	}
}

// WorkAuthorizationAnswer is the truthful yes/no answer to "are you
// authorized to work" questions.
func (p *ApplicantProfile) WorkAuthorizationAnswer() string {
	if p.AuthorizedInUS {
		return "Yes"
	}
	return "No"
}

// SponsorshipAnswer is the truthful yes/no answer to "will you require
// sponsorship" questions.
func (p *ApplicantProfile) SponsorshipAnswer() string {
	if p.RequiresSponsorship {
		return "Yes"
	}
	return "No"
}
