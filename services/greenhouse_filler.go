package services

import (
	"log"

	"github.com/playwright-community/playwright-go"

	"vibejobhunter/models"
)

// GreenhouseFiller populates a boards.greenhouse.io application form.
// Field order is fixed: identity and contact before fields whose
// validation can be re-triggered by earlier inputs (location
// autocompletes, custom questions).
type GreenhouseFiller struct {
	prober FieldProber
}

func (f *GreenhouseFiller) ApplySelectors() []string {
	return []string{
		"a#apply_button",
		"a[href*='#app']",
		"button:has-text('Apply')",
		"a:has-text('Apply for this job')",
	}
}

func (f *GreenhouseFiller) SubmitSelectors() []string {
	return []string{
		"button#submit_app",
		"input[type='submit'][value*='Submit']",
		"button[type='submit']",
		"button:has-text('Submit application')",
		"button:has-text('Submit Application')",
	}
}

func (f *GreenhouseFiller) Fill(page playwright.Page, profile *models.ApplicantProfile, coverLetter, resumePath string) {
	log.Printf("Filling Greenhouse application form")

	f.prober.FillFirst(page, FieldProbe{
		Field: "first name",
		Selectors: []string{
			"input#first_name",
			"input[name='job_application[first_name]']",
			"input[name='first_name']",
			"input[autocomplete='given-name']",
			"input[aria-label*='First Name']",
		},
		Value: profile.FirstName,
	})
	f.prober.FillFirst(page, FieldProbe{
		Field: "last name",
		Selectors: []string{
			"input#last_name",
			"input[name='job_application[last_name]']",
			"input[name='last_name']",
			"input[autocomplete='family-name']",
			"input[aria-label*='Last Name']",
		},
		Value: profile.LastName,
	})

	f.prober.FillFirst(page, FieldProbe{
		Field: "email",
		Selectors: []string{
			"input#email",
			"input[name='job_application[email]']",
			"input[type='email']",
			"input[autocomplete='email']",
		},
		Value: profile.Email,
	})
	f.prober.FillFirst(page, FieldProbe{
		Field: "phone",
		Selectors: []string{
			"input#phone",
			"input[name='job_application[phone]']",
			"input[type='tel']",
			"input[autocomplete='tel']",
		},
		Value: profile.Phone,
	})

	f.prober.FillFirst(page, FieldProbe{
		Field: "linkedin",
		Selectors: []string{
			"input[name*='linkedin']",
			"input[id*='linkedin']",
			"input[aria-label*='LinkedIn']",
			"input[placeholder*='LinkedIn']",
		},
		Value: profile.LinkedIn,
	})
	f.prober.FillFirst(page, FieldProbe{
		Field: "github",
		Selectors: []string{
			"input[name*='github']",
			"input[id*='github']",
			"input[placeholder*='GitHub']",
		},
		Value: profile.GitHub,
	})
	f.prober.FillFirst(page, FieldProbe{
		Field: "website",
		Selectors: []string{
			"input[name*='website']",
			"input[name*='portfolio']",
			"input[id*='website']",
			"input[placeholder*='Website']",
		},
		Value: profile.Website,
	})

	f.prober.FillFirst(page, FieldProbe{
		Field: "location",
		Selectors: []string{
			"input#job_application_location",
			"input[name='job_application[location]']",
			"input[id*='location']",
			"input[name*='location']",
			"input[aria-label*='Location']",
			"input[placeholder*='Location']",
		},
		Value: profile.Location,
	})

	// Work authorization, answered truthfully from the profile.
	f.prober.AnswerYesNoQuestion(page, "work authorization",
		[]string{"authorized to work", "legally authorized", "work authorization"},
		profile.AuthorizedInUS)
	f.prober.AnswerYesNoQuestion(page, "sponsorship",
		[]string{"sponsor", "sponsorship", "visa", "work permit"},
		profile.RequiresSponsorship)

	f.prober.SelectByKeyword(page, "referral source",
		[]string{
			"select[name*='how_did_you_hear']",
			"select[id*='how_did_you_hear']",
			"select[name*='source']",
		},
		[]string{"website", "company website", "job board", "other"})

	f.prober.SelectByKeyword(page, "education level",
		[]string{
			"select[name*='degree']",
			"select[id*='degree']",
			"select[name*='education']",
		},
		[]string{"master"})
	f.prober.SelectByKeyword(page, "experience bracket",
		[]string{
			"select[name*='experience']",
			"select[id*='experience']",
		},
		[]string{"10+", "10 or more", "8+", "5+"})

	if !f.prober.FillFirst(page, FieldProbe{
		Field: "cover letter",
		Selectors: []string{
			"textarea#cover_letter_text",
			"textarea[name*='cover_letter']",
			"textarea[id*='cover_letter']",
			"textarea[aria-label*='Cover Letter']",
		},
		Value: coverLetter,
	}) {
		f.prober.FillTextareaByKeyword(page, []string{"cover", "why", "additional"}, coverLetter)
	}

	f.prober.UploadFile(page, []string{
		"input#resume",
		"input[name='job_application[resume]']",
		"input[name*='resume']",
		"input[type='file'][accept*='pdf']",
		"input[type='file']",
	}, resumePath)

	f.prober.CheckConsentBoxes(page, []string{"age", "eighteen", "background", "terms", "consent", "privacy"})
}
