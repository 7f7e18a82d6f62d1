package services

import (
	"log"

	"github.com/playwright-community/playwright-go"

	"vibejobhunter/models"
)

// AshbyFiller populates a jobs.ashbyhq.com application form. Ashby renders
// React-controlled inputs keyed by field ids, so aria/placeholder
// selectors carry more weight than name attributes here.
type AshbyFiller struct {
	prober FieldProber
}

func (f *AshbyFiller) ApplySelectors() []string {
	return []string{
		"a[href*='/application']",
		"button:has-text('Apply for this Job')",
		"button:has-text('Apply')",
	}
}

func (f *AshbyFiller) SubmitSelectors() []string {
	return []string{
		"button[type='submit']",
		"button:has-text('Submit Application')",
		"button:has-text('Submit')",
	}
}

func (f *AshbyFiller) Fill(page playwright.Page, profile *models.ApplicantProfile, coverLetter, resumePath string) {
	log.Printf("Filling Ashby application form")

	f.prober.FillFirst(page, FieldProbe{
		Field: "name",
		Selectors: []string{
			"input[id*='_systemfield_name']",
			"input[name='_systemfield_name']",
			"input[aria-label*='Name']",
			"input[placeholder*='Full name']",
			"input[placeholder*='Name']",
		},
		Value: profile.FullName,
	})

	f.prober.FillFirst(page, FieldProbe{
		Field: "email",
		Selectors: []string{
			"input[id*='_systemfield_email']",
			"input[name='_systemfield_email']",
			"input[type='email']",
			"input[aria-label*='Email']",
		},
		Value: profile.Email,
	})
	f.prober.FillFirst(page, FieldProbe{
		Field: "phone",
		Selectors: []string{
			"input[id*='phone']",
			"input[type='tel']",
			"input[aria-label*='Phone']",
		},
		Value: profile.Phone,
	})

	f.prober.FillFirst(page, FieldProbe{
		Field: "linkedin",
		Selectors: []string{
			"input[id*='linkedin']",
			"input[aria-label*='LinkedIn']",
			"input[placeholder*='LinkedIn']",
		},
		Value: profile.LinkedIn,
	})
	f.prober.FillFirst(page, FieldProbe{
		Field: "github",
		Selectors: []string{
			"input[id*='github']",
			"input[aria-label*='GitHub']",
			"input[placeholder*='GitHub']",
		},
		Value: profile.GitHub,
	})
	f.prober.FillFirst(page, FieldProbe{
		Field: "website",
		Selectors: []string{
			"input[id*='website']",
			"input[aria-label*='Website']",
			"input[placeholder*='Website']",
		},
		Value: profile.Website,
	})

	f.prober.FillFirst(page, FieldProbe{
		Field: "location",
		Selectors: []string{
			"input[id*='location']",
			"input[aria-label*='Location']",
			"input[placeholder*='Location']",
		},
		Value: profile.Location,
	})

	f.prober.AnswerYesNoQuestion(page, "work authorization",
		[]string{"authorized to work", "work authorization"},
		profile.AuthorizedInUS)
	f.prober.AnswerYesNoQuestion(page, "sponsorship",
		[]string{"sponsor", "sponsorship", "visa"},
		profile.RequiresSponsorship)

	// Ashby custom questions are usually radio groups, not selects.
	f.prober.SelectRadioYesNo(page, "sponsorship (radio)",
		"fieldset:has-text('sponsorship')",
		profile.RequiresSponsorship)

	if !f.prober.FillFirst(page, FieldProbe{
		Field: "cover letter",
		Selectors: []string{
			"textarea[id*='cover']",
			"textarea[aria-label*='Cover Letter']",
		},
		Value: coverLetter,
	}) {
		f.prober.FillTextareaByKeyword(page, []string{"cover", "why", "additional"}, coverLetter)
	}

	f.prober.UploadFile(page, []string{
		"input[id*='_systemfield_resume']",
		"input[name*='resume']",
		"input[type='file']",
	}, resumePath)

	f.prober.CheckConsentBoxes(page, []string{"consent", "terms", "privacy"})
}
