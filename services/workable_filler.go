package services

import (
	"log"

	"github.com/playwright-community/playwright-go"

	"vibejobhunter/models"
)

// WorkableFiller populates an apply.workable.com application form.
// Workable tags its fields with data-ui attributes.
type WorkableFiller struct {
	prober FieldProber
}

func (f *WorkableFiller) ApplySelectors() []string {
	return []string{
		"a[data-ui='overview-apply-now']",
		"a[href*='/apply']",
		"button:has-text('Apply now')",
		"button:has-text('Apply')",
	}
}

func (f *WorkableFiller) SubmitSelectors() []string {
	return []string{
		"button[data-ui='apply-button']",
		"button[type='submit']",
		"button:has-text('Submit application')",
	}
}

func (f *WorkableFiller) Fill(page playwright.Page, profile *models.ApplicantProfile, coverLetter, resumePath string) {
	log.Printf("Filling Workable application form")

	f.prober.FillFirst(page, FieldProbe{
		Field: "first name",
		Selectors: []string{
			"input[data-ui='firstname']",
			"input[name='firstname']",
			"input[id*='firstname']",
			"input[autocomplete='given-name']",
		},
		Value: profile.FirstName,
	})
	f.prober.FillFirst(page, FieldProbe{
		Field: "last name",
		Selectors: []string{
			"input[data-ui='lastname']",
			"input[name='lastname']",
			"input[id*='lastname']",
			"input[autocomplete='family-name']",
		},
		Value: profile.LastName,
	})

	f.prober.FillFirst(page, FieldProbe{
		Field: "email",
		Selectors: []string{
			"input[data-ui='email']",
			"input[type='email']",
			"input[name='email']",
		},
		Value: profile.Email,
	})
	f.prober.FillFirst(page, FieldProbe{
		Field: "phone",
		Selectors: []string{
			"input[data-ui='phone']",
			"input[type='tel']",
			"input[name='phone']",
		},
		Value: profile.Phone,
	})

	f.prober.FillFirst(page, FieldProbe{
		Field: "linkedin",
		Selectors: []string{
			"input[data-ui='linkedin']",
			"input[name*='linkedin']",
			"input[placeholder*='LinkedIn']",
		},
		Value: profile.LinkedIn,
	})
	f.prober.FillFirst(page, FieldProbe{
		Field: "website",
		Selectors: []string{
			"input[data-ui='website']",
			"input[name*='website']",
			"input[placeholder*='Website']",
		},
		Value: profile.Website,
	})

	f.prober.FillFirst(page, FieldProbe{
		Field: "location",
		Selectors: []string{
			"input[data-ui='address']",
			"input[name*='address']",
			"input[name*='location']",
			"input[placeholder*='Location']",
		},
		Value: profile.Location,
	})

	f.prober.AnswerYesNoQuestion(page, "work authorization",
		[]string{"authorized to work", "work authorization", "eligible to work"},
		profile.AuthorizedInUS)
	f.prober.AnswerYesNoQuestion(page, "sponsorship",
		[]string{"sponsor", "sponsorship", "visa"},
		profile.RequiresSponsorship)

	f.prober.SelectByKeyword(page, "education level",
		[]string{
			"select[data-ui='education']",
			"select[name*='education']",
			"select[name*='degree']",
		},
		[]string{"master"})

	if !f.prober.FillFirst(page, FieldProbe{
		Field: "cover letter",
		Selectors: []string{
			"textarea[data-ui='cover-letter']",
			"textarea[name*='cover_letter']",
			"textarea[id*='cover']",
		},
		Value: coverLetter,
	}) {
		f.prober.FillTextareaByKeyword(page, []string{"cover", "why", "additional"}, coverLetter)
	}

	f.prober.UploadFile(page, []string{
		"input[data-ui='resume']",
		"input[name='resume']",
		"input[type='file'][accept*='pdf']",
		"input[type='file']",
	}, resumePath)

	f.prober.CheckConsentBoxes(page, []string{"gdpr", "consent", "terms", "privacy"})
}
