package services

import (
	"log"

	"github.com/playwright-community/playwright-go"

	"vibejobhunter/models"
)

// LeverFiller populates a jobs.lever.co application form. Lever uses a
// single full-name field and flat card-field names rather than the
// first/last split Greenhouse uses.
type LeverFiller struct {
	prober FieldProber
}

func (f *LeverFiller) ApplySelectors() []string {
	return []string{
		"a[href$='/apply']",
		"a.postings-btn[href*='apply']",
		"a:has-text('Apply for this job')",
		"button:has-text('Apply')",
	}
}

func (f *LeverFiller) SubmitSelectors() []string {
	return []string{
		"button#btn-submit",
		"button[data-qa='btn-submit']",
		"button[type='submit']",
		"button:has-text('Submit application')",
	}
}

func (f *LeverFiller) Fill(page playwright.Page, profile *models.ApplicantProfile, coverLetter, resumePath string) {
	log.Printf("Filling Lever application form")

	f.prober.FillFirst(page, FieldProbe{
		Field: "full name",
		Selectors: []string{
			"input[name='name']",
			"input#name-input",
			"input[placeholder*='Full name']",
			"input[aria-label*='Full name']",
		},
		Value: profile.FullName,
	})

	f.prober.FillFirst(page, FieldProbe{
		Field: "email",
		Selectors: []string{
			"input[name='email']",
			"input[type='email']",
			"input[placeholder*='Email']",
		},
		Value: profile.Email,
	})
	f.prober.FillFirst(page, FieldProbe{
		Field: "phone",
		Selectors: []string{
			"input[name='phone']",
			"input[type='tel']",
			"input[placeholder*='Phone']",
		},
		Value: profile.Phone,
	})

	f.prober.FillFirst(page, FieldProbe{
		Field: "current company",
		Selectors: []string{
			"input[name='org']",
			"input[placeholder*='Current company']",
			"input[placeholder*='Company']",
		},
		Value: profile.CurrentCompany,
	})

	f.prober.FillFirst(page, FieldProbe{
		Field: "linkedin",
		Selectors: []string{
			"input[name='urls[LinkedIn]']",
			"input[name*='LinkedIn']",
			"input[placeholder*='LinkedIn']",
		},
		Value: profile.LinkedIn,
	})
	f.prober.FillFirst(page, FieldProbe{
		Field: "github",
		Selectors: []string{
			"input[name='urls[GitHub]']",
			"input[name*='GitHub']",
			"input[placeholder*='GitHub']",
		},
		Value: profile.GitHub,
	})
	f.prober.FillFirst(page, FieldProbe{
		Field: "portfolio",
		Selectors: []string{
			"input[name='urls[Portfolio]']",
			"input[name='urls[Other]']",
			"input[placeholder*='Portfolio']",
		},
		Value: profile.Portfolio,
	})

	f.prober.FillFirst(page, FieldProbe{
		Field: "location",
		Selectors: []string{
			"input[name='location']",
			"input#location-input",
			"input[placeholder*='Location']",
		},
		Value: profile.Location,
	})

	f.prober.AnswerYesNoQuestion(page, "work authorization",
		[]string{"authorized to work", "legally authorized", "work authorization"},
		profile.AuthorizedInUS)
	f.prober.AnswerYesNoQuestion(page, "sponsorship",
		[]string{"sponsor", "sponsorship", "visa"},
		profile.RequiresSponsorship)

	f.prober.SelectByKeyword(page, "referral source",
		[]string{
			"select[name='origin']",
			"select[name*='source']",
			"select[name*='hear']",
		},
		[]string{"website", "job board", "other"})

	if !f.prober.FillFirst(page, FieldProbe{
		Field: "cover letter",
		Selectors: []string{
			"textarea[name='comments']",
			"textarea[name*='cover']",
			"textarea[placeholder*='Additional information']",
		},
		Value: coverLetter,
	}) {
		f.prober.FillTextareaByKeyword(page, []string{"cover", "why", "additional"}, coverLetter)
	}

	f.prober.UploadFile(page, []string{
		"input#resume-upload-input",
		"input[name='resume']",
		"input[type='file'][accept*='pdf']",
		"input[type='file']",
	}, resumePath)

	f.prober.CheckConsentBoxes(page, []string{"consent", "terms", "privacy"})
}
