package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vibejobhunter/config"
	"vibejobhunter/models"
)

func TestMatchOptionByKeyword(t *testing.T) {
	options := []string{"Select...", "Company website", "Job board", "Referral", "Other"}

	assert.Equal(t, 1, MatchOptionByKeyword(options, []string{"website"}))
	assert.Equal(t, 2, MatchOptionByKeyword(options, []string{"job board"}))
	assert.Equal(t, 4, MatchOptionByKeyword(options, []string{"other"}))
	assert.Equal(t, -1, MatchOptionByKeyword(options, []string{"billboard"}))
}

func TestMatchOptionByKeyword_SkipsPlaceholders(t *testing.T) {
	options := []string{"Select an option", "Choose one", "Master's Degree"}

	// "Select an option" contains no real content; only real options match.
	assert.Equal(t, 2, MatchOptionByKeyword(options, []string{"master"}))
	assert.Equal(t, -1, MatchOptionByKeyword(options, []string{"select"}))
}

func TestMatchYesNoOption(t *testing.T) {
	options := []string{"Select...", "Yes", "No"}

	assert.Equal(t, 1, MatchYesNoOption(options, true))
	assert.Equal(t, 2, MatchYesNoOption(options, false))
}

func TestMatchYesNoOption_VerboseOptions(t *testing.T) {
	options := []string{
		"Select...",
		"Yes, now or in the future",
		"No, sponsorship is not required",
	}

	assert.Equal(t, 1, MatchYesNoOption(options, true))
	assert.Equal(t, 2, MatchYesNoOption(options, false))
}

// A profile that requires sponsorship must never resolve to a "No" /
// "not required" sponsorship option, whatever the vendor's wording.
func TestSponsorshipAnswerIsNeverFalsified(t *testing.T) {
	profile := models.LoadApplicantProfile(config.ApplicantConfig{FirstName: "Elena", LastName: "Revicheva"})
	assert.True(t, profile.RequiresSponsorship)
	assert.Equal(t, "Yes", profile.SponsorshipAnswer())

	fixtures := [][]string{
		{"Select...", "Yes", "No"},
		{"Choose one", "Yes, I will require sponsorship", "No, I will not require sponsorship"},
		{"Select...", "No, not required", "Yes, now or in the future"},
	}

	for _, options := range fixtures {
		idx := MatchYesNoOption(options, profile.RequiresSponsorship)
		if assert.GreaterOrEqual(t, idx, 0) {
			picked := options[idx]
			assert.NotContains(t, picked, "No,")
			assert.NotContains(t, picked, "not required")
		}
	}
}

// When a sponsorship dropdown only offers a "No" answer, the question must
// stay unanswered rather than be answered falsely.
func TestMatchYesNoOption_NoTruthfulOption(t *testing.T) {
	options := []string{"Select...", "No, sponsorship is not required"}
	assert.Equal(t, -1, MatchYesNoOption(options, true))
}

func TestWorkAuthorizationAnswers(t *testing.T) {
	profile := models.LoadApplicantProfile(config.ApplicantConfig{})

	assert.Equal(t, "No", profile.WorkAuthorizationAnswer())
	assert.Equal(t, "Yes", profile.SponsorshipAnswer())

	authorized := *profile
	authorized.AuthorizedInUS = true
	authorized.RequiresSponsorship = false
	assert.Equal(t, "Yes", authorized.WorkAuthorizationAnswer())
	assert.Equal(t, "No", authorized.SponsorshipAnswer())
}
