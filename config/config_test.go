package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetATSConfig_Defaults(t *testing.T) {
	cfg := GetATSConfig()

	assert.True(t, cfg.DryRun, "dry run must default to on")
	assert.False(t, cfg.RequireConfirmation)
	assert.Equal(t, "autonomous_data", cfg.DataDir)
	assert.Equal(t, 30*time.Second, cfg.NavigationTimeout)
	assert.Equal(t, 120*time.Second, cfg.VerificationTimeout)
}

func TestGetATSConfig_Overrides(t *testing.T) {
	t.Setenv("ATS_DRY_RUN", "false")
	t.Setenv("RESUME_PATH", "/data/resume.pdf")
	t.Setenv("ATS_VERIFICATION_TIMEOUT_SECONDS", "90")

	cfg := GetATSConfig()

	assert.False(t, cfg.DryRun)
	assert.Equal(t, "/data/resume.pdf", cfg.ResumePath)
	assert.Equal(t, 90*time.Second, cfg.VerificationTimeout)
}

func TestGetATSConfig_InvalidBoolKeepsDefault(t *testing.T) {
	t.Setenv("ATS_DRY_RUN", "sure")

	assert.True(t, GetATSConfig().DryRun)
}

func TestGetApplicantConfig_Overrides(t *testing.T) {
	t.Setenv("APPLICANT_FIRST_NAME", "Ada")
	t.Setenv("APPLICANT_EMAIL", "ada@example.com")

	cfg := GetApplicantConfig()

	assert.Equal(t, "Ada", cfg.FirstName)
	assert.Equal(t, "ada@example.com", cfg.Email)
	assert.Equal(t, "Revicheva", cfg.LastName)
}

func TestGetMailboxConfig_PasswordFallback(t *testing.T) {
	t.Setenv("ZOHO_EMAIL", "me@example.com")
	t.Setenv("ZOHO_PASSWORD", "plain-password")

	cfg := GetMailboxConfig()
	assert.Equal(t, "plain-password", cfg.Password)

	t.Setenv("ZOHO_APP_PASSWORD", "app-password")
	cfg = GetMailboxConfig()
	assert.Equal(t, "app-password", cfg.Password, "app password takes precedence")
	assert.Equal(t, "imap.zoho.com", cfg.IMAPHost)
}
