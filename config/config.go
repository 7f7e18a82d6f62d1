package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ATSConfig controls the submission pipeline. DryRun defaults to true so a
// misconfigured deployment can never submit anything by accident.
type ATSConfig struct {
	DryRun              bool
	RequireConfirmation bool // reserved for human-confirmation gating
	ResumePath          string
	DataDir             string
	NavigationTimeout   time.Duration
	VerificationTimeout time.Duration
}

// ApplicantConfig holds the candidate facts used to fill application forms.
type ApplicantConfig struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	LinkedIn  string
	GitHub    string
	Portfolio string
	Website   string
	Location  string
}

type MailboxConfig struct {
	Email    string
	Password string
	IMAPHost string
}

type ServerConfig struct {
	Port string
}

type AppConfig struct {
	ATS       ATSConfig
	Applicant ApplicantConfig
	Mailbox   MailboxConfig
	Server    ServerConfig
}

func GetATSConfig() ATSConfig {
	verifyTimeout, _ := strconv.Atoi(getEnv("ATS_VERIFICATION_TIMEOUT_SECONDS", "120"))

	return ATSConfig{
		DryRun:              getEnvBool("ATS_DRY_RUN", true),
		RequireConfirmation: getEnvBool("ATS_REQUIRE_CONFIRMATION", false),
		ResumePath:          getEnv("RESUME_PATH", ""),
		DataDir:             getEnv("ATS_DATA_DIR", "autonomous_data"),
		NavigationTimeout:   30 * time.Second,
		VerificationTimeout: time.Duration(verifyTimeout) * time.Second,
	}
}

func GetApplicantConfig() ApplicantConfig {
	return ApplicantConfig{
		FirstName: getEnv("APPLICANT_FIRST_NAME", "Elena"),
		LastName:  getEnv("APPLICANT_LAST_NAME", "Revicheva"),
		Email:     getEnv("APPLICANT_EMAIL", ""),
		Phone:     getEnv("APPLICANT_PHONE", ""),
		LinkedIn:  getEnv("APPLICANT_LINKEDIN", ""),
		GitHub:    getEnv("APPLICANT_GITHUB", ""),
		Portfolio: getEnv("APPLICANT_PORTFOLIO", ""),
		Website:   getEnv("APPLICANT_WEBSITE", ""),
		Location:  getEnv("APPLICANT_LOCATION", "Panama City, Panama"),
	}
}

func GetMailboxConfig() MailboxConfig {
	password := getEnv("ZOHO_APP_PASSWORD", "")
	if password == "" {
		password = getEnv("ZOHO_PASSWORD", "")
	}

	email := getEnv("ZOHO_EMAIL", "")
	if email == "" || password == "" {
		fmt.Println("⚠️  Warning: ZOHO_EMAIL / ZOHO_APP_PASSWORD are not set.")
		fmt.Println("   Email verification codes cannot be retrieved without them.")
		fmt.Println("   Submissions that require a security code will be evaluated as-is.")
	}

	return MailboxConfig{
		Email:    email,
		Password: password,
		IMAPHost: getEnv("ZOHO_IMAP_HOST", "imap.zoho.com"),
	}
}

func GetAppConfig() AppConfig {
	return AppConfig{
		ATS:       GetATSConfig(),
		Applicant: GetApplicantConfig(),
		Mailbox:   GetMailboxConfig(),
		Server:    ServerConfig{Port: getEnv("PORT", "8081")},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
