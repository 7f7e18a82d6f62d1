package services

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"

	"vibejobhunter/config"
	"vibejobhunter/models"
)

// vendorFiller is one ATS platform's form-filling flow.
type vendorFiller interface {
	ApplySelectors() []string
	SubmitSelectors() []string
	Fill(page playwright.Page, profile *models.ApplicantProfile, coverLetter, resumePath string)
}

// ATSSubmitter drives one job application end to end: duplicate guard,
// vendor detection, dry-run short circuit, browser fill/submit, optional
// email verification, outcome classification and logging.
//
// SubmitApplication never returns an error: every failure is folded into
// the SubmissionResult so a batch caller cannot be crashed by one bad job.
// Submissions run strictly one at a time.
type ATSSubmitter struct {
	cfg           config.ATSConfig
	profile       *models.ApplicantProfile
	submissionLog *SubmissionLog
	verifier      *EmailVerifier
	classifier    *OutcomeClassifier
	screenshots   *ScreenshotService
	fillers       map[string]vendorFiller

	mu      sync.Mutex
	pw      *playwright.Playwright
	browser playwright.Browser
}

func NewATSSubmitter(cfg config.ATSConfig, profile *models.ApplicantProfile, submissionLog *SubmissionLog, verifier *EmailVerifier) *ATSSubmitter {
	return &ATSSubmitter{
		cfg:           cfg,
		profile:       profile,
		submissionLog: submissionLog,
		verifier:      verifier,
		classifier:    NewOutcomeClassifier(),
		screenshots:   NewScreenshotService(),
		fillers: map[string]vendorFiller{
			ATSGreenhouse: &GreenhouseFiller{},
			ATSLever:      &LeverFiller{},
			ATSAshby:      &AshbyFiller{},
			ATSWorkable:   &WorkableFiller{},
		},
	}
}

// Close releases the browser session. Safe to call when the browser was
// never started (dry runs never launch one).
func (s *ATSSubmitter) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			log.Printf("Failed to close browser: %v", err)
		}
		s.browser = nil
	}
	if s.pw != nil {
		if err := s.pw.Stop(); err != nil {
			log.Printf("Failed to stop playwright: %v", err)
		}
		s.pw = nil
	}
}

// SubmitApplication processes one job. Exactly one submission log entry is
// written regardless of outcome.
func (s *ATSSubmitter) SubmitApplication(job models.Job, coverLetter string) *models.SubmissionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if job.Company == "" {
		job.Company = CompanyFromURL(job.URL)
	}

	log.Printf("Processing application: %s at %s (%s)", job.Title, job.Company, job.URL)

	if s.submissionLog.IsDuplicate(job.URL) {
		log.Printf("Skipping %s: already submitted", job.URL)
		return s.finish(job, &models.SubmissionResult{
			Success: false,
			JobID:   job.ID,
			Company: job.Company,
			Error:   "Already submitted",
		}, models.StatusFailed)
	}

	atsType := DetectATSType(job.URL, job.Source)
	if atsType == ATSUnknown {
		return s.finish(job, &models.SubmissionResult{
			Success: false,
			JobID:   job.ID,
			Company: job.Company,
			ATSType: atsType,
			Error:   "Unknown ATS type",
		}, models.StatusFailed)
	}

	if s.cfg.DryRun {
		log.Printf("DRY RUN: would submit to %s via %s", job.Company, atsType)
		return s.finish(job, &models.SubmissionResult{
			Success:        true,
			JobID:          job.ID,
			Company:        job.Company,
			ATSType:        atsType,
			ConfirmationID: models.DryRunConfirmationID,
			DryRun:         true,
		}, models.StatusDryRun)
	}

	result := s.submitLive(job, atsType, coverLetter)

	status := models.StatusSubmitted
	if !result.Success {
		status = models.StatusError
		if result.Error == "Unknown error" || strings.HasPrefix(result.Error, "Could not find") {
			status = models.StatusFailed
		}
	}
	return s.finish(job, result, status)
}

// finish records the terminal log entry and returns the result.
func (s *ATSSubmitter) finish(job models.Job, result *models.SubmissionResult, status string) *models.SubmissionResult {
	entry := models.SubmissionLogEntry{
		ID:        uuid.NewString(),
		URL:       job.URL,
		Company:   job.Company,
		Title:     job.Title,
		JobID:     job.ID,
		Status:    status,
		Error:     result.Error,
		Timestamp: time.Now(),
		DryRun:    result.DryRun,
	}
	if err := s.submissionLog.Record(entry); err != nil {
		log.Printf("⚠ Failed to record submission log entry: %v", err)
	}
	return result
}

// submitLive runs the browser flow for a known vendor. All failures are
// converted into a failed result; nothing propagates.
func (s *ATSSubmitter) submitLive(job models.Job, atsType, coverLetter string) *models.SubmissionResult {
	result := &models.SubmissionResult{
		JobID:   job.ID,
		Company: job.Company,
		ATSType: atsType,
	}

	filler := s.fillers[atsType]

	if err := s.ensureBrowser(); err != nil {
		result.Error = fmt.Sprintf("Failed to start browser: %v", err)
		return result
	}

	page, err := s.browser.NewPage()
	if err != nil {
		result.Error = fmt.Sprintf("Failed to create page: %v", err)
		return result
	}
	defer page.Close()

	page.SetExtraHTTPHeaders(map[string]string{
		"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36",
	})

	if err := s.navigate(page, job.URL); err != nil {
		result.Error = fmt.Sprintf("Failed to load job page: %v", err)
		return result
	}

	// Vendors that show a posting page first need the apply action
	// clicked; boards that land directly on the form won't have one.
	if s.clickFirst(page, filler.ApplySelectors()) {
		page.WaitForTimeout(1500)
	}

	filler.Fill(page, s.profile, coverLetter, s.resolveResumePath())
	s.screenshots.Capture(page, job.ID, "filled")

	if !s.clickFirst(page, filler.SubmitSelectors()) {
		result.Error = "Could not find submit button"
		return result
	}
	page.WaitForTimeout(2500)

	text := pageText(page)

	if s.classifier.NeedsVerification(text) {
		log.Printf("Submission gated behind an emailed security code")
		code := s.verifier.WaitForCode(job.Company, s.cfg.VerificationTimeout)
		if code != "" {
			s.enterVerificationCode(page, code)
			if s.clickFirst(page, filler.SubmitSelectors()) {
				page.WaitForTimeout(2500)
			}
			text = pageText(page)
		}
		// On timeout the page is evaluated as-is; the run is not aborted.
	}

	if s.classifier.IsSuccess(text) {
		now := time.Now()
		result.Success = true
		result.SubmittedAt = &now
		result.ConfirmationID = buildConfirmationID(atsType, now)
		s.screenshots.Capture(page, job.ID, "confirmation")
		log.Printf("✓ Application submitted: %s at %s (%s)", job.Title, job.Company, result.ConfirmationID)
		return result
	}

	result.Error = s.classifier.ExtractError(page)
	log.Printf("⚠ Submission not confirmed for %s: %s", job.URL, result.Error)
	return result
}

// ensureBrowser lazily starts the shared browser session. Dry runs and
// short-circuited jobs never reach this.
func (s *ATSSubmitter) ensureBrowser() error {
	if s.browser != nil {
		return nil
	}

	pw, err := playwright.Run()
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
		Args: []string{
			"--no-sandbox",
			"--disable-blink-features=AutomationControlled",
			"--disable-extensions",
		},
	})
	if err != nil {
		pw.Stop()
		return fmt.Errorf("failed to launch browser: %w", err)
	}

	s.pw = pw
	s.browser = browser
	return nil
}

// navigate loads the job page with the fixed timeout, retrying once on
// failure. Navigation is the only step that gets a retry: it cannot
// double-submit.
func (s *ATSSubmitter) navigate(page playwright.Page, jobURL string) error {
	opts := playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
		Timeout:   playwright.Float(float64(s.cfg.NavigationTimeout.Milliseconds())),
	}

	_, err := page.Goto(jobURL, opts)
	if err != nil {
		log.Printf("Navigation failed, retrying once: %v", err)
		_, err = page.Goto(jobURL, opts)
	}
	return err
}

func (s *ATSSubmitter) clickFirst(page playwright.Page, selectors []string) bool {
	for _, selector := range selectors {
		button := page.Locator(selector).First()
		visible, err := button.IsVisible()
		if err != nil || !visible {
			continue
		}
		if disabled, _ := button.IsDisabled(); disabled {
			continue
		}
		if err := button.Click(); err != nil {
			log.Printf("Failed to click '%s': %v", selector, err)
			continue
		}
		log.Printf("✓ Clicked '%s'", selector)
		return true
	}
	return false
}

func (s *ATSSubmitter) enterVerificationCode(page playwright.Page, code string) {
	selectors := []string{
		"input[name='security_code']",
		"input[id*='security']",
		"input[autocomplete='one-time-code']",
		"input[name*='verification']",
		"input[placeholder*='code']",
	}

	for _, selector := range selectors {
		input := page.Locator(selector).First()
		visible, err := input.IsVisible()
		if err != nil || !visible {
			continue
		}
		if err := input.Fill(code); err != nil {
			log.Printf("Failed to enter verification code via '%s': %v", selector, err)
			continue
		}
		log.Printf("✓ Entered verification code")
		return
	}

	log.Printf("⚠ Could not locate a verification code input")
}

// resolveResumePath returns the configured resume path, falling back to a
// filesystem search of the usual locations. A missing resume degrades the
// submission (no upload), it does not abort it.
func (s *ATSSubmitter) resolveResumePath() string {
	candidates := []string{
		s.cfg.ResumePath,
		"resume.pdf",
		filepath.Join("assets", "resume.pdf"),
		filepath.Join(s.cfg.DataDir, "resume.pdf"),
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, "Documents", "resume.pdf"))
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}

	log.Printf("⚠ No resume file found, submitting without an upload")
	return ""
}

func pageText(page playwright.Page) string {
	text, err := page.Locator("body").InnerText()
	if err != nil {
		return ""
	}
	return text
}

func buildConfirmationID(atsType string, t time.Time) string {
	return fmt.Sprintf("%s_%s", confirmationTag(atsType), t.Format("20060102_150405"))
}
