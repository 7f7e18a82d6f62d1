package services

import (
	"io"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/emersion/go-message/mail"

	"vibejobhunter/config"
)

const (
	verificationSender = "no-reply@greenhouse.io"
	pollInterval       = 5 * time.Second
	maxCandidates      = 10
	maxMessageAge      = 5 * time.Minute
)

// Ordered most-specific first. Captures are validated separately: a code
// is eight uppercase-or-digit characters containing at least one of each
// class, so ordinary 8-letter words never pass.
var codePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)copy and paste this code[^\n]*\n\s*([A-Za-z0-9]{8})\b`),
	regexp.MustCompile(`(?i)security code[^\n]{0,40}?\b([A-Za-z0-9]{8})\b`),
	regexp.MustCompile(`(?m)^[ \t]*([A-Za-z0-9]{8})[ \t]*$`),
}

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// EmailVerifier polls the candidate's mailbox for ATS security-code
// emails during a verification-gated submission.
type EmailVerifier struct {
	cfg config.MailboxConfig
}

func NewEmailVerifier(cfg config.MailboxConfig) *EmailVerifier {
	return &EmailVerifier{cfg: cfg}
}

// WaitForCode polls the inbox until a matching code email arrives or the
// timeout elapses. Returns "" on timeout or any mailbox failure; the
// caller treats that as non-fatal and evaluates the page as-is.
func (v *EmailVerifier) WaitForCode(companyHint string, timeout time.Duration) string {
	if v.cfg.Email == "" || v.cfg.Password == "" {
		log.Printf("⚠ Mailbox credentials not configured, cannot retrieve verification code")
		return ""
	}

	deadline := time.Now().Add(timeout)
	log.Printf("Waiting up to %s for a verification code (company hint: %q)", timeout, companyHint)

	for {
		code, err := v.checkInbox(companyHint)
		if err != nil {
			log.Printf("⚠ Mailbox check failed: %v", err)
		}
		if code != "" {
			log.Printf("✓ Retrieved verification code from mailbox")
			return code
		}

		if time.Now().After(deadline) {
			log.Printf("⚠ Verification code did not arrive within %s", timeout)
			return ""
		}
		time.Sleep(pollInterval)
	}
}

// checkInbox performs one IMAP round trip: search for the fixed sender,
// fetch the newest candidates, and try to extract a code.
func (v *EmailVerifier) checkInbox(companyHint string) (string, error) {
	c, err := client.DialTLS(v.cfg.IMAPHost+":993", nil)
	if err != nil {
		return "", err
	}
	defer c.Logout()

	if err := c.Login(v.cfg.Email, v.cfg.Password); err != nil {
		return "", err
	}

	if _, err := c.Select("INBOX", false); err != nil {
		return "", err
	}

	criteria := imap.NewSearchCriteria()
	criteria.Header.Add("From", verificationSender)
	ids, err := c.Search(criteria)
	if err != nil {
		return "", err
	}
	if len(ids) == 0 {
		return "", nil
	}

	if len(ids) > maxCandidates {
		ids = ids[len(ids)-maxCandidates:]
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(ids...)

	section := &imap.BodySectionName{}
	items := []imap.FetchItem{imap.FetchEnvelope, section.FetchItem()}

	messages := make(chan *imap.Message, maxCandidates)
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqset, items, messages)
	}()

	var candidates []*imap.Message
	for msg := range messages {
		candidates = append(candidates, msg)
	}
	if err := <-done; err != nil {
		return "", err
	}

	// Most recent first.
	for i := len(candidates) - 1; i >= 0; i-- {
		msg := candidates[i]
		if msg.Envelope == nil {
			continue
		}
		if !SubjectMatches(msg.Envelope.Subject, companyHint) {
			continue
		}
		if time.Since(msg.Envelope.Date) > maxMessageAge {
			continue
		}

		body := readMessageBody(msg, section)
		if code := ExtractVerificationCode(body); code != "" {
			return code, nil
		}
	}

	return "", nil
}

// SubjectMatches requires the fixed "security code" subject marker and,
// when a company hint is given, the company name as well.
func SubjectMatches(subject, companyHint string) bool {
	lowered := strings.ToLower(subject)
	if !strings.Contains(lowered, "security code") {
		return false
	}
	if companyHint != "" && !strings.Contains(lowered, strings.ToLower(companyHint)) {
		return false
	}
	return true
}

// ExtractVerificationCode pulls an 8-character alphanumeric code out of a
// message body using the ordered pattern list. Returns "" when nothing
// matches.
func ExtractVerificationCode(body string) string {
	plain := htmlTagRe.ReplaceAllString(body, "\n")

	for _, pattern := range codePatterns {
		for _, matches := range pattern.FindAllStringSubmatch(plain, -1) {
			if len(matches) < 2 {
				continue
			}
			if code := matches[1]; looksLikeCode(code) {
				return code
			}
		}
	}

	return ""
}

// looksLikeCode accepts only uppercase-and-digit tokens with at least one
// letter and one digit, which rules out ordinary 8-letter words.
func looksLikeCode(s string) bool {
	var letter, digit bool
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case r >= 'A' && r <= 'Z':
			letter = true
		default:
			return false
		}
	}
	return letter && digit
}

func readMessageBody(msg *imap.Message, section *imap.BodySectionName) string {
	r := msg.GetBody(section)
	if r == nil {
		return ""
	}

	mr, err := mail.CreateReader(r)
	if err != nil {
		// Not MIME; fall back to the raw section.
		raw, _ := io.ReadAll(r)
		return string(raw)
	}

	var sb strings.Builder
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}

		if _, ok := part.Header.(*mail.InlineHeader); ok {
			content, _ := io.ReadAll(part.Body)
			sb.Write(content)
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
