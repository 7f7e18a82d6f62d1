package services

import (
	"log"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// OutcomeClassifier decides what a page is telling us after a submit
// click. Detection is plain phrase membership over rendered text; the
// phrase tables are data so vendors can extend them without touching
// control flow.
type OutcomeClassifier struct {
	successPhrases      []string
	verificationPhrases []string
	errorSelectors      []string
}

func NewOutcomeClassifier() *OutcomeClassifier {
	return &OutcomeClassifier{
		successPhrases: []string{
			"thank you",
			"application received",
			"submitted successfully",
			"we received your application",
			"application has been submitted",
			"your application is now complete",
			"we'll be in touch",
		},
		verificationPhrases: []string{
			"security code",
			"verification code",
			"enter the code",
			"code sent to your email",
			"check your email for a code",
		},
		errorSelectors: []string{
			"[class*='error']",
			"[class*='alert']",
			"[role='alert']",
			"[class*='field-error']",
		},
	}
}

// WithSuccessPhrases appends vendor-specific success phrases.
func (oc *OutcomeClassifier) WithSuccessPhrases(phrases ...string) *OutcomeClassifier {
	oc.successPhrases = append(oc.successPhrases, phrases...)
	return oc
}

// IsSuccess reports whether the page text contains a success phrase.
func (oc *OutcomeClassifier) IsSuccess(pageText string) bool {
	lowered := strings.ToLower(pageText)
	for _, phrase := range oc.successPhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}

// NeedsVerification reports whether the page is gating submission behind
// an emailed security code.
func (oc *OutcomeClassifier) NeedsVerification(pageText string) bool {
	lowered := strings.ToLower(pageText)
	for _, phrase := range oc.verificationPhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}

// ExtractError scans the page for an error-class element and returns its
// text, or "Unknown error" when nothing useful is visible.
func (oc *OutcomeClassifier) ExtractError(page playwright.Page) string {
	for _, selector := range oc.errorSelectors {
		element := page.Locator(selector).First()
		visible, err := element.IsVisible()
		if err != nil || !visible {
			continue
		}

		text, err := element.TextContent()
		if err != nil {
			continue
		}

		text = strings.TrimSpace(text)
		if text != "" {
			log.Printf("Found error element via '%s': %s", selector, text)
			return text
		}
	}

	return "Unknown error"
}
