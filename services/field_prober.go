package services

import (
	"log"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// FieldProbe is one semantic form field: an ordered list of selectors,
// ranked most-specific first, and the value to write into the first one
// that is found, visible and still empty.
type FieldProbe struct {
	Field     string
	Selectors []string
	Value     string
}

// FieldProber implements the selector-probing strategies shared by every
// vendor filler. All probing is best-effort: a field that cannot be
// located is a warning, never an error.
type FieldProber struct{}

// FillFirst probes the selectors in order and fills the first visible,
// empty match. A field that already has a value is left alone.
func (fp *FieldProber) FillFirst(page playwright.Page, probe FieldProbe) bool {
	if probe.Value == "" {
		return false
	}

	for _, selector := range probe.Selectors {
		element := page.Locator(selector).First()
		visible, err := element.IsVisible()
		if err != nil || !visible {
			continue
		}

		if current, err := element.InputValue(); err == nil && current != "" {
			log.Printf("Field %s already filled, leaving as-is", probe.Field)
			return false
		}

		if err := element.Fill(probe.Value); err != nil {
			log.Printf("Failed to fill %s via '%s': %v", probe.Field, selector, err)
			continue
		}

		log.Printf("✓ Filled %s via '%s'", probe.Field, selector)
		return true
	}

	log.Printf("⚠ No match for field %s, skipping", probe.Field)
	return false
}

// SelectByKeyword resolves a dropdown by scanning option text for keyword
// membership instead of value equality, because vendors use arbitrary
// internal value codes.
func (fp *FieldProber) SelectByKeyword(page playwright.Page, field string, selectors []string, keywords []string) bool {
	for _, selector := range selectors {
		dropdown := page.Locator(selector).First()
		visible, err := dropdown.IsVisible()
		if err != nil || !visible {
			continue
		}

		options, err := dropdown.Locator("option").All()
		if err != nil {
			continue
		}

		texts := make([]string, 0, len(options))
		for _, option := range options {
			text, _ := option.TextContent()
			texts = append(texts, text)
		}

		idx := MatchOptionByKeyword(texts, keywords)
		if idx < 0 {
			log.Printf("⚠ No option matched %v for %s", keywords, field)
			continue
		}

		value, err := options[idx].GetAttribute("value")
		if err != nil || value == "" {
			// Some vendors key options by label text instead of value.
			value = strings.TrimSpace(texts[idx])
		}

		if _, err := dropdown.SelectOption(playwright.SelectOptionValues{Values: &[]string{value}}); err != nil {
			log.Printf("Failed to select '%s' for %s: %v", texts[idx], field, err)
			continue
		}

		log.Printf("✓ Selected '%s' for %s", strings.TrimSpace(texts[idx]), field)
		return true
	}

	return false
}

// SelectRadioYesNo handles yes/no radio-button groups: click the label
// whose text truthfully answers the question. Leaves the group untouched
// when no truthful option exists.
func (fp *FieldProber) SelectRadioYesNo(page playwright.Page, field, groupSelector string, wantYes bool) bool {
	labels, err := page.Locator(groupSelector + " label").All()
	if err != nil || len(labels) == 0 {
		return false
	}

	texts := make([]string, 0, len(labels))
	for _, label := range labels {
		text, _ := label.TextContent()
		texts = append(texts, text)
	}

	idx := MatchYesNoOption(texts, wantYes)
	if idx < 0 {
		log.Printf("⚠ No truthful option for %s radio group, leaving unanswered", field)
		return false
	}

	if err := labels[idx].Click(); err != nil {
		log.Printf("Failed to click radio '%s' for %s: %v", strings.TrimSpace(texts[idx]), field, err)
		return false
	}

	log.Printf("✓ Picked radio '%s' for %s", strings.TrimSpace(texts[idx]), field)
	return true
}

// UploadFile probes file-input selectors in specificity order; first match
// wins. File inputs are often visually hidden, so only existence is
// required, not visibility.
func (fp *FieldProber) UploadFile(page playwright.Page, selectors []string, filePath string) bool {
	if filePath == "" {
		return false
	}

	for _, selector := range selectors {
		fileInput := page.Locator(selector).First()
		count, err := fileInput.Count()
		if err != nil || count == 0 {
			continue
		}

		if err := fileInput.SetInputFiles(filePath); err != nil {
			log.Printf("Failed to upload resume via '%s': %v", selector, err)
			continue
		}

		log.Printf("✓ Uploaded resume via '%s'", selector)
		return true
	}

	log.Printf("⚠ No file input found for resume upload")
	return false
}

// FillTextareaByKeyword is the cover-letter fallback: when no attribute
// selector matches, scan all visible textareas for a placeholder or
// aria-label containing one of the keywords.
func (fp *FieldProber) FillTextareaByKeyword(page playwright.Page, keywords []string, value string) bool {
	if value == "" {
		return false
	}

	textareas, err := page.Locator("textarea").All()
	if err != nil {
		return false
	}

	for _, textarea := range textareas {
		visible, err := textarea.IsVisible()
		if err != nil || !visible {
			continue
		}

		placeholder, _ := textarea.GetAttribute("placeholder")
		ariaLabel, _ := textarea.GetAttribute("aria-label")
		name, _ := textarea.GetAttribute("name")
		context := strings.ToLower(placeholder + " " + ariaLabel + " " + name)

		for _, keyword := range keywords {
			if strings.Contains(context, keyword) {
				if current, err := textarea.InputValue(); err == nil && current != "" {
					return false
				}
				if err := textarea.Fill(value); err == nil {
					log.Printf("✓ Filled textarea matching '%s'", keyword)
					return true
				}
			}
		}
	}

	return false
}

// CheckConsentBoxes checks any unchecked checkbox whose name contains one
// of the given substrings. Returns the number of boxes checked.
func (fp *FieldProber) CheckConsentBoxes(page playwright.Page, nameSubstrings []string) int {
	checked := 0

	boxes, err := page.Locator("input[type='checkbox']").All()
	if err != nil {
		return 0
	}

	for _, box := range boxes {
		name, _ := box.GetAttribute("name")
		id, _ := box.GetAttribute("id")
		context := strings.ToLower(name + " " + id)

		matched := false
		for _, substr := range nameSubstrings {
			if strings.Contains(context, substr) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		if isChecked, err := box.IsChecked(); err != nil || isChecked {
			continue
		}

		if err := box.Check(); err != nil {
			log.Printf("Failed to check consent box '%s': %v", context, err)
			continue
		}

		log.Printf("✓ Checked consent box '%s'", strings.TrimSpace(context))
		checked++
	}

	return checked
}

// AnswerYesNoQuestion scans all visible dropdowns for one whose
// surrounding context (name, id, aria-label, associated label text)
// mentions the question keywords, then selects the option matching the
// given answer. The answer comes from the profile and is never inverted:
// if the truthful option is absent the question stays unanswered.
func (fp *FieldProber) AnswerYesNoQuestion(page playwright.Page, field string, questionKeywords []string, wantYes bool) bool {
	dropdowns, err := page.Locator("select").All()
	if err != nil {
		return false
	}

	for _, dropdown := range dropdowns {
		visible, err := dropdown.IsVisible()
		if err != nil || !visible {
			continue
		}

		context := strings.ToLower(selectContext(page, dropdown))
		matched := false
		for _, keyword := range questionKeywords {
			if strings.Contains(context, strings.ToLower(keyword)) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		options, err := dropdown.Locator("option").All()
		if err != nil {
			continue
		}
		texts := make([]string, 0, len(options))
		for _, option := range options {
			text, _ := option.TextContent()
			texts = append(texts, text)
		}

		idx := MatchYesNoOption(texts, wantYes)
		if idx < 0 {
			log.Printf("⚠ No truthful option for %s (want yes=%v), leaving unanswered", field, wantYes)
			return false
		}

		value, err := options[idx].GetAttribute("value")
		if err != nil || value == "" {
			value = strings.TrimSpace(texts[idx])
		}
		if _, err := dropdown.SelectOption(playwright.SelectOptionValues{Values: &[]string{value}}); err != nil {
			log.Printf("Failed to answer %s: %v", field, err)
			return false
		}

		log.Printf("✓ Answered %s with '%s'", field, strings.TrimSpace(texts[idx]))
		return true
	}

	return false
}

// selectContext gathers identifying text around a dropdown: attributes,
// the label pointed at it, and the immediately preceding element.
func selectContext(page playwright.Page, dropdown playwright.Locator) string {
	var parts []string

	if name, _ := dropdown.GetAttribute("name"); name != "" {
		parts = append(parts, name)
	}
	if id, _ := dropdown.GetAttribute("id"); id != "" {
		parts = append(parts, id)

		label := page.Locator("label[for='" + id + "']")
		if count, _ := label.Count(); count > 0 {
			if text, _ := label.First().TextContent(); text != "" {
				parts = append(parts, text)
			}
		}
	}
	if ariaLabel, _ := dropdown.GetAttribute("aria-label"); ariaLabel != "" {
		parts = append(parts, ariaLabel)
	}

	preceding := dropdown.Locator("xpath=preceding-sibling::*[1]")
	if count, _ := preceding.Count(); count > 0 {
		if text, _ := preceding.First().TextContent(); text != "" && len(text) < 200 {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " | ")
}

// MatchOptionByKeyword returns the index of the first option whose text
// contains any of the keywords (case-insensitive), or -1. Placeholder
// options ("Select...", "Choose...") never match.
func MatchOptionByKeyword(optionTexts []string, keywords []string) int {
	for i, text := range optionTexts {
		lowered := strings.ToLower(strings.TrimSpace(text))
		if lowered == "" || strings.HasPrefix(lowered, "select") || strings.HasPrefix(lowered, "choose") {
			continue
		}
		for _, keyword := range keywords {
			if strings.Contains(lowered, strings.ToLower(keyword)) {
				return i
			}
		}
	}
	return -1
}

// MatchYesNoOption picks the option matching a yes/no answer. "No" matching
// is anchored to the start of the option text so "Not required" style
// options count as no, while "Yes, now or in the future" counts as yes.
func MatchYesNoOption(optionTexts []string, wantYes bool) int {
	for i, text := range optionTexts {
		lowered := strings.ToLower(strings.TrimSpace(text))
		if lowered == "" || strings.HasPrefix(lowered, "select") || strings.HasPrefix(lowered, "choose") {
			continue
		}
		if wantYes {
			if strings.HasPrefix(lowered, "yes") {
				return i
			}
		} else {
			if strings.HasPrefix(lowered, "no") || strings.Contains(lowered, "not require") {
				return i
			}
		}
	}
	return -1
}
