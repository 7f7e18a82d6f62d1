package services

import (
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ATS platform identifiers.
const (
	ATSGreenhouse = "greenhouse"
	ATSLever      = "lever"
	ATSAshby      = "ashby"
	ATSWorkable   = "workable"
	ATSUnknown    = "unknown"
)

var titleCaser = cases.Title(language.English)

// DetectATSType classifies a job URL into one of the known vendor
// platforms. The source hint from the scraper is used as a fallback when
// the URL itself is a company-domain redirect. Always returns a value.
func DetectATSType(jobURL, sourceHint string) string {
	lowered := strings.ToLower(jobURL)

	switch {
	case strings.Contains(lowered, "greenhouse.io"):
		return ATSGreenhouse
	case strings.Contains(lowered, "lever.co"):
		return ATSLever
	case strings.Contains(lowered, "ashbyhq.com"):
		return ATSAshby
	case strings.Contains(lowered, "workable.com"):
		return ATSWorkable
	}

	switch strings.ToLower(strings.TrimSpace(sourceHint)) {
	case ATSGreenhouse, ATSLever, ATSAshby, ATSWorkable:
		return strings.ToLower(strings.TrimSpace(sourceHint))
	}

	return ATSUnknown
}

// confirmationTag maps an ATS type to the prefix used in confirmation IDs.
func confirmationTag(atsType string) string {
	switch atsType {
	case ATSGreenhouse:
		return "GH"
	case ATSLever:
		return "LV"
	case ATSAshby:
		return "AB"
	case ATSWorkable:
		return "WK"
	default:
		return "XX"
	}
}

// CompanyFromURL derives a display company name from a vendor job URL when
// the job record carries none. Vendor boards put the company slug in the
// first path segment (greenhouse, lever, ashby) or the subdomain (workable).
func CompanyFromURL(jobURL string) string {
	parsed, err := url.Parse(jobURL)
	if err != nil {
		return ""
	}

	host := strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")

	if strings.HasSuffix(host, "workable.com") {
		sub := strings.TrimSuffix(host, ".workable.com")
		if sub != "" && sub != "workable.com" && sub != "apply" && sub != "jobs" {
			return titleCaser.String(sub)
		}
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	if len(segments) > 0 && segments[0] != "" && segments[0] != "jobs" {
		return titleCaser.String(strings.ReplaceAll(segments[0], "-", " "))
	}

	parts := strings.Split(host, ".")
	if len(parts) > 0 && parts[0] != "" {
		return titleCaser.String(parts[0])
	}

	return ""
}
