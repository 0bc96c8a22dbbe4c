package usecase

import "regexp"

type uaRule struct {
	re    *regexp.Regexp
	label string
}

// Rules are evaluated in order and the first match wins.
var (
	deviceRules = []uaRule{
		{regexp.MustCompile(`(?i)mobile`), "mobile"},
		{regexp.MustCompile(`(?i)tablet|ipad`), "tablet"},
	}
	browserRules = []uaRule{
		{regexp.MustCompile(`(?i)chrome`), "Chrome"},
		{regexp.MustCompile(`(?i)firefox`), "Firefox"},
		{regexp.MustCompile(`(?i)safari`), "Safari"},
		{regexp.MustCompile(`(?i)edge`), "Edge"},
	}
)

// DeviceType classifies a user agent as mobile, tablet or desktop.
func DeviceType(userAgent string) string {
	return classify(userAgent, deviceRules, "desktop")
}

// Browser classifies a user agent into a browser family.
func Browser(userAgent string) string {
	return classify(userAgent, browserRules, "Other")
}

func classify(ua string, rules []uaRule, fallback string) string {
	for _, r := range rules {
		if r.re.MatchString(ua) {
			return r.label
		}
	}
	return fallback
}
