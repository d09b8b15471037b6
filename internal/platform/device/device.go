package device

import (
	"strings"

	"github.com/mssola/useragent"
)

// ParseUserAgent renders a raw User-Agent header as a short human-readable
// device description, e.g. "Chrome on Mac OS X". Audit rows carry the raw
// header; this is only for display.
func ParseUserAgent(rawUA string) string {
	if rawUA == "" {
		return "Unknown Device"
	}

	ua := useragent.New(rawUA)
	browser, _ := ua.Browser()
	os := ua.OS()

	if browser == "" {
		browser = "Unknown Browser"
	}
	if os == "" {
		if platform := ua.Platform(); platform != "" {
			os = platform
		} else {
			os = "Unknown OS"
		}
	}

	return strings.TrimSpace(browser + " on " + os)
}
