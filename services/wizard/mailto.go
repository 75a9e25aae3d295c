// File: services/wizard/mailto.go
package wizard

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildMailto assembles the mailto URI the client navigates to for the
// send handoff. Subject and body are percent-encoded; whether the user's
// mail client actually dispatches anything is invisible to us.
func BuildMailto(to, subject, body string) string {
	return fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		to, encodeComponent(subject), encodeComponent(body))
}

// encodeComponent percent-encodes a mailto query component. QueryEscape's
// form encoding turns spaces into '+', which mail clients render literally,
// so those become %20.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
