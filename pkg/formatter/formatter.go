package formatter

import (
	"strings"
	"time"
)

// ApprovedLayout renders e.g. "2023-06-01 3:04pm".
const ApprovedLayout = "2006-01-02 3:04pm"

var mrkdwnEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// EscapeMrkdwn escapes the three characters Slack reserves for control
// sequences. Everything else, including *bold* markers, passes through.
func EscapeMrkdwn(s string) string {
	return mrkdwnEscaper.Replace(s)
}

// FormatApproved renders an RFC 3339 timestamp in loc using ApprovedLayout.
// Values that fail to parse are returned unchanged.
func FormatApproved(raw string, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.In(loc).Format(ApprovedLayout)
}
