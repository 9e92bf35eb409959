package domain

import "strings"

const (
	ItemsPerPage     = 5
	SortDateApproved = "date_approved"
	SortDesc         = "desc"
)

type SearchQuery struct {
	Keywords     []string
	StreamName   string
	ItemsPerPage int
	SortKey      string
	SortOrder    string
}

// ParseKeywords splits raw command text on commas. Tokens are neither
// trimmed nor filtered, so "a, b," yields ["a", " b", ""].
func ParseKeywords(raw string) []string {
	return strings.Split(raw, ",")
}

func NewSearchQuery(raw string) SearchQuery {
	return SearchQuery{
		Keywords:     ParseKeywords(raw),
		StreamName:   raw,
		ItemsPerPage: ItemsPerPage,
		SortKey:      SortDateApproved,
		SortOrder:    SortDesc,
	}
}
