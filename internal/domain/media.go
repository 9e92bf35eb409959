package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MediaID is the Olapic media identifier. The API sends it either as a
// string or as a JSON number; both decode to the same string form.
type MediaID string

func (id *MediaID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = MediaID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("media id: %w", err)
	}
	*id = MediaID(n.String())
	return nil
}

func (id MediaID) String() string {
	return string(id)
}

type MediaUser struct {
	Username string `json:"username"`
}

type MediaImages struct {
	Mobile    string `json:"mobile"`
	Normal    string `json:"normal,omitempty"`
	Original  string `json:"original"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Square    string `json:"square,omitempty"`
}

// Media is a single record owned by the Olapic API.
type Media struct {
	ID             MediaID     `json:"id"`
	Source         string      `json:"source"`
	OriginalSource string      `json:"original_source,omitempty"`
	Caption        string      `json:"caption"`
	Keywords       []string    `json:"keywords"`
	DateApproved   string      `json:"date_approved"`
	User           MediaUser   `json:"user"`
	Images         MediaImages `json:"images"`
}

// MediaPage is one page of search results. Next is the API's
// pagination.next value verbatim, empty when there are no more pages.
type MediaPage struct {
	Media []Media
	Next  string
}
