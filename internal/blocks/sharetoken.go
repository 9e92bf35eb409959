package blocks

import (
	"errors"
	"net/url"
	"strings"
)

const (
	SharePrefix = "share:"
	// maxActionIDLen is Slack's limit on action_id.
	maxActionIDLen = 255
	tokenSep       = ":"
)

var (
	ErrMalformedToken = errors.New("malformed share token")
	ErrTokenTooLong   = errors.New("share token exceeds action_id limit")
)

// ShareToken correlates a channels_select activation with the media item it
// was rendered for. It travels inside the element's action_id.
type ShareToken struct {
	Source  string
	Handle  string
	MediaID string
}

// Encode produces "share:<source>:<handle>:<id>". Each field is
// query-escaped so a ':' inside a field cannot shift the positions.
func (t ShareToken) Encode() (string, error) {
	s := SharePrefix + strings.Join([]string{
		url.QueryEscape(t.Source),
		url.QueryEscape(t.Handle),
		url.QueryEscape(t.MediaID),
	}, tokenSep)
	if len(s) > maxActionIDLen {
		return "", ErrTokenTooLong
	}
	return s, nil
}

func IsShareActionID(actionID string) bool {
	return strings.HasPrefix(actionID, SharePrefix)
}

func DecodeShareToken(actionID string) (ShareToken, error) {
	rest, ok := strings.CutPrefix(actionID, SharePrefix)
	if !ok {
		return ShareToken{}, ErrMalformedToken
	}

	parts := strings.Split(rest, tokenSep)
	if len(parts) != 3 {
		return ShareToken{}, ErrMalformedToken
	}

	fields := make([]string, len(parts))
	for i, p := range parts {
		v, err := url.QueryUnescape(p)
		if err != nil {
			return ShareToken{}, ErrMalformedToken
		}
		fields[i] = v
	}
	if fields[2] == "" {
		return ShareToken{}, ErrMalformedToken
	}

	return ShareToken{Source: fields[0], Handle: fields[1], MediaID: fields[2]}, nil
}
