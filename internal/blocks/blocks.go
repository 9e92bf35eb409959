// Package blocks renders Olapic media as Slack Block Kit messages.
//
// Building blocks never performs I/O. All state a later interaction needs is
// embedded in the blocks themselves: the share token in each channels_select
// action_id and the pagination cursor in the load_more button value.
package blocks

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhankim/slack-olapic/internal/domain"
	"github.com/jhankim/slack-olapic/pkg/formatter"
	slackapi "github.com/slack-go/slack"
)

const (
	ActionLoadMore = "load_more"
	ActionViewFull = "view_full"

	fallbackAltText = "Image from Olapic"
)

var ErrNoMedia = errors.New("no media to render")

type Options struct {
	// Query is the originating search text. Set for search results.
	Query string
	// SharedBy is the Slack user id reposting an image. Set for shares.
	SharedBy string
	Media    []domain.Media
	// Next is the pagination cursor, copied verbatim into the load_more button.
	Next string
	// Location is the display timezone for approval dates; nil means UTC.
	Location *time.Location
}

func Build(opts Options) ([]slackapi.Block, error) {
	if len(opts.Media) == 0 {
		return nil, ErrNoMedia
	}

	var out []slackapi.Block

	switch {
	case opts.Query != "":
		out = append(out,
			mrkdwnSection(fmt.Sprintf("Here's the search result for: *%s*\n\n", formatter.EscapeMrkdwn(opts.Query))),
			slackapi.NewDividerBlock(),
		)
	case opts.SharedBy != "":
		out = append(out,
			mrkdwnSection(fmt.Sprintf("<@%s> shared an image from Olapic!\n\n", opts.SharedBy)),
			slackapi.NewDividerBlock(),
		)
	}

	for _, m := range opts.Media {
		group, err := mediaBlocks(m, opts.Location)
		if err != nil {
			return nil, err
		}
		out = append(out, group...)
	}

	if opts.Next != "" {
		btn := slackapi.NewButtonBlockElement(ActionLoadMore, opts.Next, plainText("Load more search results"))
		btn.Style = slackapi.StylePrimary
		out = append(out, slackapi.NewActionBlock("", btn))
	}

	return out, nil
}

func mediaBlocks(m domain.Media, loc *time.Location) ([]slackapi.Block, error) {
	actionID, err := ShareToken{
		Source:  m.Source,
		Handle:  m.User.Username,
		MediaID: m.ID.String(),
	}.Encode()
	if err != nil {
		return nil, fmt.Errorf("media %s: %w", m.ID, err)
	}

	alt := m.Caption
	if strings.TrimSpace(alt) == "" {
		alt = fallbackAltText
	}

	picker := slackapi.NewOptionsSelectBlockElement(slackapi.OptTypeChannels, plainText("Share with a channel"), actionID)

	full := slackapi.NewButtonBlockElement(ActionViewFull, "", plainText("View full resolution image"))
	full.URL = m.Images.Original

	return []slackapi.Block{
		mrkdwnSection(describe(m, loc)),
		slackapi.NewImageBlock(m.Images.Mobile, alt, m.ID.String(), nil),
		slackapi.NewActionBlock("", picker, full),
		slackapi.NewDividerBlock(),
	}, nil
}

func describe(m domain.Media, loc *time.Location) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*Source:* %s", formatter.EscapeMrkdwn(m.Source))
	if m.OriginalSource != "" {
		fmt.Fprintf(&b, "\n*Source URL:* %s", m.OriginalSource)
	}
	fmt.Fprintf(&b, "\n*User handle*: @%s", formatter.EscapeMrkdwn(m.User.Username))
	fmt.Fprintf(&b, "\n*Caption:* %s", formatter.EscapeMrkdwn(m.Caption))
	fmt.Fprintf(&b, "\n*Keywords:* %s", formatter.EscapeMrkdwn(strings.Join(m.Keywords, ", ")))
	fmt.Fprintf(&b, "\n*Date approved*: %s", formatter.FormatApproved(m.DateApproved, loc))
	return b.String()
}

func mrkdwnSection(text string) *slackapi.SectionBlock {
	return slackapi.NewSectionBlock(slackapi.NewTextBlockObject(slackapi.MarkdownType, text, false, false), nil, nil)
}

func plainText(text string) *slackapi.TextBlockObject {
	return slackapi.NewTextBlockObject(slackapi.PlainTextType, text, true, false)
}
