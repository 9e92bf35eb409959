package commandimpl

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/jhankim/slack-olapic/internal/blocks"
	"github.com/jhankim/slack-olapic/internal/domain"
	mock_olapic "github.com/jhankim/slack-olapic/internal/olapic/mocks"
	"github.com/jhankim/slack-olapic/internal/slack"
	mock_slack "github.com/jhankim/slack-olapic/internal/slack/mocks"
	"github.com/jhankim/slack-olapic/pkg/config"
	"github.com/jhankim/slack-olapic/pkg/logger"
	slackapi "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubLimiter struct{ allow bool }

func (s stubLimiter) Allow(string) bool { return s.allow }

func (s stubLimiter) Prune(time.Duration) int { return 0 }

type fixture struct {
	olapic *mock_olapic.MockClient
	slack  *mock_slack.MockClient
	cmd    *CommandImpl
}

func newFixture(t *testing.T, allow bool) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		olapic: mock_olapic.NewMockClient(ctrl),
		slack:  mock_slack.NewMockClient(ctrl),
	}
	f.cmd = New(Opts{
		Olapic:  f.olapic,
		Slack:   f.slack,
		Limiter: stubLimiter{allow: allow},
		Logger:  logger.New(logger.Opts{Env: "test", Writer: io.Discard}),
		Config:  &config.Config{},
	})
	return f
}

func invocation(text string) domain.Invocation {
	return domain.Invocation{UserID: "U1", ChannelID: "C1", Text: text}
}

func sampleMedia(id string) domain.Media {
	return domain.Media{
		ID:           domain.MediaID(id),
		Source:       "instagram",
		Caption:      "sunny",
		DateApproved: "2023-06-01T15:04:00Z",
		User:         domain.MediaUser{Username: "alice"},
		Images:       domain.MediaImages{Mobile: "https://img/m.jpg", Original: "https://img/o.jpg"},
	}
}

func TestHandleSearchBlankText(t *testing.T) {
	f := newFixture(t, true)

	f.slack.EXPECT().
		PostEphemeral(gomock.Any(), "C1", "U1", slack.Message{Text: blocks.Usage("/olapic-local")}).
		Return(nil)

	require.NoError(t, f.cmd.HandleSearch(context.Background(), invocation("   ")))
}

func TestHandleSearchRateLimited(t *testing.T) {
	f := newFixture(t, false)

	f.slack.EXPECT().
		PostEphemeral(gomock.Any(), "C1", "U1", slack.Message{Text: blocks.SlowDown}).
		Return(nil)

	require.NoError(t, f.cmd.HandleSearch(context.Background(), invocation("beach")))
}

func TestHandleSearchUpstreamError(t *testing.T) {
	f := newFixture(t, true)

	f.olapic.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	f.slack.EXPECT().
		PostEphemeral(gomock.Any(), "C1", "U1", slack.Message{Text: blocks.GenericFailure}).
		Return(nil)

	require.NoError(t, f.cmd.HandleSearch(context.Background(), invocation("beach")))
}

func TestHandleSearchNoResults(t *testing.T) {
	f := newFixture(t, true)

	f.olapic.EXPECT().Search(gomock.Any(), gomock.Any()).Return(&domain.MediaPage{}, nil)
	f.slack.EXPECT().
		PostEphemeral(gomock.Any(), "C1", "U1", slack.Message{
			Text: "Sorry! I couldn't find any photos matching *beach* :slightly_frowning_face:",
		}).
		Return(nil)

	require.NoError(t, f.cmd.HandleSearch(context.Background(), invocation("beach")))
}

func TestHandleSearchResults(t *testing.T) {
	f := newFixture(t, true)

	f.olapic.EXPECT().
		Search(gomock.Any(), domain.NewSearchQuery("beach,sunset")).
		Return(&domain.MediaPage{
			Media: []domain.Media{sampleMedia("1"), sampleMedia("2")},
			Next:  "https://content.photorank.me/v1/media?page=2",
		}, nil)

	var sent slack.Message
	f.slack.EXPECT().
		PostEphemeral(gomock.Any(), "C1", "U1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ string, msg slack.Message) error {
			sent = msg
			return nil
		})

	require.NoError(t, f.cmd.HandleSearch(context.Background(), invocation("beach,sunset")))

	// header + divider, four per item, load more
	require.Len(t, sent.Blocks, 2+4*2+1)
	last, ok := sent.Blocks[len(sent.Blocks)-1].(*slackapi.ActionBlock)
	require.True(t, ok)
	btn, ok := last.Elements.ElementSet[0].(*slackapi.ButtonBlockElement)
	require.True(t, ok)
	assert.Equal(t, blocks.ActionLoadMore, btn.ActionID)
	assert.Equal(t, "https://content.photorank.me/v1/media?page=2", btn.Value)
}

func TestHandleSearchPropagatesSlackError(t *testing.T) {
	f := newFixture(t, true)

	f.olapic.EXPECT().Search(gomock.Any(), gomock.Any()).Return(&domain.MediaPage{}, nil)
	f.slack.EXPECT().PostEphemeral(gomock.Any(), "C1", "U1", gomock.Any()).Return(errors.New("not_in_channel"))

	err := f.cmd.HandleSearch(context.Background(), invocation("beach"))
	assert.ErrorContains(t, err, "not_in_channel")
}
