package server

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	mock_command "github.com/jhankim/slack-olapic/internal/command/mocks"
	"github.com/jhankim/slack-olapic/internal/domain"
	mock_interaction "github.com/jhankim/slack-olapic/internal/interaction/mocks"
	"github.com/jhankim/slack-olapic/pkg/config"
	"github.com/jhankim/slack-olapic/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const secret = "8f742231b10e8888abcd99yyyzzz85a5"

type fixture struct {
	command     *mock_command.MockClient
	interaction *mock_interaction.MockClient
	handler     http.Handler
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	cfg := &config.Config{}
	cfg.Slack.SigningSecret = secret

	f := fixture{
		command:     mock_command.NewMockClient(ctrl),
		interaction: mock_interaction.NewMockClient(ctrl),
	}
	s := New(Opts{
		Config:      cfg,
		Logger:      logger.New(logger.Opts{Env: "test", Writer: io.Discard}),
		Command:     f.command,
		Interaction: f.interaction,
	})
	s.async = func(fn func()) { fn() }
	f.handler = s.Handler()
	return f
}

func signedRequest(t *testing.T, path string, form url.Values, key string) *http.Request {
	t.Helper()
	body := form.Encode()
	ts := strconv.FormatInt(time.Now().Unix(), 10)

	mac := hmac.New(sha256.New, []byte(key))
	_, err := fmt.Fprintf(mac, "v0:%s:%s", ts, body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Slack-Request-Timestamp", ts)
	req.Header.Set("X-Slack-Signature", "v0="+hex.EncodeToString(mac.Sum(nil)))
	return req
}

func serve(f fixture, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func commandForm(command, text string) url.Values {
	return url.Values{
		"command":    {command},
		"text":       {text},
		"user_id":    {"U1"},
		"channel_id": {"C1"},
	}
}

func actionForm(actionID, value, selected string) url.Values {
	payload := fmt.Sprintf(`{
		"type": "block_actions",
		"user": {"id": "U1"},
		"container": {"type": "message", "channel_id": "C1"},
		"channel": {"id": "C1"},
		"actions": [{"block_id": "b1", "action_id": %q, "value": %q, "selected_channel": %q}]
	}`, actionID, value, selected)
	return url.Values{"payload": {payload}}
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)
	rec := serve(f, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestCommandDispatch(t *testing.T) {
	f := newFixture(t)
	f.command.EXPECT().
		HandleSearch(gomock.Any(), domain.Invocation{UserID: "U1", ChannelID: "C1", Text: "beach,sunset"}).
		Return(nil)

	rec := serve(f, signedRequest(t, "/slack/commands", commandForm("/olapic-local", "beach,sunset"), secret))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestCommandBadSignature(t *testing.T) {
	f := newFixture(t)
	rec := serve(f, signedRequest(t, "/slack/commands", commandForm("/olapic-local", "beach"), "wrong-secret"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCommandMissingSignatureHeaders(t *testing.T) {
	f := newFixture(t)
	req := httptest.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(commandForm("/olapic-local", "x").Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := serve(f, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCommandUnknownName(t *testing.T) {
	f := newFixture(t)
	rec := serve(f, signedRequest(t, "/slack/commands", commandForm("/olapic", "beach"), secret))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCommandHandlerErrorStillAcked(t *testing.T) {
	f := newFixture(t)
	f.command.EXPECT().HandleSearch(gomock.Any(), gomock.Any()).Return(errors.New("slack down"))

	rec := serve(f, signedRequest(t, "/slack/commands", commandForm("/olapic-local", "beach"), secret))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCommandHandlerPanicRecovered(t *testing.T) {
	f := newFixture(t)
	f.command.EXPECT().HandleSearch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, domain.Invocation) error { panic("boom") })

	rec := serve(f, signedRequest(t, "/slack/commands", commandForm("/olapic-local", "beach"), secret))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlerContextOutlivesRequest(t *testing.T) {
	f := newFixture(t)
	f.command.EXPECT().HandleSearch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ domain.Invocation) error {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			assert.NoError(t, ctx.Err())
			return nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	req := signedRequest(t, "/slack/commands", commandForm("/olapic-local", "beach"), secret).WithContext(ctx)
	cancel()

	rec := serve(f, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestActionRouting(t *testing.T) {
	tests := []struct {
		name     string
		actionID string
		value    string
		selected string
		expect   func(f fixture, want domain.Invocation)
	}{
		{
			name:     "load more",
			actionID: "load_more",
			value:    "https://content.photorank.me/v1/media?page=2",
			expect: func(f fixture, want domain.Invocation) {
				f.interaction.EXPECT().HandleLoadMore(gomock.Any(), want).Return(nil)
			},
		},
		{
			name:     "view full",
			actionID: "view_full",
			expect: func(f fixture, want domain.Invocation) {
				f.interaction.EXPECT().HandleViewFull(gomock.Any(), want).Return(nil)
			},
		},
		{
			name:     "share",
			actionID: "share:twitter:bob:42",
			selected: "C123",
			expect: func(f fixture, want domain.Invocation) {
				f.interaction.EXPECT().HandleShare(gomock.Any(), want).Return(nil)
			},
		},
		{
			name:     "unknown action",
			actionID: "something_else",
			expect:   func(fixture, domain.Invocation) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.expect(f, domain.Invocation{
				UserID:          "U1",
				ChannelID:       "C1",
				ActionID:        tt.actionID,
				Value:           tt.value,
				SelectedChannel: tt.selected,
			})

			rec := serve(f, signedRequest(t, "/slack/actions", actionForm(tt.actionID, tt.value, tt.selected), secret))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestActionNonBlockInteractionIgnored(t *testing.T) {
	f := newFixture(t)
	form := url.Values{"payload": {`{"type":"view_submission","user":{"id":"U1"}}`}}

	rec := serve(f, signedRequest(t, "/slack/actions", form, secret))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestActionBadPayload(t *testing.T) {
	f := newFixture(t)
	form := url.Values{"payload": {`{not json`}}

	rec := serve(f, signedRequest(t, "/slack/actions", form, secret))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
