package olapicimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jhankim/slack-olapic/internal/domain"
	"github.com/jhankim/slack-olapic/pkg/config"
	apperrors "github.com/jhankim/slack-olapic/pkg/errors"
	"github.com/jhankim/slack-olapic/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageJSON = `{
  "data": {
    "media": [
      {
        "id": 3112325937,
        "source": "instagram",
        "original_source": "https://www.instagram.com/p/abc/",
        "caption": "golden hour",
        "keywords": ["beach", "sunset"],
        "date_approved": "2023-06-01T15:04:00+00:00",
        "user": {"username": "alice"},
        "images": {"mobile": "https://img/m.jpg", "original": "https://img/o.jpg"}
      }
    ],
    "pagination": {"next": %s}
  }
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *OlapicImpl {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.Olapic.Host = srv.URL + "/"
	cfg.Olapic.APIKey = "k3y"
	cfg.Olapic.Timeout = 5 * time.Second

	return New(Opts{Config: cfg, Logger: logger.New(logger.Opts{Env: "test", Writer: io.Discard})})
}

func assertHeaders(t *testing.T, r *http.Request) {
	assert.Equal(t, `ApiKey token="k3y"`, r.Header.Get("Authorization"))
	assert.Equal(t, "application/json", r.Header.Get("Accept"))
	assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
}

func TestSearch(t *testing.T) {
	var body map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/media/search", r.URL.Path)
		assertHeaders(t, r)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		_, _ = io.WriteString(w, pageBody(`"https://content.photorank.me/v1/media/search?cursor=abc%3D"`))
	})

	page, err := client.Search(context.Background(), domain.NewSearchQuery("beach,sunset"))
	require.NoError(t, err)

	expected := map[string]any{
		"items_per_page": float64(5),
		"sort":           []any{map[string]any{"key": "date_approved", "order": "desc"}},
		"filters": map[string]any{
			"keywords":    map[string]any{"values": []any{"beach", "sunset"}, "condition": "or"},
			"stream_name": map[string]any{"value": "beach,sunset", "condition": "or"},
		},
	}
	assert.Equal(t, expected, body)

	require.Len(t, page.Media, 1)
	assert.Equal(t, domain.MediaID("3112325937"), page.Media[0].ID)
	assert.Equal(t, "alice", page.Media[0].User.Username)
	assert.Equal(t, "https://content.photorank.me/v1/media/search?cursor=abc%3D", page.Next)
}

func TestSearchNullCursor(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, pageBody("null"))
	})

	page, err := client.Search(context.Background(), domain.NewSearchQuery("beach"))
	require.NoError(t, err)
	assert.Empty(t, page.Next)
}

func TestFetchPageUsesCursorVerbatim(t *testing.T) {
	var gotURI string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assertHeaders(t, r)
		gotURI = r.URL.RequestURI()
		_, _ = io.WriteString(w, pageBody("null"))
	})

	cursor := client.host + "/media/search?cursor=eyJ9%3D&page=2"
	page, err := client.FetchPage(context.Background(), cursor)
	require.NoError(t, err)

	assert.Equal(t, "/media/search?cursor=eyJ9%3D&page=2", gotURI)
	assert.Len(t, page.Media, 1)
}

func TestGetMedia(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/media/", r.URL.Path)
		assert.Equal(t, "42", r.URL.Query().Get("ids"))
		assertHeaders(t, r)
		_, _ = io.WriteString(w, `{"data":{"media":{"42":{"id":42,"source":"twitter","user":{"username":"bob"},"images":{"mobile":"m","original":"o"}}}}}`)
	})

	media, err := client.GetMedia(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, "twitter", media.Source)
	assert.Equal(t, "bob", media.User.Username)
}

func TestGetMediaMissing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"data":{"media":{}}}`)
	})

	_, err := client.GetMedia(context.Background(), "42")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.Search(context.Background(), domain.NewSearchQuery("beach"))
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeUpstreamStatus, apperrors.GetCode(err))
}

func TestDecodeFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html>maintenance</html>`)
	})

	_, err := client.FetchPage(context.Background(), client.host+"/media/search")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeDecode, apperrors.GetCode(err))
}

func TestTransportFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.FetchPage(context.Background(), "http://127.0.0.1:1/unreachable")
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeTransport, apperrors.GetCode(err))
}

func pageBody(next string) string {
	return fmt.Sprintf(pageJSON, next)
}
