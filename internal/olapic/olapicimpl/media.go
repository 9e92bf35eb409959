package olapicimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/jhankim/slack-olapic/internal/domain"
	apperrors "github.com/jhankim/slack-olapic/pkg/errors"
)

type sortSpec struct {
	Key   string `json:"key"`
	Order string `json:"order"`
}

type keywordsFilter struct {
	Values    []string `json:"values"`
	Condition string   `json:"condition"`
}

type streamNameFilter struct {
	Value     string `json:"value"`
	Condition string `json:"condition"`
}

type searchRequest struct {
	ItemsPerPage int        `json:"items_per_page"`
	Sort         []sortSpec `json:"sort"`
	Filters      struct {
		Keywords   keywordsFilter   `json:"keywords"`
		StreamName streamNameFilter `json:"stream_name"`
	} `json:"filters"`
}

type pageResponse struct {
	Data struct {
		Media      []domain.Media `json:"media"`
		Pagination struct {
			Next *string `json:"next"`
		} `json:"pagination"`
	} `json:"data"`
}

type mediaByIDResponse struct {
	Data struct {
		Media map[string]domain.Media `json:"media"`
	} `json:"data"`
}

func newSearchRequest(q domain.SearchQuery) searchRequest {
	var r searchRequest
	r.ItemsPerPage = q.ItemsPerPage
	r.Sort = []sortSpec{{Key: q.SortKey, Order: q.SortOrder}}
	r.Filters.Keywords = keywordsFilter{Values: q.Keywords, Condition: "or"}
	r.Filters.StreamName = streamNameFilter{Value: q.StreamName, Condition: "or"}
	return r
}

func (p pageResponse) page() *domain.MediaPage {
	page := &domain.MediaPage{Media: p.Data.Media}
	if p.Data.Pagination.Next != nil {
		page.Next = *p.Data.Pagination.Next
	}
	return page
}

func (o *OlapicImpl) Search(ctx context.Context, q domain.SearchQuery) (*domain.MediaPage, error) {
	body, err := json.Marshal(newSearchRequest(q))
	if err != nil {
		return nil, fmt.Errorf("failed to encode search request: %w", err)
	}

	var resp pageResponse
	if err := o.do(ctx, http.MethodPost, o.host+"/media/search", bytes.NewReader(body), &resp); err != nil {
		return nil, err
	}

	page := resp.page()
	o.logger.Info("Search completed", "stream_name", q.StreamName, "results", len(page.Media), "has_next", page.Next != "")
	return page, nil
}

func (o *OlapicImpl) FetchPage(ctx context.Context, cursor string) (*domain.MediaPage, error) {
	var resp pageResponse
	if err := o.do(ctx, http.MethodGet, cursor, nil, &resp); err != nil {
		return nil, err
	}

	page := resp.page()
	o.logger.Info("Page fetched", "results", len(page.Media), "has_next", page.Next != "")
	return page, nil
}

func (o *OlapicImpl) GetMedia(ctx context.Context, id string) (*domain.Media, error) {
	var resp mediaByIDResponse
	if err := o.do(ctx, http.MethodGet, o.host+"/media/?ids="+url.QueryEscape(id), nil, &resp); err != nil {
		return nil, err
	}

	media, ok := resp.Data.Media[id]
	if !ok {
		return nil, apperrors.Wrap(apperrors.ErrNotFound, fmt.Sprintf("media %s", id))
	}
	return &media, nil
}
