package olapicimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jhankim/slack-olapic/internal/olapic"
	"github.com/jhankim/slack-olapic/pkg/config"
	apperrors "github.com/jhankim/slack-olapic/pkg/errors"
	"github.com/jhankim/slack-olapic/pkg/logger"
	"go.uber.org/fx"
)

const serviceName = "olapic"

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type OlapicImpl struct {
	host   string
	apiKey string
	http   *http.Client
	logger logger.Logger
}

func New(opts Opts) *OlapicImpl {
	return &OlapicImpl{
		host:   strings.TrimRight(opts.Config.Olapic.Host, "/"),
		apiKey: opts.Config.Olapic.APIKey,
		http:   &http.Client{Timeout: opts.Config.Olapic.Timeout},
		logger: opts.Logger.WithComponent("OlapicClient"),
	}
}

var _ olapic.Client = (*OlapicImpl)(nil)

func (o *OlapicImpl) do(ctx context.Context, method, url string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return apperrors.WrapWithCode(err, apperrors.CodeTransport, "failed to build olapic request")
	}
	req.Header.Set("Authorization", fmt.Sprintf(`ApiKey token="%s"`, o.apiKey))
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.http.Do(req)
	if err != nil {
		o.logger.Error("Olapic request failed", "method", method, "url", url, "error", err)
		return apperrors.WrapWithCode(err, apperrors.CodeTransport, "olapic request failed")
	}
	defer safeClose(resp.Body, o.logger)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		o.logger.Warn("Olapic responded with error status", "method", method, "url", url, "status", resp.StatusCode)
		return apperrors.Status(serviceName, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		o.logger.Error("Failed to decode olapic response", "url", url, "error", err)
		return apperrors.WrapWithCode(err, apperrors.CodeDecode, "failed to decode olapic response")
	}
	return nil
}

// safeClose closes an io.ReadCloser and logs any errors
func safeClose(closer io.ReadCloser, logger logger.Logger) {
	if err := closer.Close(); err != nil {
		logger.Error("Error closing response body", "error", err)
	}
}
