package dial

import (
	"context"
	"net/http"
	"time"

	"github.com/sergesha/langflow/libs/logs"
	"github.com/sergesha/langflow/utils"
	"go.uber.org/zap"
	"resty.dev/v3"
)

const listTimeout = 10 * time.Second

type deployment struct {
	ID string `json:"id"`
}

type deploymentPage struct {
	Data []deployment `json:"data"`
}

// Lister enumerates the gateway's deployments. It never returns an error:
// every failure mode degrades to FallbackModels, so callers always get a
// usable option list.
type Lister struct {
	client    *resty.Client
	logger    *zap.Logger
	lastKnown []string
}

func NewLister() *Lister {
	return &Lister{
		client: resty.New().SetTimeout(listTimeout),
		logger: logs.GetLogger("dialLister"),
	}
}

// List fetches deployment ids from {host}/openai/deployments. A successful
// non-empty result replaces the remembered list wholesale; anything else
// leaves it untouched and yields FallbackModels.
func (l *Lister) List(ctx context.Context, host, apiKey, apiVersion string) []string {
	if host == "" || apiKey == "" {
		return FallbackModels
	}

	resp, err := l.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Api-Key", apiKey).
		SetQueryParam("api-version", apiVersion).
		Get(utils.TrimHostSuffix(host) + "/openai/deployments")
	if err != nil {
		l.logger.Warn("deployment fetch failed", logs.ErrorInfo(err))
		return FallbackModels
	}
	defer resp.Body.Close()

	if resp.StatusCode() != http.StatusOK {
		l.logger.Warn("deployment fetch returned bad status", logs.Int("status", resp.StatusCode()))
		return FallbackModels
	}

	page, err := utils.Bytes2Struct[deploymentPage](resp.Bytes())
	if err != nil {
		l.logger.Warn("deployment response decode failed", logs.ErrorInfo(err))
		return FallbackModels
	}

	models := make([]string, 0, len(page.Data))
	for _, d := range page.Data {
		if d.ID != "" {
			models = append(models, d.ID)
		}
	}
	if len(models) == 0 {
		// Keep the remembered list; an empty page is not a successful fetch.
		l.logger.Warn("deployment response contained no models")
		return FallbackModels
	}

	l.lastKnown = models
	l.logger.Debug("deployments fetched", logs.Strings("models", models))
	return models
}

// LastKnown returns the most recent successful list, or FallbackModels when
// nothing has been fetched yet.
func (l *Lister) LastKnown() []string {
	if len(l.lastKnown) == 0 {
		return FallbackModels
	}
	return l.lastKnown
}
