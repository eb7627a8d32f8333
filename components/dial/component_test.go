package dial

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSchemaShape(t *testing.T) {
	c := NewComponent()
	schema := c.Schema()

	model := schema.Field(FieldNameModelName)
	require.NotNil(t, model)
	assert.Equal(t, FieldDropdown, model.Kind)
	assert.Equal(t, FallbackModels, model.Options)
	assert.Equal(t, FallbackModels[0], model.Value)

	assert.True(t, schema.Field(FieldNameHost).RealTimeRefresh)
	assert.True(t, schema.Field(FieldNameAPIKey).RealTimeRefresh)
	assert.Equal(t, FieldSecret, schema.Field(FieldNameAPIKey).Kind)
}

func TestUpdateConfigRefreshesModelOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"gpt-4o"},{"id":"gpt-4"}]}`))
	}))
	defer srv.Close()

	c := NewComponent()
	c.UpdateConfig(context.Background(), FieldNameHost, srv.URL)
	schema := c.UpdateConfig(context.Background(), FieldNameAPIKey, "secret")

	model := schema.Field(FieldNameModelName)
	assert.Equal(t, []string{"gpt-4o", "gpt-4"}, model.Options)
	// gpt-4o was already selected and survives the refresh
	assert.Equal(t, "gpt-4o", model.Value)
	assert.Equal(t, "gpt-4o", c.Config().ModelName)
}

func TestUpdateConfigSelectsFirstWhenModelGone(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"claude-3"},{"id":"mistral-large"}]}`))
	}))
	defer srv.Close()

	c := NewComponent()
	c.UpdateConfig(context.Background(), FieldNameHost, srv.URL)
	schema := c.UpdateConfig(context.Background(), FieldNameAPIKey, "secret")

	model := schema.Field(FieldNameModelName)
	assert.Equal(t, "claude-3", model.Value)
	assert.Equal(t, "claude-3", c.Config().ModelName)
}

func TestUpdateConfigSwallowsRefreshFailure(t *testing.T) {
	c := NewComponent()
	c.UpdateConfig(context.Background(), FieldNameHost, "http://127.0.0.1:1")
	schema := c.UpdateConfig(context.Background(), FieldNameAPIKey, "secret")

	model := schema.Field(FieldNameModelName)
	assert.Equal(t, FallbackModels, model.Options)
	assert.Equal(t, FallbackModels[0], model.Value)
}

func TestUpdateConfigRejectsBadValueType(t *testing.T) {
	c := NewComponent()
	before := c.Config()
	c.UpdateConfig(context.Background(), FieldNameTemperature, "hot")
	assert.Equal(t, before, c.Config())
}

func TestUpdateConfigNumericFields(t *testing.T) {
	c := NewComponent()
	// JSON decodes numbers as float64
	c.UpdateConfig(context.Background(), FieldNameTemperature, 0.2)
	c.UpdateConfig(context.Background(), FieldNameMaxTokens, float64(512))
	c.UpdateConfig(context.Background(), FieldNameStream, true)

	cfg := c.Config()
	assert.Equal(t, 0.2, cfg.Temperature)
	assert.Equal(t, 512, cfg.MaxTokens)
	assert.True(t, cfg.Stream)
}

func TestBuildValidConfig(t *testing.T) {
	c := NewComponent()
	c.UpdateConfig(context.Background(), FieldNameHost, "https://dial.example.com")
	c.UpdateConfig(context.Background(), FieldNameAPIKey, "secret")
	c.UpdateConfig(context.Background(), FieldNameTemperature, 0.4)
	c.UpdateConfig(context.Background(), FieldNameStream, true)

	model, err := c.Build()
	require.NoError(t, err)
	assert.Equal(t, 0.4, model.Temperature())
	assert.True(t, model.Streaming())
	assert.Equal(t, int64(0), model.MaxTokens(), "max tokens of 0 stays unbounded")
}

func TestBuildInvalidConfig(t *testing.T) {
	c := NewComponent()
	// no host, no key
	_, err := c.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not initialize DIAL API client")
}

func TestComponentsDoNotShareModelCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":"gpt-4"}]}`))
	}))
	defer srv.Close()

	a := NewComponent()
	a.UpdateConfig(context.Background(), FieldNameHost, srv.URL)
	a.UpdateConfig(context.Background(), FieldNameAPIKey, "secret")
	assert.Equal(t, []string{"gpt-4"}, a.lister.LastKnown())

	b := NewComponent()
	assert.Equal(t, FallbackModels, b.lister.LastKnown())
}
