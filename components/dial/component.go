package dial

import (
	"context"
	"fmt"
	"slices"

	"github.com/pkg/errors"
	"github.com/sergesha/langflow/libs/logs"
	"github.com/sergesha/langflow/llm/clients"
	"go.uber.org/zap"
)

// Component binds the configuration schema to the two side-effecting calls:
// building the chat-model handle and refreshing the model dropdown. Each
// Component owns its own Lister, so the remembered model list never leaks
// across instances.
type Component struct {
	config Config
	schema Schema
	lister *Lister
	logger *zap.Logger
}

func NewComponent() *Component {
	return NewComponentWithDefaults(Defaults{APIVersion: APIVersions[0]})
}

func NewComponentWithDefaults(defaults Defaults) *Component {
	if defaults.APIVersion == "" {
		defaults.APIVersion = APIVersions[0]
	}
	c := &Component{
		config: Config{
			Host:        defaults.Host,
			ModelName:   FallbackModels[0],
			Temperature: 0.7,
			APIVersion:  defaults.APIVersion,
		},
		schema: defaultSchema(),
		lister: NewLister(),
		logger: logs.GetLogger("dialComponent"),
	}
	if defaults.Host != "" {
		c.schema.Field(FieldNameHost).Value = defaults.Host
	}
	c.schema.Field(FieldNameAPIVersion).Value = defaults.APIVersion
	return c
}

func (c *Component) Config() Config { return c.config }

func (c *Component) Schema() Schema { return c.schema }

// Build validates the current configuration and returns the handle.
func (c *Component) Build() (*clients.ChatModel, error) {
	if err := c.config.Validate(); err != nil {
		return nil, errors.Wrap(err, "could not initialize DIAL API client")
	}
	return BuildModel(c.config)
}

// UpdateConfig applies one field edit and returns the revised schema. Edits
// to host, key or model name refresh the dropdown options synchronously;
// failures there are logged and swallowed, the schema is returned regardless.
func (c *Component) UpdateConfig(ctx context.Context, fieldName string, value interface{}) Schema {
	if err := c.setField(fieldName, value); err != nil {
		c.logger.Warn("field update rejected", logs.String("field", fieldName), logs.ErrorInfo(err))
		return c.schema
	}
	if f := c.schema.Field(fieldName); f != nil {
		f.Value = value
	}

	switch fieldName {
	case FieldNameHost, FieldNameAPIKey, FieldNameModelName:
		c.refreshModelOptions(ctx)
	}
	return c.schema
}

// Models enumerates deployments with the current credentials. Same contract
// as the Lister: always a list, never an error.
func (c *Component) Models(ctx context.Context) []string {
	return c.lister.List(ctx, c.config.Host, c.config.APIKey, c.config.APIVersion)
}

func (c *Component) refreshModelOptions(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("model refresh failed", zap.Any("panic", r), logs.StacktraceField())
		}
	}()

	models := c.lister.List(ctx, c.config.Host, c.config.APIKey, c.config.APIVersion)

	field := c.schema.Field(FieldNameModelName)
	field.Options = models
	if !slices.Contains(models, c.config.ModelName) {
		c.config.ModelName = models[0]
	}
	field.Value = c.config.ModelName
}

func (c *Component) setField(name string, value interface{}) error {
	switch name {
	case FieldNameHost:
		return assign(&c.config.Host, value)
	case FieldNameAPIKey:
		return assign(&c.config.APIKey, value)
	case FieldNameModelName:
		return assign(&c.config.ModelName, value)
	case FieldNameAPIVersion:
		return assign(&c.config.APIVersion, value)
	case FieldNameStream:
		return assign(&c.config.Stream, value)
	case FieldNameTemperature:
		f, err := toFloat(value)
		if err != nil {
			return err
		}
		c.config.Temperature = f
		return nil
	case FieldNameMaxTokens:
		f, err := toFloat(value)
		if err != nil {
			return err
		}
		c.config.MaxTokens = int(f)
		return nil
	default:
		return fmt.Errorf("unknown field %q", name)
	}
}

func assign[T any](dst *T, value interface{}) error {
	v, ok := value.(T)
	if !ok {
		return fmt.Errorf("unexpected value type %T", value)
	}
	*dst = v
	return nil
}

// toFloat accepts the numeric shapes JSON decoding produces.
func toFloat(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("unexpected value type %T", value)
	}
}
