package dial

type FieldKind string

const (
	FieldText     FieldKind = "text"
	FieldSecret   FieldKind = "secret"
	FieldDropdown FieldKind = "dropdown"
	FieldSlider   FieldKind = "slider"
	FieldInt      FieldKind = "int"
	FieldBool     FieldKind = "bool"
)

// Schema field names, also the JSON keys of Config.
const (
	FieldNameHost        = "dial_api_host"
	FieldNameAPIKey      = "dial_api_key"
	FieldNameModelName   = "model_name"
	FieldNameTemperature = "temperature"
	FieldNameMaxTokens   = "max_tokens"
	FieldNameStream      = "stream"
	FieldNameAPIVersion  = "api_version"
)

type Field struct {
	Name            string      `json:"name"`
	DisplayName     string      `json:"display_name"`
	Kind            FieldKind   `json:"kind"`
	Info            string      `json:"info,omitempty"`
	Value           interface{} `json:"value,omitempty"`
	Options         []string    `json:"options,omitempty"`
	Required        bool        `json:"required,omitempty"`
	Advanced        bool        `json:"advanced,omitempty"`
	RealTimeRefresh bool        `json:"real_time_refresh,omitempty"`
}

// Schema is the declarative form the host framework renders. Field order is
// presentation order.
type Schema struct {
	Fields []*Field `json:"fields"`
}

func (s *Schema) Field(name string) *Field {
	for _, f := range s.Fields {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func defaultSchema() Schema {
	return Schema{Fields: []*Field{
		{
			Name:            FieldNameHost,
			DisplayName:     "DIAL API Host",
			Kind:            FieldText,
			Info:            "The host URL for DIAL API. Example: `https://your-dial-url.com`",
			Required:        true,
			RealTimeRefresh: true,
		},
		{
			Name:            FieldNameAPIKey,
			DisplayName:     "DIAL API Key",
			Kind:            FieldSecret,
			Info:            "Your DIAL API key for authentication",
			Required:        true,
			RealTimeRefresh: true,
		},
		{
			Name:            FieldNameModelName,
			DisplayName:     "Model Name",
			Kind:            FieldDropdown,
			Info:            "Select the model to use",
			Options:         FallbackModels,
			Value:           FallbackModels[0],
			RealTimeRefresh: true,
		},
		{
			Name:        FieldNameTemperature,
			DisplayName: "Temperature",
			Kind:        FieldSlider,
			Info:        "Controls randomness. Lower values are more deterministic, higher values are more creative.",
			Value:       0.7,
			Advanced:    true,
		},
		{
			Name:        FieldNameMaxTokens,
			DisplayName: "Max Tokens",
			Kind:        FieldInt,
			Info:        "The maximum number of tokens to generate. Set to 0 for unlimited tokens.",
			Value:       0,
			Advanced:    true,
		},
		{
			Name:        FieldNameStream,
			DisplayName: "Stream",
			Kind:        FieldBool,
			Info:        "Whether to stream the response token by token",
			Value:       false,
		},
		{
			Name:        FieldNameAPIVersion,
			DisplayName: "API Version",
			Kind:        FieldDropdown,
			Options:     APIVersions,
			Value:       APIVersions[0],
		},
	}}
}
