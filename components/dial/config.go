package dial

import (
	"github.com/go-playground/validator/v10"
	"github.com/sergesha/langflow/libs/conf"
	"github.com/sergesha/langflow/utils"
)

// FallbackModels is returned whenever live enumeration cannot be completed.
var FallbackModels = []string{"gpt-4o"}

// APIVersions lists the Azure-compatible api versions the gateway accepts.
var APIVersions = []string{"2024-02-01"}

// Config is the flat record the component is built from. Field names follow
// the schema field names so a schema value map binds directly.
type Config struct {
	Host        string  `json:"dial_api_host" validate:"required,url"`
	APIKey      string  `json:"dial_api_key" validate:"required"`
	ModelName   string  `json:"model_name" validate:"required"`
	Temperature float64 `json:"temperature" validate:"gte=0,lte=1"`
	MaxTokens   int     `json:"max_tokens" validate:"gte=0"`
	Stream      bool    `json:"stream"`
	APIVersion  string  `json:"api_version" validate:"required"`
}

var validate = validator.New()

func (c Config) Validate() error {
	return validate.Struct(c)
}

// Defaults are the profile-provided settings for the [dial] section.
type Defaults struct {
	Host       string `json:"host"`
	APIVersion string `json:"api_version"`
}

// DefaultsFromProfile reads the [dial] section of the loaded profile.
func DefaultsFromProfile() Defaults {
	defaults := Defaults{APIVersion: APIVersions[0]}
	section := conf.Get("dial")
	if section == nil {
		return defaults
	}
	parsed, err := utils.Bytes2Struct[Defaults](section)
	if err != nil {
		return defaults
	}
	if parsed.APIVersion == "" {
		parsed.APIVersion = defaults.APIVersion
	}
	return parsed
}
