package conf

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/sergesha/langflow/utils"
)

var config map[string]interface{}

// Init loads the TOML profile named by the runConfig environment variable.
func Init() {
	configPath := os.Getenv("runConfig")
	Load(configPath)
}

// Load reads a TOML profile and keeps it for section lookups.
func Load(configPath string) {
	config = make(map[string]interface{})
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		panic(err)
	}
	globalInfo, ok := config["global"].(map[string]interface{})
	if !ok {
		panic("global configuration is missing in the config file")
	}
	appName, ok := globalInfo["app_name"].(string)
	if !ok {
		panic("app name is missing in the global configuration")
	}
	appVersion, ok := globalInfo["app_version"].(string)
	if !ok {
		panic("app version is missing in the global configuration")
	}

	os.Setenv("APP_NAME", appName)
	os.Setenv("APP_VERSION", appVersion)
}

// Get returns a configuration section re-encoded as JSON, so sections can be
// decoded into their own structs (see libs/logs.Init, components/dial.Defaults).
func Get(key string) []byte {
	if config == nil {
		Init()
	}
	if value, exists := config[key]; exists {
		bytes, err := utils.Struct2Bytes(value)
		if err != nil {
			return nil
		}
		return bytes
	}
	return nil
}
