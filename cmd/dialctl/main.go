package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sergesha/langflow/components/dial"
	"github.com/sergesha/langflow/libs/conf"
	"github.com/sergesha/langflow/libs/option"
)

// DeploymentsCmd prints the deployment ids the gateway reports, falling back
// to the default list when the gateway cannot be reached.
type DeploymentsCmd struct {
	opts *option.Options
}

func (m *DeploymentsCmd) Execute(args []string) error {
	defaults := dialDefaults(m.opts)
	lister := dial.NewLister()
	models := lister.List(context.Background(), defaults.Host, m.opts.Dial.ApiKey, defaults.APIVersion)
	for _, model := range models {
		fmt.Println(model)
	}
	return nil
}

// CheckCmd builds a client from the flags and reports the handle settings.
type CheckCmd struct {
	opts *option.Options
}

func (m *CheckCmd) Execute(args []string) error {
	defaults := dialDefaults(m.opts)
	config := dial.Config{
		Host:        defaults.Host,
		APIKey:      m.opts.Dial.ApiKey,
		ModelName:   m.opts.Dial.Model,
		Temperature: m.opts.Dial.Temperature,
		MaxTokens:   m.opts.Dial.MaxTokens,
		Stream:      m.opts.Dial.Stream,
		APIVersion:  defaults.APIVersion,
	}
	if err := config.Validate(); err != nil {
		return err
	}
	model, err := dial.BuildModel(config)
	if err != nil {
		return err
	}
	fmt.Printf("deployment=%s temperature=%.2f stream=%v max_tokens=%d\n",
		model.Deployment(), model.Temperature(), model.Streaming(), model.MaxTokens())
	return nil
}

// dialDefaults merges profile settings with flag overrides; flags win.
func dialDefaults(opts *option.Options) dial.Defaults {
	defaults := dial.Defaults{Host: opts.Dial.Host, APIVersion: opts.Dial.ApiVersion}
	if opts.ConfigFile == "" {
		return defaults
	}
	conf.Load(opts.ConfigFile)
	profile := dial.DefaultsFromProfile()
	if defaults.Host == "" {
		defaults.Host = profile.Host
	}
	if defaults.APIVersion == "" {
		defaults.APIVersion = profile.APIVersion
	}
	return defaults
}

func main() {
	opts := option.NewOptions()
	opts.AddCommand("deployments", &DeploymentsCmd{opts: opts})
	opts.AddCommand("check", &CheckCmd{opts: opts})
	if err := opts.Parse(); err != nil {
		os.Exit(1)
	}
}
