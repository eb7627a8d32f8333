/*
 * Copyright 2022 The Go Authors<36625090@qq.com>. All rights reserved.
 * Use of this source code is governed by a MIT-style
 * license that can be found in the LICENSE file.
 */

package option

import (
	"log"
	"os"

	"github.com/jessevdk/go-flags"
)

type Http struct {
	Path       string `long:"http.path" default:"" description:"Path for the HTTP server context" `
	Address    string `long:"http.address" default:"0.0.0.0" description:"Address for the HTTP server listening" `
	Port       int    `long:"http.port" default:"8080" description:"Port for the HTTP server listening" `
	Cors       bool   `long:"http.cors" description:"Support CORS access" `
	RequestLog bool   `long:"http.requestlog" description:"Log HTTP requests" `
}

// Dial gateway connection settings
type Dial struct {
	Host        string  `long:"dial.host" env:"DIAL_API_HOST" description:"Base URL of the DIAL gateway"`
	ApiKey      string  `long:"dial.key" env:"DIAL_API_KEY" description:"Api-Key used against the DIAL gateway"`
	ApiVersion  string  `long:"dial.api-version" default:"2024-02-01" description:"Azure-compatible api-version"`
	Model       string  `long:"dial.model" description:"Deployment name to use"`
	Temperature float64 `long:"dial.temperature" default:"0.7" description:"Sampling temperature, 0 to 1"`
	MaxTokens   int     `long:"dial.max-tokens" default:"0" description:"Completion token limit, 0 for unlimited"`
	Stream      bool    `long:"dial.stream" description:"Stream the response token by token"`
}

// Log logging settings
type Log struct {
	Path  string `long:"log.path" default:"logs" description:"Sets the path to log file"`
	Level string `long:"log.level" default:"info" description:"Sets the log level" choice:"info" choice:"warn" choice:"error" choice:"debug" `
}

// Options 服务参数选项
type Options struct {
	ConfigFile string `long:"config" description:"Config file for startup"`
	Log        Log    `group:"log"`
	Http       Http   `group:"http"`
	Dial       Dial   `group:"dial"`
	Version    bool   `long:"version" short:"v" description:"Show the program version"`
}

var _parser *flags.Parser

func NewOptions() *Options {
	log.SetFlags(log.Lshortfile | log.LstdFlags)
	var opts Options
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	_parser = parser
	return &opts
}

func (m *Options) AddCommand(name string, cmd flags.Commander) {
	_parser.AddCommand(name, "", "", cmd)
}

func (m *Options) Parse() error {
	_, err := _parser.ParseArgs(os.Args[1:])
	if nil == err {
		return nil
	}
	switch err.(type) {
	case *flags.Error:
		flagError := err.(*flags.Error)
		if flagError.Type == flags.ErrHelp {
			_parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		if flagError.Type == flags.ErrRequired && m.Version {
			os.Exit(0)
		}
		os.Stdout.WriteString("Fault: \n" + err.Error() + "\n")
	default:
		log.Fatal("Unknown error: ", err)
	}

	return err
}
