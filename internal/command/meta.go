// Package command implements the poeditor operator CLI.
package command

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/pricofy/poeditor/internal/config"
	"github.com/pricofy/poeditor/pkg/poeditor"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Meta holds what every command shares.
type Meta struct {
	UI  cli.Ui
	Log hclog.Logger

	// Fs is used for upload files and JSON input files.
	Fs afero.Fs

	flagConfig string
	flagFormat string
}

// flagSet returns a flag set carrying the common flags. Parse errors are
// returned rather than exiting.
func (m *Meta) flagSet(name string) *flag.FlagSet {
	f := flag.NewFlagSet(name, flag.ContinueOnError)
	f.SetOutput(io.Discard)
	f.StringVar(&m.flagConfig, "config", "",
		"Path to a YAML config file. Defaults to ./poeditor.yaml when present.")
	f.StringVar(&m.flagFormat, "format", FormatJSON, "Output format: json or yaml.")
	return f
}

// flagsHelp renders the flags of f for a Help text.
func flagsHelp(f *flag.FlagSet) string {
	var b strings.Builder
	b.WriteString("\n\nOptions:\n")
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&b, "\n  -%s\n      %s\n", fl.Name, fl.Usage)
	})
	return strings.TrimRight(b.String(), "\n")
}

// setFlags returns the names of the flags given on the command line.
func setFlags(f *flag.FlagSet) map[string]bool {
	set := map[string]bool{}
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	return set
}

// loadConfig reads the configuration and applies its log level.
func (m *Meta) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(m.flagConfig)
	if err != nil {
		return nil, err
	}
	m.Log.SetLevel(cfg.Level())
	return cfg, nil
}

// client builds a client from cfg.
func (m *Meta) client(cfg *config.Config) (*poeditor.Client, error) {
	clientCfg := cfg.ClientConfig(m.Log)
	clientCfg.Fs = m.Fs
	return poeditor.New(clientCfg)
}

// readJSON decodes the JSON file at path into v.
func (m *Meta) readJSON(path string, v interface{}) error {
	b, err := afero.ReadFile(m.Fs, path)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("error decoding %s: %w", path, err)
	}
	return nil
}

// output writes v in the selected format. YAML goes through JSON first so
// both formats use the API's field names.
func (m *Meta) output(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	switch m.flagFormat {
	case FormatJSON:
		m.UI.Output(string(b))
		return nil
	case FormatYAML:
		var generic interface{}
		dec := json.NewDecoder(bytes.NewReader(b))
		dec.UseNumber()
		if err := dec.Decode(&generic); err != nil {
			return err
		}
		y, err := yaml.Marshal(toYAML(generic))
		if err != nil {
			return err
		}
		m.UI.Output(strings.TrimRight(string(y), "\n"))
		return nil
	default:
		return fmt.Errorf("unknown format %q", m.flagFormat)
	}
}

// toYAML turns json.Number values into ints or floats so yaml.v3 does not
// quote them.
func toYAML(v interface{}) interface{} {
	switch v := v.(type) {
	case map[string]interface{}:
		for k, e := range v {
			v[k] = toYAML(e)
		}
		return v
	case []interface{}:
		for i, e := range v {
			v[i] = toYAML(e)
		}
		return v
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	default:
		return v
	}
}

// fail reports err and returns the exit code for it.
func (m *Meta) fail(err error) int {
	var opErr *poeditor.OperationFailedError
	if errors.As(err, &opErr) && opErr.Code != "" {
		m.UI.Error(fmt.Sprintf("Error: %s (code %s)", err, opErr.Code))
		return 1
	}
	m.UI.Error(fmt.Sprintf("Error: %s", err))
	return 1
}
