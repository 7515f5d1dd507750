package config

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/lomik/zapwriter"
	"github.com/pkg/errors"
)

var (
	ErrEmptyCounterName     = errors.New("empty counter name")
	ErrDuplicateCounterName = errors.New("duplicate counter name")
	ErrUnknownKeys          = errors.New("unknown config keys")
)

type Common struct {
	MaxCPU int `toml:"max-cpu" json:"max-cpu"`
}

// Counters describes the counters created up front
type Counters struct {
	InitialValue int64    `toml:"initial-value" json:"initial-value"`
	Names        []string `toml:"names" json:"names"`
}

// Prometheus names the exported counter metrics
type Prometheus struct {
	Namespace string `toml:"namespace" json:"namespace"`
	Subsystem string `toml:"subsystem" json:"subsystem"`
}

// Config ...
type Config struct {
	Common     Common             `toml:"common" json:"common"`
	Counters   Counters           `toml:"counters" json:"counters"`
	Prometheus Prometheus         `toml:"prometheus" json:"prometheus"`
	Logging    []zapwriter.Config `toml:"logging" json:"logging"`
}

// New returns *Config with default values
func New() *Config {
	return &Config{
		Common: Common{
			MaxCPU: 1,
		},
		Prometheus: Prometheus{
			Namespace: "atomiccell",
			Subsystem: "counter",
		},
		Logging: []zapwriter.Config{zapwriter.NewConfig()},
	}
}

// Print dumps cfg in TOML to stdout
func Print(cfg interface{}) error {
	buf := new(bytes.Buffer)

	encoder := toml.NewEncoder(buf)
	encoder.Indent = ""

	if err := encoder.Encode(cfg); err != nil {
		return err
	}

	fmt.Print(buf.String())
	return nil
}

// ReadConfig decodes body over the defaults and validates the result
func ReadConfig(body []byte) (*Config, error) {
	cfg := New()
	md, err := toml.Decode(string(body), cfg)
	if err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if err := undecoded(md); err != nil {
		return nil, err
	}
	if err := cfg.check(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse reads filename into cfg. An empty filename leaves cfg unchanged.
func Parse(filename string, cfg *Config) error {
	if filename != "" {
		md, err := toml.DecodeFile(filename, cfg)
		if err != nil {
			return errors.Wrapf(err, "decode config %q", filename)
		}
		if err := undecoded(md); err != nil {
			return errors.Wrapf(err, "config %q", filename)
		}
	}

	return cfg.check()
}

// SetupLogging applies the [[logging]] sections to the global zapwriter loggers
func (cfg *Config) SetupLogging() error {
	if err := zapwriter.ApplyConfig(cfg.Logging); err != nil {
		return errors.Wrap(err, "apply logging config")
	}
	return nil
}

// SetupRuntime applies [common] max-cpu
func (cfg *Config) SetupRuntime() {
	runtime.GOMAXPROCS(cfg.Common.MaxCPU)
}

func undecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.String())
	}
	return errors.Wrap(ErrUnknownKeys, strings.Join(names, ", "))
}

func (cfg *Config) check() error {
	seen := make(map[string]struct{}, len(cfg.Counters.Names))
	for i, name := range cfg.Counters.Names {
		if name == "" {
			return errors.Wrapf(ErrEmptyCounterName, "counters.names[%d]", i)
		}
		if _, exist := seen[name]; exist {
			return errors.Wrapf(ErrDuplicateCounterName, "counters.names[%d] %q", i, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
