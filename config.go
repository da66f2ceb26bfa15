package delpi

import (
	"math/big"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config carries the tunables of §6 that a CLI, an embedded record inside
// an MPS file, or an Option can all set. Later writers win: options embedded
// in the parsed input override a loaded config file, and explicitly passed
// CLI flags override both, matching the "flags override embedded/file
// options" rule.
type Config struct {
	CSV               bool          `yaml:"csv"`
	Silent            bool          `yaml:"silent"`
	WithTimings       bool          `yaml:"with-timings"`
	Precision         *big.Rat      `yaml:"precision"`
	ContinuousOutput  bool          `yaml:"continuous-output"`
	Verbosity         int           `yaml:"verbosity"`
	SimplexVerbosity  int           `yaml:"simplex-verbosity"`
	ProduceModels     bool          `yaml:"produce-models"`
	Timeout           time.Duration `yaml:"timeout"`
	WarmStart         bool          `yaml:"warm-start"`
	BackendName       string        `yaml:"backend"`
}

// LoadFile merges YAML-encoded defaults from path into cfg. Fields present
// in the file overwrite cfg's current value; missing fields are untouched.
func (cfg *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading config file %q", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.Wrapf(err, "parsing config file %q", path)
	}
	return nil
}

// SetOption implements the `:key value` option grammar of §6, as recognised
// from `* @set-option` MPS records (the CLI assigns its flags to Config
// fields directly). Boolean options
// accept "yes"/"true"/"1"/"on" (case-insensitive) as true, anything else as
// false.
func (cfg *Config) SetOption(key, value string) error {
	switch strings.ToLower(key) {
	case ":csv":
		cfg.CSV = parseBool(value)
	case ":silent":
		cfg.Silent = parseBool(value)
	case ":with-timings":
		cfg.WithTimings = parseBool(value)
	case ":precision":
		r, ok := new(big.Rat).SetString(value)
		if !ok {
			return errors.Errorf("invalid :precision value %q", value)
		}
		cfg.Precision = r
	case ":continuous-output":
		cfg.ContinuousOutput = parseBool(value)
	case ":verbosity":
		v, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, "invalid :verbosity value %q", value)
		}
		cfg.Verbosity = v
	case ":simplex-verbosity":
		v, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, "invalid :simplex-verbosity value %q", value)
		}
		cfg.SimplexVerbosity = v
	case ":produce-models":
		cfg.ProduceModels = parseBool(value)
	case ":timeout":
		ms, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrapf(err, "invalid :timeout value %q", value)
		}
		cfg.Timeout = time.Duration(ms) * time.Millisecond
	case ":warm-start":
		cfg.WarmStart = parseBool(value)
	default:
		return errors.Errorf("unknown option %q", key)
	}
	return nil
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "yes", "true", "1", "on":
		return true
	default:
		return false
	}
}
