package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
)

const (
	FormatDecimal    = "decimal"
	FormatScientific = "scientific"
	FormatDigits     = "digits"

	DefaultPrecision = 10
	DefaultMaxInput  = 100000
	// Unlimited disables the max_input check.
	Unlimited = -1

	configDirName   = ".factorial"
	configFileName  = "config.json"
	historyFileName = "history"
)

// Formats lists every supported output format.
var Formats = []string{FormatDecimal, FormatScientific, FormatDigits}

type Config struct {
	Format      string `json:"format"`
	Precision   int    `json:"precision"`
	MaxInput    int64  `json:"max_input"`
	HistoryFile string `json:"history_file"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	cfg := Config{}
	_ = cfg.Validate()
	return cfg
}

// configFilePath builds the path to ~/.factorial/config.json.
func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to detect home directory")
	}
	return filepath.Join(home, configDirName, configFileName), nil
}

// LoadConfigFile reads configuration from ~/.factorial/config.json.
// Returns an error if the file does not exist or cannot be parsed.
func LoadConfigFile() (Config, error) {
	path, err := configFilePath()
	if err != nil {
		return Config{}, err
	}
	return LoadConfigFrom(path)
}

// LoadConfigFrom reads and validates the configuration stored at path.
func LoadConfigFrom(path string) (Config, error) {
	var cfg Config

	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse %s", path)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}

	return cfg, nil
}

// SaveConfigTo writes cfg to path, creating parent directories.
func SaveConfigTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}

// InteractiveSetup launches a CLI wizard to collect configuration from the user
// and saves the result to ~/.factorial/config.json.
func InteractiveSetup() (Config, error) {
	fmt.Println("🔧 Initial configuration (factorial)")

	cfg := Default()

	formatSel := promptui.Select{
		Label: "Select output format",
		Items: Formats,
	}
	_, format, err := formatSel.Run()
	if err != nil {
		return cfg, err
	}
	cfg.Format = format

	if cfg.Format == FormatScientific {
		precPrompt := promptui.Prompt{
			Label:    "Significant digits",
			Default:  strconv.Itoa(DefaultPrecision),
			Validate: validatePositiveInt,
		}
		p, err := precPrompt.Run()
		if err != nil {
			return cfg, err
		}
		cfg.Precision, _ = strconv.Atoi(strings.TrimSpace(p))
	}

	limitPrompt := promptui.Prompt{
		Label:    "Largest accepted n (-1 for unlimited)",
		Default:  strconv.FormatInt(DefaultMaxInput, 10),
		Validate: validateLimit,
	}
	limit, err := limitPrompt.Run()
	if err != nil {
		return cfg, err
	}
	cfg.MaxInput, _ = strconv.ParseInt(strings.TrimSpace(limit), 10, 64)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	path, err := configFilePath()
	if err != nil {
		return cfg, err
	}
	if err := SaveConfigTo(path, cfg); err != nil {
		return cfg, err
	}

	fmt.Println("Configuration saved to ~/.factorial/config.json ✅")

	return cfg, nil
}

func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return errors.New("must be a positive integer")
	}
	return nil
}

func validateLimit(s string) error {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || v == 0 || v < Unlimited {
		return errors.New("must be a positive integer or -1")
	}
	return nil
}

// IsKnownFormat reports whether format is one of Formats.
func IsKnownFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Validate validates the configuration and fills in defaults
func (c *Config) Validate() error {
	if c.Format == "" {
		c.Format = FormatDecimal
	}
	if c.Precision == 0 {
		c.Precision = DefaultPrecision
	}
	if c.MaxInput == 0 {
		c.MaxInput = DefaultMaxInput
	}
	if c.HistoryFile == "" {
		c.HistoryFile = defaultHistoryFile()
	}

	if !IsKnownFormat(c.Format) {
		return errors.Errorf("unknown format %q, expected one of %s", c.Format, strings.Join(Formats, ", "))
	}
	if c.Precision < 0 {
		return errors.Errorf("precision must be positive, got %d", c.Precision)
	}
	if c.MaxInput < Unlimited {
		return errors.Errorf("max_input must be positive or %d for unlimited, got %d", Unlimited, c.MaxInput)
	}

	return nil
}

func defaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "factorial_history")
	}
	return filepath.Join(home, configDirName, historyFileName)
}
