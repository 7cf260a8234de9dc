package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-watersort/internal/games/watersort/core"
)

// validate is shared by all config loads. Safe for concurrent use.
var validate *validator.Validate

func init() {
	v, err := newValidator()
	if err != nil {
		panic(err)
	}
	validate = v
}

// newValidator builds the struct validator with the custom tags the config
// types use.
func newValidator() (*validator.Validate, error) {
	v := validator.New()
	if err := v.RegisterValidation("strategy", validateStrategy); err != nil {
		return nil, fmt.Errorf("config: register strategy tag: %w", err)
	}
	return v, nil
}

// validateStrategy accepts the solver strategy names, including empty.
func validateStrategy(fl validator.FieldLevel) bool {
	_, err := core.ParseStrategy(fl.Field().String())
	return err == nil
}

// Validate checks field constraints of a loaded config.
func Validate(cfg WaterSortConfig) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadWaterSort loads Water Sort configuration.
// Search order: customPath -> ~/.watersort/configs/watersort.yaml -> ./configs/watersort.yaml -> embedded default
func LoadWaterSort(customPath string) (WaterSortConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return WaterSortConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return WaterSortConfig{}, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Broken files further down the chain are skipped
	for _, path := range []string{userConfigPath("watersort.yaml"), filepath.Join("configs", "watersort.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultWaterSortYAML)
	if err != nil {
		return DefaultWaterSortConfig(), nil
	}
	return cfg, nil
}

// parse decodes YAML over the built-in defaults, so files may set only the
// fields they change, then validates the result.
func parse(data []byte) (WaterSortConfig, error) {
	cfg := DefaultWaterSortConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return WaterSortConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return WaterSortConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".watersort", "configs", filename)
}
