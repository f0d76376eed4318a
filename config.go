package translatable

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the optional project-level configuration file read by
// Default.
const ConfigFile = "translatable.toml"

// ErrInvalidConfig is returned when the configuration file cannot be decoded
// or carries unknown enum values.
var ErrInvalidConfig = errors.New("translatable: invalid configuration")

// Config selects where translation files live and how they are ordered.
type Config struct {
	// Path is the directory translation files are loaded from.
	Path string `toml:"path"`
	// SeekMode is "alphabetical" or "unalphabetical".
	SeekMode SeekMode `toml:"seek_mode"`
	// Overlap is "overwrite" or "ignore".
	Overlap Overlap `toml:"overlap"`
}

// DefaultConfig returns the configuration used when no file is present:
// ./translations, alphabetical seek, overwrite overlap.
func DefaultConfig() Config {
	return Config{
		Path:     "./translations",
		SeekMode: SeekAlphabetical,
		Overlap:  OverlapOverwrite,
	}
}

// LoadConfig reads a TOML configuration file. A missing file is not an
// error; defaults are returned. Fields absent from the file keep their
// default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading %q: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}

	switch cfg.SeekMode {
	case SeekAlphabetical, SeekUnalphabetical:
	default:
		return cfg, fmt.Errorf("%w: unknown seek_mode %q", ErrInvalidConfig, cfg.SeekMode)
	}
	switch cfg.Overlap {
	case OverlapOverwrite, OverlapIgnore:
	default:
		return cfg, fmt.Errorf("%w: unknown overlap %q", ErrInvalidConfig, cfg.Overlap)
	}

	return cfg, nil
}
