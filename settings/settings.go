// Package settings holds the process-wide grille settings: output naming and
// image geometry for the renderer, and the search attempt budget.
//
// Settings are plain values. Load and With return new values and never touch
// shared state, so a Settings can be passed freely into the search and CLI.
package settings

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for settings parsing.
var (
	// ErrUnknownKey indicates an override names no settings field.
	ErrUnknownKey = errors.New("settings: unknown key")
	// ErrInvalidValue indicates a value that cannot be parsed for its field.
	ErrInvalidValue = errors.New("settings: invalid value")
)

// Design selects how marked positions are drawn.
type Design int

const (
	// Circle draws a round hole in each marked square.
	Circle Design = iota
	// Square fills the whole marked square.
	Square
)

// String returns the lower-case design name.
func (d Design) String() string {
	switch d {
	case Circle:
		return "circle"
	case Square:
		return "square"
	default:
		return "design(" + strconv.Itoa(int(d)) + ")"
	}
}

// ParseDesign parses a design name case-insensitively.
func ParseDesign(s string) (Design, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "circle":
		return Circle, nil
	case "square":
		return Square, nil
	}
	return 0, fmt.Errorf("%w: design %q", ErrInvalidValue, s)
}

// MarshalText implements encoding.TextMarshaler.
func (d Design) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Design) UnmarshalText(b []byte) error {
	v, err := ParseDesign(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Settings configures grille output and search.
type Settings struct {
	// DPI is the pixel density of the generated image.
	DPI int `yaml:"dpi"`
	// MMPerSquare is the printed size of one grille square.
	MMPerSquare int `yaml:"mmPerSquare"`
	// OutputDir is the directory images are written to.
	OutputDir string `yaml:"outputDir"`
	// Filename is the base name given to grille images.
	Filename string `yaml:"filename"`
	// Design is the mark shape.
	Design Design `yaml:"design"`
	// Shaded fills marks in grey instead of white.
	Shaded bool `yaml:"shaded"`
	// Attempts is the seed search budget.
	Attempts int `yaml:"attempts"`
}

// Defaults.
const (
	DefaultDPI         = 300
	DefaultMMPerSquare = 8
	DefaultOutputDir   = "."
	DefaultFilename    = "grille"
	DefaultDesign      = Circle
	DefaultAttempts    = 100000
)

// Default returns the documented defaults.
func Default() Settings {
	return Settings{
		DPI:         DefaultDPI,
		MMPerSquare: DefaultMMPerSquare,
		OutputDir:   DefaultOutputDir,
		Filename:    DefaultFilename,
		Design:      DefaultDesign,
		Shaded:      false,
		Attempts:    DefaultAttempts,
	}
}

// Load reads a YAML settings file and overlays it on Default. Keys absent
// from the file keep their defaults. The result is validated.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML settings bytes over Default and validates the result.
func Parse(data []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	// An explicitly empty string means "use the default", as for overrides.
	if s.OutputDir == "" {
		s.OutputDir = DefaultOutputDir
	}
	if s.Filename == "" {
		s.Filename = DefaultFilename
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Keys lists the override keys accepted by With, in field order.
func Keys() []string {
	return []string{"dpi", "mmPerSquare", "outputDir", "filename", "design", "shaded", "attempts"}
}

// With returns a copy of s with one field overridden by name. Keys match
// case-insensitively; an empty value leaves the field unchanged. On error s
// is returned as is.
func (s Settings) With(key, value string) (Settings, error) {
	if value == "" {
		if !knownKey(key) {
			return s, fmt.Errorf("%w: %q", ErrUnknownKey, key)
		}
		return s, nil
	}
	out := s
	var err error
	switch strings.ToLower(key) {
	case "dpi":
		out.DPI, err = parseInt(key, value)
	case "mmpersquare":
		out.MMPerSquare, err = parseInt(key, value)
	case "outputdir":
		out.OutputDir = value
	case "filename":
		out.Filename = value
	case "design":
		out.Design, err = ParseDesign(value)
	case "shaded":
		if out.Shaded, err = strconv.ParseBool(value); err != nil {
			err = fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
		}
	case "attempts":
		out.Attempts, err = parseInt(key, value)
	default:
		return s, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	if err != nil {
		return s, err
	}
	return out, nil
}

// Apply applies "key=value" overrides in order, later ones winning, and
// validates the result.
func (s Settings) Apply(pairs ...string) (Settings, error) {
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok {
			return s, fmt.Errorf("%w: override %q is not key=value", ErrInvalidValue, p)
		}
		next, err := s.With(strings.TrimSpace(k), strings.TrimSpace(v))
		if err != nil {
			return s, err
		}
		s = next
	}
	return s, s.Validate()
}

// Validate checks numeric ranges.
func (s Settings) Validate() error {
	switch {
	case s.DPI <= 0:
		return fmt.Errorf("%w: dpi must be positive (%d)", ErrInvalidValue, s.DPI)
	case s.MMPerSquare <= 0:
		return fmt.Errorf("%w: mmPerSquare must be positive (%d)", ErrInvalidValue, s.MMPerSquare)
	case s.Attempts < 0:
		return fmt.Errorf("%w: attempts cannot be negative (%d)", ErrInvalidValue, s.Attempts)
	case s.Design != Circle && s.Design != Square:
		return fmt.Errorf("%w: design %v", ErrInvalidValue, s.Design)
	}
	return nil
}

// ImageName returns the default image file name for a grille:
// <filename>_<order>_<seed, 10 digits>.png
func (s Settings) ImageName(order int, seed int64) string {
	return fmt.Sprintf("%s_%d_%010d.png", s.Filename, order, seed)
}

func parseInt(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
	}
	return n, nil
}

func knownKey(key string) bool {
	for _, k := range Keys() {
		if strings.EqualFold(k, key) {
			return true
		}
	}
	return false
}
