package mesh2d

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ParseStrokeStyle decodes a style document in the given format ("yaml",
// "yml" or "toml"). Fields missing from the document keep their
// DefaultStrokeStyle values. Unknown keys are rejected in both formats. The
// decoded style is validated.
func ParseStrokeStyle(data []byte, format string) (StrokeStyle, error) {
	s := DefaultStrokeStyle()

	switch strings.ToLower(format) {
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return StrokeStyle{}, fmt.Errorf("mesh2d: decode yaml style: %w", err)
		}
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return StrokeStyle{}, fmt.Errorf("mesh2d: decode toml style: %w", err)
		}
	default:
		return StrokeStyle{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err := s.Validate(); err != nil {
		return StrokeStyle{}, err
	}
	return s, nil
}

// LoadStrokeStyle reads a style file, choosing the format from its
// extension.
func LoadStrokeStyle(path string) (StrokeStyle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return StrokeStyle{}, fmt.Errorf("mesh2d: load style: %w", err)
	}
	s, err := ParseStrokeStyle(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		Logger().Warn("mesh2d: style file rejected", "path", path, "err", err)
		return StrokeStyle{}, err
	}
	Logger().Debug("mesh2d: style loaded", "path", path, "width", s.Width)
	return s, nil
}
