package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/multirange/internal/domain"
	"github.com/aalvaropc/multirange/internal/ports"
)

// Loader reads slider configs and edit scripts from YAML, or TOML when the
// file ends in .toml.
type Loader struct {
	strict bool
}

type Option func(*Loader)

// WithStrictFields rejects keys that do not map to a known field.
func WithStrictFields(enabled bool) Option {
	return func(l *Loader) { l.strict = enabled }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var (
	_ ports.SliderLoader     = (*Loader)(nil)
	_ ports.EditScriptLoader = (*Loader)(nil)
)

func (l *Loader) LoadSlider(path string) (domain.SliderConfig, error) {
	var dto YAMLConfig
	if err := l.decodeFile("config.load_slider", path, &dto); err != nil {
		return domain.SliderConfig{}, err
	}
	return MapSlider(path, dto)
}

func (l *Loader) LoadEdits(path string) (domain.EditScript, error) {
	var dto YAMLEditScript
	if err := l.decodeFile("config.load_edits", path, &dto); err != nil {
		return domain.EditScript{}, err
	}
	return MapEdits(path, dto)
}

// LoadSlider is a shortcut for NewLoader().LoadSlider.
func LoadSlider(path string) (domain.SliderConfig, error) {
	return NewLoader().LoadSlider(path)
}

func (l *Loader) decodeFile(op, path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return &domain.OpError{
			Op:   op,
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	if err := l.decode(path, b, out); err != nil {
		return &domain.OpError{
			Op:   op,
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}
	return nil
}

func (l *Loader) decode(path string, b []byte, out any) error {
	if IsTOML(path) {
		dec := toml.NewDecoder(bytes.NewReader(b))
		if l.strict {
			dec.DisallowUnknownFields()
		}
		return dec.Decode(out)
	}

	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(l.strict)
	return dec.Decode(out)
}

func IsTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
