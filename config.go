package svg

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is the declarative form of the document options, suitable for
// TOML or YAML files.
//
//	id_prefix = "chart-"
//	precision = 2
//	image_mode = "external"
//	image_format = "jpeg"
//
//	[root]
//	unit = "mm"
//	view_box = [0, 0, 210, 297]
type Config struct {
	IDPrefix      string            `toml:"id_prefix" yaml:"id_prefix"`
	Precision     *int              `toml:"precision" yaml:"precision"`
	HairlineWidth float64           `toml:"hairline_width" yaml:"hairline_width"`
	ImageMode     string            `toml:"image_mode" yaml:"image_mode"`
	ImageFormat   string            `toml:"image_format" yaml:"image_format"`
	XMLHeader     bool              `toml:"xml_header" yaml:"xml_header"`
	FontFamilies  map[string]string `toml:"font_families" yaml:"font_families"`
	Root          RootConfig        `toml:"root" yaml:"root"`
}

// RootConfig is the declarative form of RootAttributes.
type RootConfig struct {
	ID                  string    `toml:"id" yaml:"id"`
	Width               float64   `toml:"width" yaml:"width"`
	Height              float64   `toml:"height" yaml:"height"`
	Unit                string    `toml:"unit" yaml:"unit"`
	ViewBox             []float64 `toml:"view_box" yaml:"view_box"`
	PreserveAspectRatio string    `toml:"preserve_aspect_ratio" yaml:"preserve_aspect_ratio"`
	Slice               bool      `toml:"slice" yaml:"slice"`
}

// LoadConfig reads a configuration file. The format is chosen by
// extension: .toml, or .yaml and .yml.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("svg: load config: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseConfigTOML(data)
	case ".yaml", ".yml":
		return ParseConfigYAML(data)
	}
	return nil, fmt.Errorf("svg: config %s: unknown extension: %w", path, ErrInvalidArgument)
}

// ParseConfigTOML decodes a TOML configuration. Unknown keys are errors.
func ParseConfigTOML(data []byte) (*Config, error) {
	var c Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("svg: parse toml config: %w", err)
	}
	return &c, nil
}

// ParseConfigYAML decodes a YAML configuration. Unknown keys are errors.
func ParseConfigYAML(data []byte) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("svg: parse yaml config: %w", err)
	}
	return &c, nil
}

// Options converts the configuration into document options.
func (c *Config) Options() ([]Option, error) {
	var opts []Option
	if c.IDPrefix != "" {
		opts = append(opts, WithIDPrefix(c.IDPrefix))
	}
	if c.Precision != nil {
		if *c.Precision < 0 {
			return nil, fmt.Errorf("svg: precision %d: %w", *c.Precision, ErrInvalidArgument)
		}
		opts = append(opts, WithPrecision(*c.Precision))
	}
	if c.HairlineWidth < 0 {
		return nil, fmt.Errorf("svg: hairline width %v: %w", c.HairlineWidth, ErrInvalidArgument)
	}
	if c.HairlineWidth > 0 {
		opts = append(opts, WithHairlineWidth(c.HairlineWidth))
	}
	switch strings.ToLower(c.ImageMode) {
	case "", "embedded":
	case "external":
		opts = append(opts, WithImageMode(ImageExternal))
	default:
		return nil, fmt.Errorf("svg: image mode %q: %w", c.ImageMode, ErrInvalidArgument)
	}
	if c.ImageFormat != "" {
		enc, err := EncoderForFormat(c.ImageFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithImageEncoder(enc))
	}
	if c.XMLHeader {
		opts = append(opts, WithXMLHeader(true))
	}
	if len(c.FontFamilies) > 0 {
		families := maps.Clone(c.FontFamilies)
		opts = append(opts, WithFontFamilyMapper(func(family string) string {
			if mapped, ok := families[family]; ok {
				return mapped
			}
			return family
		}))
	}

	root, err := c.Root.attributes()
	if err != nil {
		return nil, err
	}
	opts = append(opts, WithRootAttributes(root))
	return opts, nil
}

func (r RootConfig) attributes() (RootAttributes, error) {
	a := RootAttributes{
		ID:                  r.ID,
		Width:               r.Width,
		Height:              r.Height,
		Unit:                r.Unit,
		PreserveAspectRatio: r.PreserveAspectRatio,
		Slice:               r.Slice,
	}
	switch len(r.ViewBox) {
	case 0:
	case 4:
		a.ViewBox = &ViewBox{X: r.ViewBox[0], Y: r.ViewBox[1], Width: r.ViewBox[2], Height: r.ViewBox[3]}
	default:
		return a, fmt.Errorf("svg: view box needs 4 values, got %d: %w", len(r.ViewBox), ErrInvalidArgument)
	}
	return a, nil
}
