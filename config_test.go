package svg

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const tomlConfig = `
id_prefix = "chart-"
precision = 2
image_mode = "external"
image_format = "jpeg"
xml_header = true

[font_families]
Dialog = "Dialog, sans-serif"

[root]
unit = "mm"
view_box = [0, 0, 210, 297]
preserve_aspect_ratio = "xMidYMid"
`

const yamlConfig = `
id_prefix: chart-
precision: 2
image_mode: external
image_format: jpeg
xml_header: true
font_families:
  Dialog: Dialog, sans-serif
root:
  unit: mm
  view_box: [0, 0, 210, 297]
  preserve_aspect_ratio: xMidYMid
`

func TestParseConfig(t *testing.T) {
	parsers := map[string]func([]byte) (*Config, error){
		"toml": func(b []byte) (*Config, error) { return ParseConfigTOML(b) },
		"yaml": func(b []byte) (*Config, error) { return ParseConfigYAML(b) },
	}
	inputs := map[string]string{"toml": tomlConfig, "yaml": yamlConfig}

	for name, parse := range parsers {
		t.Run(name, func(t *testing.T) {
			c, err := parse([]byte(inputs[name]))
			if err != nil {
				t.Fatal(err)
			}
			if c.IDPrefix != "chart-" || c.Precision == nil || *c.Precision != 2 {
				t.Errorf("config = %+v", c)
			}
			if c.Root.Unit != "mm" || len(c.Root.ViewBox) != 4 || c.Root.ViewBox[3] != 297 {
				t.Errorf("root = %+v", c.Root)
			}

			opts, err := c.Options()
			if err != nil {
				t.Fatal(err)
			}
			doc := NewDocument(210, 297, opts...)
			dc := doc.Context()
			dc.SetFont(Font{Family: "Dialog", Size: 3})
			dc.DrawString("x", 1.234, 5)

			got := doc.String()
			for _, want := range []string{
				`<?xml version="1.0"`,
				`width="210mm" height="297mm" viewBox="0 0 210 297" preserveAspectRatio="xMidYMid meet">`,
				`x="1.23"`,
				"font-family:Dialog, sans-serif",
			} {
				if !strings.Contains(got, want) {
					t.Errorf("missing %q in\n%s", want, got)
				}
			}
			if doc.Prefix() != "chart-" {
				t.Errorf("Prefix() = %q", doc.Prefix())
			}
		})
	}
}

func TestParseConfigUnknownField(t *testing.T) {
	if _, err := ParseConfigTOML([]byte(`colour = "red"`)); err == nil {
		t.Error("toml: unknown key accepted")
	}
	if _, err := ParseConfigYAML([]byte("colour: red\n")); err == nil {
		t.Error("yaml: unknown key accepted")
	}
}

func TestParseConfigYAMLEmpty(t *testing.T) {
	c, err := ParseConfigYAML(nil)
	if err != nil {
		t.Fatalf("empty yaml: %v", err)
	}
	if _, err := c.Options(); err != nil {
		t.Errorf("Options() of empty config: %v", err)
	}
}

func TestConfigOptionsErrors(t *testing.T) {
	neg := -1
	tests := []struct {
		name string
		c    Config
	}{
		{"negative precision", Config{Precision: &neg}},
		{"negative hairline", Config{HairlineWidth: -0.5}},
		{"image mode", Config{ImageMode: "inline"}},
		{"image format", Config{ImageFormat: "webp"}},
		{"view box", Config{Root: RootConfig{ViewBox: []float64{0, 0, 10}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.c.Options(); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Options() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.yml")
	if err := os.WriteFile(path, []byte("id_prefix: file-\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if c.IDPrefix != "file-" {
		t.Errorf("IDPrefix = %q", c.IDPrefix)
	}

	other := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(other, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(other); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("LoadConfig(.json) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := LoadConfig(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("LoadConfig of a missing file succeeded")
	}
}
