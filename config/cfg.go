package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"layercss/common"
	"layercss/misc"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	LayersConfig struct {
		BaseName string         `yaml:"base_name" validate:"required"`
		IDStyle  common.IDStyle `yaml:"id_style" validate:"gte=0"`
		Width    float64        `yaml:"width" validate:"gt=0"`
		Height   float64        `yaml:"height" validate:"gt=0"`
	}

	AnimationConfig struct {
		Duration       float64          `yaml:"duration" validate:"gte=0"`
		Delay          float64          `yaml:"delay" validate:"gte=0"`
		IterationCount string           `yaml:"iteration_count" validate:"required"`
		Direction      common.Direction `yaml:"direction" validate:"gte=0"`
		TimingFunction string           `yaml:"timing_function" validate:"required"`
	}

	CSSConfig struct {
		HeaderTemplate     string `yaml:"header_template"`
		Indent             int    `yaml:"indent" validate:"min=0,max=8"`
		HonorGradientAngle bool   `yaml:"honor_gradient_angle"`
		Check              bool   `yaml:"check"`
	}

	LibraryConfig struct {
		Path string `yaml:"path" validate:"required,filepath"`
	}

	Config struct {
		Version   int             `yaml:"version" validate:"eq=1"`
		Layers    LayersConfig    `yaml:"layers"`
		Animation AnimationConfig `yaml:"animation"`
		CSS       CSSConfig       `yaml:"css"`
		Library   LibraryConfig   `yaml:"library"`
		Logging   LoggingConfig   `yaml:"logging"`
		Reporting ReporterConfig  `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above
	HeaderTemplateFieldName TemplateFieldName = "header_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(HeaderTemplateFieldName)),
)

// HeaderValues are available to header template.
type HeaderValues struct {
	App     string
	Version string
}

// Header expands header template. Empty template produces empty header.
func (conf *CSSConfig) Header() (string, error) {
	if len(strings.TrimSpace(conf.HeaderTemplate)) == 0 {
		return "", nil
	}
	tmpl, err := template.New(string(HeaderTemplateFieldName)).Funcs(sprig.FuncMap()).Parse(conf.HeaderTemplate)
	if err != nil {
		return "", fmt.Errorf("unable to parse header template: %w", err)
	}
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, HeaderValues{App: misc.GetAppName(), Version: misc.GetVersion()}); err != nil {
		return "", fmt.Errorf("unable to expand header template: %w", err)
	}
	return strings.TrimSpace(buf.String()), nil
}

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// We want to use only fields we defined so we cannot use yaml.Unmarshal
	// directly here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		// sanitize and validate what has been loaded
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, fmt.Errorf("failed to sanitize configuration: %w", err)
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, fmt.Errorf("failed to validate configuration: %w", err)
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	// overwrite cfg values with values from the file
	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
