package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	// SearchConfig describes external image search capability.
	SearchConfig struct {
		Provider     string       `yaml:"provider" validate:"required"`
		Endpoint     string       `yaml:"endpoint" validate:"required,url"`
		APIKey       SecretString `yaml:"api_key,omitempty"`
		Timeout      int          `yaml:"timeout_seconds" validate:"min=1,max=120"`
		Concurrency  int          `yaml:"concurrency" validate:"min=1,max=16"`
		Orientation  Orientation  `yaml:"orientation" validate:"gte=0"`
		StyleSuffix  string       `yaml:"style_suffix" validate:"required"`
		DefaultQuery string       `yaml:"default_query" validate:"required"`
	}

	// CacheConfig describes content-addressed on-disk asset cache.
	CacheConfig struct {
		Directory string `yaml:"directory" sanitize:"path_clean,assure_dir_exists" validate:"required,dirpath|dir"`
		Index     bool   `yaml:"index"`
	}

	AssetsConfig struct {
		Search      SearchConfig    `yaml:"search"`
		Cache       CacheConfig     `yaml:"cache"`
		Resize      ImageResizeMode `yaml:"resize" validate:"gte=0"`
		MaxWidth    int             `yaml:"max_width" validate:"min=320"`
		JPEGQuality int             `yaml:"jpeg_quality_level" validate:"min=40,max=100"`
	}

	// ThresholdsConfig keeps empirical storyboard heuristics adjustable.
	// Defaults mirror the values production decks were tuned against.
	ThresholdsConfig struct {
		ActivityTextCutoff     int     `yaml:"activity_text_cutoff" validate:"min=1"`
		CognitiveLoadMinutes   int     `yaml:"cognitive_load_minutes" validate:"min=1"`
		DurationDriftTolerance float64 `yaml:"duration_drift_tolerance" validate:"gt=0,lt=1"`
	}

	DocumentConfig struct {
		FixZip                bool             `yaml:"fix_zip"`
		StylesheetPath        string           `yaml:"stylesheet_path" sanitize:"assure_file_access"`
		OutputNameTemplate    string           `yaml:"output_name_template"`
		FileNameTransliterate bool             `yaml:"file_name_transliterate"`
		Thresholds            ThresholdsConfig `yaml:"thresholds"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Document  DocumentConfig `yaml:"document"`
		Assets    AssetsConfig   `yaml:"assets"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field name above, alternative is to use struct
	// field name and reflection which I want to avoid for now
	OutputNameTemplateFieldName TemplateFieldName = "output_name_template"
	DefaultQueryFieldName       TemplateFieldName = "default_query"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(OutputNameTemplateFieldName)),
	gencfg.WithDoNotExpandField(string(DefaultQueryFieldName)),
)

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
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to provide
// sane defaults and performs validation.
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
