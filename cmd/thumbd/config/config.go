package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/previewlab/thumbd/internal/formats"
)

// Config -
type Config struct {
	Server    Server    `yaml:"server"`
	Thumbnail Thumbnail `yaml:"thumbnail"`
	AWS       AWS       `yaml:"aws"`
}

// Server -
type Server struct {
	Bind      string  `yaml:"bind" validate:"required"`
	RateLimit float64 `yaml:"rate_limit" validate:"min=0"`
}

// Thumbnail -
type Thumbnail struct {
	Excluded []formats.Extension `yaml:"excluded" validate:"max=27"`
}

// ExcludedSet -
func (t Thumbnail) ExcludedSet() map[formats.Extension]struct{} {
	set := make(map[formats.Extension]struct{}, len(t.Excluded))
	for _, ext := range t.Excluded {
		set[ext] = struct{}{}
	}
	return set
}

// AWS -
type AWS struct {
	Endpoint   string `yaml:"endpoint" validate:"omitempty,url"`
	BucketName string `yaml:"bucket_name" validate:"omitempty"`
	Region     string `yaml:"region" validate:"omitempty"`
	AccessKey  string `yaml:"access_key_id" validate:"omitempty"`
	Secret     string `yaml:"secret_access_key" validate:"omitempty"`
}

// Load reads a YAML config file, substituting ${VAR} environment references
// before parsing and validating it.
func Load(filename string) (cfg Config, err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, errors.Wrap(err, filename)
	}

	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return cfg, errors.Wrap(err, filename)
	}

	if cfg.Server.Bind == "" {
		cfg.Server.Bind = ":14000"
	}
	if cfg.Server.RateLimit == 0 {
		cfg.Server.RateLimit = 20
	}

	if err := validator.New().Struct(cfg); err != nil {
		return cfg, errors.Wrap(err, filename)
	}
	return cfg, nil
}
