package seeder

import (
	"io"

	yaml "gopkg.in/yaml.v2"
)

type EntitySeed struct {
	Label    string `yaml:"label"`
	DataType string `yaml:"dataType"`
}

type Config struct {
	Language   string       `yaml:"language"`
	Items      []EntitySeed `yaml:"items"`
	Properties []EntitySeed `yaml:"properties"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {

	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = yaml.Unmarshal(buf, &cfg)

	return cfg, err
}
