package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

type DBConfig struct {
	// Driver selects the dialector: "sqlite" (default, embedded file) or
	// "postgres".
	Driver   string `yaml:"driver"`
	Path     string `yaml:"path"`
	Name     string `yaml:"name"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`

	// Read replicas, postgres only.
	Replicas []DBConfig `yaml:"replicas"`
}

type ConfigSchema struct {
	Database DBConfig `yaml:"db"`
	Backend  struct {
		Host      string `yaml:"host"`
		Port      int    `yaml:"port"`
		Mode      string `yaml:"mode"`
		StaticDir string `yaml:"static_dir"`
	} `yaml:"backend"`
	Seed struct {
		FakeUsers int `yaml:"fake_users"`
		FakePosts int `yaml:"fake_posts"`
	} `yaml:"seed"`
	Logs struct {
		Level string `yaml:"level"`
	} `yaml:"logs"`
}

func LoadConfig(filePath string) (*ConfigSchema, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var conf ConfigSchema
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return nil, err
	}

	if conf.Database.Driver == "" {
		conf.Database.Driver = "sqlite"
	}
	if conf.Database.Driver == "sqlite" && conf.Database.Path == "" {
		conf.Database.Path = "nexus.db"
	}
	if conf.Backend.Port == 0 {
		conf.Backend.Port = 3000
	}
	if conf.Backend.StaticDir == "" {
		conf.Backend.StaticDir = "dist"
	}
	return &conf, nil
}
