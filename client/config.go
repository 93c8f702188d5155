// Copyright 2026 The backupctl Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package client

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Hosts       []string
	Port        int
	Keyspace    string
	Timeout     time.Duration
	Consistency string
}

func DefaultConfig() *Config {
	return &Config{
		Hosts:    []string{"127.0.0.1"},
		Port:     9042,
		Keyspace: "backup_metadata",
		Timeout:  10 * time.Second,
	}
}

func LoadConfig(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()

	raw := rawConfigYaml{}
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg := DefaultConfig()
	if len(raw.Hosts) > 0 {
		cfg.Hosts = raw.Hosts
	}
	if raw.Port != 0 {
		cfg.Port = raw.Port
	}
	if raw.Keyspace != "" {
		cfg.Keyspace = raw.Keyspace
	}
	if raw.Timeout != "" {
		timeout, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid timeout: %w", path, err)
		}
		cfg.Timeout = timeout
	}
	cfg.Consistency = raw.Consistency
	return cfg, nil
}

type rawConfigYaml struct {
	Hosts       []string `yaml:"hosts"`
	Port        int      `yaml:"port"`
	Keyspace    string   `yaml:"keyspace"`
	Timeout     string   `yaml:"timeout"`
	Consistency string   `yaml:"consistency"`
}
