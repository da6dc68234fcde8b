// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The ransomwatch Authors

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with json tags and
// string-friendly durations for the optional config file.
type StructuredJSONConfig struct {
	API struct {
		Token   string   `json:"token"`
		BaseURL string   `json:"base_url"`
		Timeout Duration `json:"timeout"`
	} `json:"api,omitempty"`

	Rate struct {
		PerMinute   int      `json:"per_minute"`
		PerSecond   int      `json:"per_second"`
		MinInterval Duration `json:"min_interval"`
	} `json:"rate,omitempty"`

	Output struct {
		JSON    bool `json:"json"`
		Verbose bool `json:"verbose"`
	} `json:"output,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		API: API{
			Token:   jsonCfg.API.Token,
			BaseURL: jsonCfg.API.BaseURL,
			Timeout: time.Duration(jsonCfg.API.Timeout),
		},
		Rate: Rate{
			PerMinute:   jsonCfg.Rate.PerMinute,
			PerSecond:   jsonCfg.Rate.PerSecond,
			MinInterval: time.Duration(jsonCfg.Rate.MinInterval),
		},
		Output: Output{
			JSON:    jsonCfg.Output.JSON,
			Verbose: jsonCfg.Output.Verbose,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "10s", "500ms" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
