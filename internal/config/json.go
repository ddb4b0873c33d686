// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

type StructuredJSONConfig struct {
	Crypto struct {
		KDFMode    string `json:"kdf_mode"`
		SharedSalt string `json:"shared_salt"`
		Padding    string `json:"padding"`
	} `json:"crypto,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
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
		Crypto: Crypto{
			KDFMode:    jsonCfg.Crypto.KDFMode,
			SharedSalt: jsonCfg.Crypto.SharedSalt,
			Padding:    jsonCfg.Crypto.Padding,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}
