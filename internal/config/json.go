package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/helios-keeper/models"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON field names and
// string durations ("30s", "5m").
type StructuredJSONConfig struct {
	App struct {
		Name     string `json:"name"`
		Version  string `json:"version"`
		DataDir  string `json:"data_dir"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Helios struct {
		ExecutionRPC   string          `json:"execution_rpc"`
		ConsensusRPC   string          `json:"consensus_rpc"`
		SyncTimeout    models.Duration `json:"sync_timeout"`
		PollInterval   models.Duration `json:"poll_interval"`
		RequestTimeout models.Duration `json:"request_timeout"`
		ReplacePolicy  string          `json:"replace_policy"`
	} `json:"helios,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress     string          `json:"http_address"`
		RequestTimeout  models.Duration `json:"request_timeout"`
		ShutdownTimeout models.Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Workers struct {
		RuntimeSize int `json:"runtime_size"`
	} `json:"workers,omitempty"`
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
		App: App{
			Name:     jsonCfg.App.Name,
			Version:  jsonCfg.App.Version,
			DataDir:  jsonCfg.App.DataDir,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Helios: Helios{
			DefaultExecutionRPC: jsonCfg.Helios.ExecutionRPC,
			DefaultConsensusRPC: jsonCfg.Helios.ConsensusRPC,
			SyncTimeout:         jsonCfg.Helios.SyncTimeout.Std(),
			PollInterval:        jsonCfg.Helios.PollInterval.Std(),
			RequestTimeout:      jsonCfg.Helios.RequestTimeout.Std(),
			ReplacePolicy:       ReplacePolicy(jsonCfg.Helios.ReplacePolicy),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:     jsonCfg.Server.HTTPAddress,
			RequestTimeout:  jsonCfg.Server.RequestTimeout.Std(),
			ShutdownTimeout: jsonCfg.Server.ShutdownTimeout.Std(),
		},
		Workers: Workers{
			RuntimeSize: jsonCfg.Workers.RuntimeSize,
		},
	}

	return cfg, nil
}
