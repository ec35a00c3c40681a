// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAppConfigs)
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Helios.SyncTimeout <= 0 || cfg.Helios.PollInterval <= 0 || cfg.Helios.RequestTimeout <= 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidHeliosConfigs)
	}
	switch cfg.Helios.ReplacePolicy {
	case PolicyReplace, PolicyReject:
	default:
		return fmt.Errorf("%w: unknown replace policy %q", ErrInvalidHeliosConfigs, cfg.Helios.ReplacePolicy)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.RuntimeSize < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
