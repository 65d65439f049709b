// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	switch cfg.Storage.DB.Driver {
	case "", "pgx", "sqlite3":
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.PollInterval < 0 || cfg.Workers.BatchSize < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
