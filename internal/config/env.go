package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// applyEnv overrides fields tagged with env from the environment. Unset
// variables leave the loaded value alone.
func applyEnv(cfg *BlocksConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: environment: %w", err)
	}
	return nil
}
