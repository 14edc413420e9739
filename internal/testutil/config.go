// Package testutil provides common test utilities for the rpgvault project.
package testutil

import (
	"testing"

	"github.com/spf13/viper"

	"github.com/quickwick/rpgvault/internal/config"
)

// ResetConfig resets viper, applies the option defaults, and schedules a
// final reset when the test completes.
func ResetConfig(t *testing.T) {
	t.Helper()

	viper.Reset()
	config.SetDefaults()

	t.Cleanup(viper.Reset)
}

// SetOptions resets viper and applies the given option flags on top of the
// defaults, restoring the previous state when the test completes.
func SetOptions(t *testing.T, flags map[string]bool) {
	t.Helper()

	ResetConfig(t)
	for key, value := range flags {
		viper.Set(key, value)
	}
}
