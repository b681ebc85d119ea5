// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName     = "config"
	StoreFlagName      = "store"
	FreshStartFlagName = "fresh"
)

// BindFlags binds application flags to the command and registers them with viper.
// The config flag accepts either a path to a JSON configuration file or the
// literal value "env" to load configuration from environment variables.
func BindFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(ConfigFlagName, "config.json", "path to configuration file or 'env'")
	_ = viper.BindPFlag(ConfigFlagName, cmd.PersistentFlags().Lookup(ConfigFlagName))

	cmd.PersistentFlags().String(StoreFlagName, "", "path to the bundle store, overrides configuration when set")
	_ = viper.BindPFlag(StoreFlagName, cmd.PersistentFlags().Lookup(StoreFlagName))

	cmd.PersistentFlags().Bool(FreshStartFlagName, false, "delete persisted bundles on startup")
	_ = viper.BindPFlag(FreshStartFlagName, cmd.PersistentFlags().Lookup(FreshStartFlagName))
}
