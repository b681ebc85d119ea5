// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/spf13/viper"

	"github.com/ChainSafe/wallet-mover/config/mover"
)

type Config struct {
	MoverConfig  mover.MoverConfig
	ChainConfigs []map[string]interface{}
}

type RawConfig struct {
	MoverConfig  mover.RawMoverConfig     `mapstructure:"mover" json:"mover"`
	ChainConfigs []map[string]interface{} `mapstructure:"chains" json:"chains"`
}

// GetConfigFromENV reads config from Env variables, validates it and parses
// it into config suitable for application
//
// Properties of MoverConfig are expected to be defined as separate Env variables
// where Env variable name reflects properties position in structure. Each Env variable needs to be prefixed with MOV.
//
// For example, if you want to set Config.MoverConfig.InventoryConfig.Url this would
// translate to Env variable named MOV_MOVER_INVENTORYCONFIG_URL.
func GetConfigFromENV(config *Config) (*Config, error) {
	rawConfig, err := loadFromEnv()
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

// GetConfigFromFile reads config from file, validates it and parses
// it into config suitable for application
func GetConfigFromFile(path string, config *Config) (*Config, error) {
	rawConfig := RawConfig{}

	viper.SetConfigFile(path)
	viper.SetConfigType("json")

	err := viper.ReadInConfig()
	if err != nil {
		return config, err
	}

	err = viper.Unmarshal(&rawConfig)
	if err != nil {
		return config, err
	}

	return processRawConfig(rawConfig, config)
}

func processRawConfig(rawConfig RawConfig, config *Config) (*Config, error) {
	if err := defaults.Set(&rawConfig); err != nil {
		return config, err
	}

	moverConfig, err := mover.NewMoverConfig(rawConfig.MoverConfig)
	if err != nil {
		return config, err
	}

	chainConfigs := make([]map[string]interface{}, 0)
	for i, chain := range rawConfig.ChainConfigs {
		if i < len(config.ChainConfigs) {
			err := mergo.Merge(&chain, config.ChainConfigs[i])
			if err != nil {
				return config, err
			}
		}

		if chain["type"] == "" || chain["type"] == nil {
			return config, fmt.Errorf("chain 'type' must be provided for every configured chain")
		}
		chainConfigs = append(chainConfigs, chain)
	}

	config.ChainConfigs = chainConfigs
	config.MoverConfig = moverConfig
	return config, nil
}
