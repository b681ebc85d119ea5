// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package mover

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
)

type MoverConfig struct {
	OpenTelemetryCollectorURL string
	LogLevel                  zerolog.Level
	LogFile                   string
	Env                       string
	HealthPort                uint16
	StorePath                 string
	AdminBypassesGates        bool
	IpfsGateway               string
	InventoryConfig           InventoryConfig
}

type InventoryConfig struct {
	Url string
	Key string
}

type RawMoverConfig struct {
	OpenTelemetryCollectorURL string             `mapstructure:"OpenTelemetryCollectorURL" json:"opentelemetryCollectorURL"`
	LogLevel                  string             `mapstructure:"LogLevel" json:"logLevel" default:"info"`
	LogFile                   string             `mapstructure:"LogFile" json:"logFile" default:"out.log"`
	Env                       string             `mapstructure:"Env" json:"env"`
	HealthPort                string             `mapstructure:"HealthPort" json:"healthPort" default:"9001"`
	StorePath                 string             `mapstructure:"StorePath" json:"storePath" default:"./lvldbdata"`
	AdminBypassesGates        string             `mapstructure:"AdminBypassesGates" json:"adminBypassesGates" default:"false"`
	IpfsGateway               string             `mapstructure:"IpfsGateway" json:"ipfsGateway" default:"https://ipfs.io/ipfs/"`
	InventoryConfig           RawInventoryConfig `mapstructure:"InventoryConfig" json:"inventoryConfig"`
}

type RawInventoryConfig struct {
	Url string `mapstructure:"Url" json:"url"`
	Key string `mapstructure:"Key" json:"key"`
}

func (c *RawMoverConfig) Validate() error {
	if c.InventoryConfig.Url == "" {
		return fmt.Errorf("inventory api url not provided")
	}
	return nil
}

// NewMoverConfig parses RawMoverConfig into MoverConfig
func NewMoverConfig(rawConfig RawMoverConfig) (MoverConfig, error) {
	config := MoverConfig{}
	err := rawConfig.Validate()
	if err != nil {
		return config, err
	}

	logLevel, err := zerolog.ParseLevel(rawConfig.LogLevel)
	if err != nil {
		return config, fmt.Errorf("unknown log level: %s", rawConfig.LogLevel)
	}
	config.LogLevel = logLevel

	healthPort, err := strconv.ParseUint(rawConfig.HealthPort, 10, 16)
	if err != nil {
		return config, fmt.Errorf("unable to parse health port: %w", err)
	}
	config.HealthPort = uint16(healthPort)

	adminBypassesGates, err := strconv.ParseBool(rawConfig.AdminBypassesGates)
	if err != nil {
		return config, fmt.Errorf("unable to parse admin bypass flag: %w", err)
	}
	config.AdminBypassesGates = adminBypassesGates

	config.LogFile = rawConfig.LogFile
	config.Env = rawConfig.Env
	config.StorePath = rawConfig.StorePath
	config.IpfsGateway = rawConfig.IpfsGateway
	config.OpenTelemetryCollectorURL = rawConfig.OpenTelemetryCollectorURL
	config.InventoryConfig = InventoryConfig{
		Url: rawConfig.InventoryConfig.Url,
		Key: rawConfig.InventoryConfig.Key,
	}

	return config, nil
}
