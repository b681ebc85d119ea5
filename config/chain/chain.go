// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/mitchellh/mapstructure"
)

// EVMConfig describes one supported chain: where its RPC endpoint lives and
// which mover contract handles transfers on it. A chain id absent from the
// configuration is an unsupported chain.
type EVMConfig struct {
	ChainID      string
	Name         string
	Endpoint     string
	MoverAddress string
}

type RawEVMConfig struct {
	ChainID      string `mapstructure:"chainId"`
	Name         string `mapstructure:"name"`
	Type         string `mapstructure:"type" default:"evm"`
	Endpoint     string `mapstructure:"endpoint"`
	MoverAddress string `mapstructure:"mover"`
}

func (c *RawEVMConfig) Validate() error {
	if c.Type != "evm" {
		return fmt.Errorf("chain type %q not recognized", c.Type)
	}
	if c.ChainID == "" {
		return fmt.Errorf("required field chain.ChainID empty for chain %v", c.Name)
	}
	if c.Endpoint == "" {
		return fmt.Errorf("required field chain.Endpoint empty for chain %v", c.ChainID)
	}
	if c.MoverAddress == "" {
		return fmt.Errorf("required field chain.Mover empty for chain %v", c.ChainID)
	}
	return nil
}

func NewEVMConfig(chainConfig map[string]interface{}) (*EVMConfig, error) {
	var c RawEVMConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	return &EVMConfig{
		ChainID:      c.ChainID,
		Name:         c.Name,
		Endpoint:     c.Endpoint,
		MoverAddress: c.MoverAddress,
	}, nil
}
