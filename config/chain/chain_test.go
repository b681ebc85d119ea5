// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chain_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ChainSafe/wallet-mover/config/chain"
)

type NewEVMConfigTestSuite struct {
	suite.Suite
}

func TestRunNewEVMConfigTestSuite(t *testing.T) {
	suite.Run(t, new(NewEVMConfigTestSuite))
}

func (s *NewEVMConfigTestSuite) Test_FailedDecode() {
	_, err := chain.NewEVMConfig(map[string]interface{}{
		"chainId": map[string]interface{}{},
	})

	s.NotNil(err)
}

func (s *NewEVMConfigTestSuite) Test_MissingChainID() {
	_, err := chain.NewEVMConfig(map[string]interface{}{
		"name":     "mainnet",
		"endpoint": "ws://domain.com",
		"mover":    "0xd606A00c1A39dA53EA7Bb3Ab570BBE40b156EB66",
	})

	s.NotNil(err)
	s.Equal("required field chain.ChainID empty for chain mainnet", err.Error())
}

func (s *NewEVMConfigTestSuite) Test_MissingEndpoint() {
	_, err := chain.NewEVMConfig(map[string]interface{}{
		"chainId": "0x1",
		"name":    "mainnet",
		"mover":   "0xd606A00c1A39dA53EA7Bb3Ab570BBE40b156EB66",
	})

	s.NotNil(err)
	s.Equal("required field chain.Endpoint empty for chain 0x1", err.Error())
}

func (s *NewEVMConfigTestSuite) Test_MissingMoverAddress() {
	_, err := chain.NewEVMConfig(map[string]interface{}{
		"chainId":  "0x1",
		"name":     "mainnet",
		"endpoint": "ws://domain.com",
	})

	s.NotNil(err)
	s.Equal("required field chain.Mover empty for chain 0x1", err.Error())
}

func (s *NewEVMConfigTestSuite) Test_UnrecognizedType() {
	_, err := chain.NewEVMConfig(map[string]interface{}{
		"chainId":  "0x1",
		"name":     "mainnet",
		"type":     "substrate",
		"endpoint": "ws://domain.com",
		"mover":    "0xd606A00c1A39dA53EA7Bb3Ab570BBE40b156EB66",
	})

	s.NotNil(err)
	s.Equal(`chain type "substrate" not recognized`, err.Error())
}

func (s *NewEVMConfigTestSuite) Test_ValidConfig() {
	actualConfig, err := chain.NewEVMConfig(map[string]interface{}{
		"chainId":  "0x1",
		"name":     "mainnet",
		"endpoint": "ws://domain.com",
		"mover":    "0xd606A00c1A39dA53EA7Bb3Ab570BBE40b156EB66",
	})

	s.Nil(err)
	s.Equal(chain.EVMConfig{
		ChainID:      "0x1",
		Name:         "mainnet",
		Endpoint:     "ws://domain.com",
		MoverAddress: "0xd606A00c1A39dA53EA7Bb3Ab570BBE40b156EB66",
	}, *actualConfig)
}
