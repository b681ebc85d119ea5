// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package mover_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	mock_contracts "github.com/ChainSafe/wallet-mover/chains/evm/calls/contracts/mock"
	"github.com/ChainSafe/wallet-mover/chains/evm/calls/contracts/mover"
)

type MoverContractTestSuite struct {
	suite.Suite
	moverContract *mover.MoverContract
	mockCaller    *mock_contracts.MockContractCaller
}

func TestRunMoverContractTestSuite(t *testing.T) {
	suite.Run(t, new(MoverContractTestSuite))
}

func (s *MoverContractTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.mockCaller = mock_contracts.NewMockContractCaller(ctrl)
	s.moverContract = mover.NewMoverContract(
		s.mockCaller,
		common.HexToAddress("0xd606A00c1A39dA53EA7Bb3Ab570BBE40b156EB66"),
	)
}

func (s *MoverContractTestSuite) Test_Owner_SuccessfulCall() {
	owner := common.HexToAddress("0xff93B45308FD417dF303D6515aB04D9e89a750Ca")
	s.mockCaller.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).Return(
		common.LeftPadBytes(owner.Bytes(), 32), nil,
	)

	resolved, err := s.moverContract.Owner(context.Background())

	s.Nil(err)
	s.Equal(owner, resolved)
}

func (s *MoverContractTestSuite) Test_Owner_FailedCall() {
	s.mockCaller.EXPECT().CallContract(gomock.Any(), gomock.Any(), gomock.Nil()).Return(nil, errors.New("error"))

	_, err := s.moverContract.Owner(context.Background())

	s.NotNil(err)
}
