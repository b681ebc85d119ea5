// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/wallet-mover/workflow"
)

// logNotifier surfaces workflow notifications on the process log. A UI
// frontend replaces this with its own toast implementation.
type logNotifier struct{}

func (n *logNotifier) Notify(kind workflow.NotificationKind, title string, message string) {
	switch kind {
	case workflow.NotificationError:
		log.Error().Str("title", title).Msg(message)
	case workflow.NotificationWarning:
		log.Warn().Str("title", title).Msg(message)
	default:
		log.Info().Str("title", title).Msg(message)
	}
}

// logChainSwitcher records chain switch requests. The actual switch is
// performed by the wallet provider hosting the workflow.
type logChainSwitcher struct{}

func (s *logChainSwitcher) RequestChainSwitch(chainID string) {
	log.Info().Str("chainID", chainID).Msg("Requesting wallet chain switch")
}
