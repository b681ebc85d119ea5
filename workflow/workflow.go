// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package workflow

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"

	"github.com/ChainSafe/wallet-mover/inventory"
	"github.com/ChainSafe/wallet-mover/metrics"
	"github.com/ChainSafe/wallet-mover/selection"
	"github.com/ChainSafe/wallet-mover/store"
)

type NotificationKind string

const (
	NotificationInfo    NotificationKind = "info"
	NotificationWarning NotificationKind = "warning"
	NotificationError   NotificationKind = "error"
)

type Notifier interface {
	Notify(kind NotificationKind, title string, message string)
}

// ChainSwitcher requests the wallet to switch its active chain. The request
// is fire-and-forget, a rejection by the wallet surfaces no callback.
type ChainSwitcher interface {
	RequestChainSwitch(chainID string)
}

type BundleStore interface {
	StoreBundle(record store.BackupRecord) error
	FindBackupBundle(account common.Address) (store.BackupRecord, error)
	ClearBundle(account common.Address) error
}

type InventoryFetcher interface {
	FetchAll(ctx context.Context, account common.Address, chainID string) ([]inventory.Asset, int, error)
}

// WalletContext is a read-only snapshot of the connected wallet, threaded
// into the machine instead of being read from ambient state.
type WalletContext struct {
	Account          common.Address
	ChainID          string
	IsAuthenticated  bool
	IsSupportedChain bool
}

func (c WalletContext) ready() bool {
	return c.IsAuthenticated && c.Account != (common.Address{}) && c.ChainID != ""
}

// Policy carries behavior left open by the source flow. AdminBypassesGates
// keeps the admin pane reachable while the wallet is unauthenticated or the
// chain unsupported.
type Policy struct {
	AdminBypassesGates bool
}

type StepHandler func(ctx context.Context, m *Machine) error

// Machine sequences the transfer workflow. It owns the current step, gates
// rendering on wallet validity and routes completion events from the
// selection, bundle and transfer stages.
type Machine struct {
	step    Step
	wallet  WalletContext
	policy  Policy
	isAdmin bool

	gate     *AdminGate
	fetcher  InventoryFetcher
	bundles  BundleStore
	switcher ChainSwitcher
	notifier Notifier
	metrics  *metrics.MoverMetrics

	tokens selection.Set
	nfts   selection.Set
	staged *store.BackupRecord

	recoveryNotified bool
	handlers         map[Step]StepHandler
}

func NewMachine(
	gate *AdminGate,
	fetcher InventoryFetcher,
	bundles BundleStore,
	switcher ChainSwitcher,
	notifier Notifier,
	policy Policy,
	metrics *metrics.MoverMetrics,
) *Machine {
	return &Machine{
		step:     StepStart,
		policy:   policy,
		gate:     gate,
		fetcher:  fetcher,
		bundles:  bundles,
		switcher: switcher,
		notifier: notifier,
		metrics:  metrics,
		handlers: make(map[Step]StepHandler),
	}
}

func (m *Machine) Step() Step {
	return m.step
}

func (m *Machine) IsAdmin() bool {
	return m.isAdmin
}

// Actionable reports whether the current step may be rendered or acted on.
// The admin step can bypass the authentication and chain-support gates when
// the policy allows it.
func (m *Machine) Actionable() bool {
	if m.step == StepAdmin && m.policy.AdminBypassesGates {
		return true
	}
	return m.wallet.IsAuthenticated && m.wallet.IsSupportedChain
}

// RegisterStepHandler binds a handler to a workflow step. Dispatch invokes
// the handler registered for the current step.
func (m *Machine) RegisterStepHandler(step Step, handler StepHandler) {
	m.handlers[step] = handler
}

func (m *Machine) Dispatch(ctx context.Context) error {
	if !m.Actionable() {
		log.Debug().Str("step", string(m.step)).Msg("Workflow not actionable, skipping dispatch")
		return nil
	}

	handler, ok := m.handlers[m.step]
	if !ok {
		return nil
	}
	return handler(ctx, m)
}

// HandleEvent consumes one workflow event and applies the matching
// transition. Events that have no edge from the current step are ignored.
func (m *Machine) HandleEvent(e Event) {
	switch e.Type {
	case AdminPaneOpened:
		if !m.Actionable() && !m.policy.AdminBypassesGates {
			return
		}
		if !m.isAdmin {
			log.Debug().Str("account", m.wallet.Account.Hex()).Msg("Ignoring admin pane request from non-admin account")
			return
		}
		m.setStep(StepAdmin)
		return
	case AdminPaneClosed:
		m.setStep(StepStart)
		return
	case ResetRequested:
		m.Reset()
		return
	}

	if !m.Actionable() {
		log.Debug().Str("step", string(m.step)).Str("event", string(e.Type)).Msg("Workflow not actionable, ignoring event")
		return
	}

	if targets, ok := labelTargets[m.step]; ok && e.Type == SelectionFinished {
		if _, ok := targets[e.NextStep]; !ok {
			log.Debug().Str("step", string(m.step)).Str("next", string(e.NextStep)).Msg("Ignoring completion event with unknown target step")
			return
		}
		m.advance(e.NextStep)
		return
	}

	next, ok := transitions[transitionKey{m.step, e.Type}]
	if !ok {
		log.Debug().Str("step", string(m.step)).Str("event", string(e.Type)).Msg("No transition for event, ignoring")
		return
	}
	m.advance(next)
}

// WalletChanged consumes a new wallet snapshot. A chain change force-resets
// the workflow to start since staged selections are bound to the previous
// chain's contracts. Admin status is recomputed on every account or chain
// change and the backup check runs whenever the wallet is fully ready.
func (m *Machine) WalletChanged(ctx context.Context, next WalletContext) {
	prev := m.wallet
	m.wallet = next

	if next.ChainID != prev.ChainID {
		m.tokens = selection.Set{}
		m.nfts = selection.Set{}
		m.setStep(StepStart)
	} else if next.Account != prev.Account {
		m.setStep(StepStart)
	}

	if next.ChainID != prev.ChainID || next.Account != prev.Account {
		m.isAdmin = false
		if next.Account != (common.Address{}) && next.ChainID != "" {
			m.isAdmin = m.gate.Resolve(ctx, next.Account, next.ChainID)
		}
	}

	if next.ready() {
		m.checkBackup()
	}
}

// StageTokens records the confirmed fungible token selection.
func (m *Machine) StageTokens(tokens selection.Set) {
	m.tokens = tokens
}

// StageNFTs records the confirmed NFT selection.
func (m *Machine) StageNFTs(nfts selection.Set) {
	m.nfts = nfts
}

func (m *Machine) StagedTokens() selection.Set {
	return m.tokens
}

func (m *Machine) StagedNFTs() selection.Set {
	return m.nfts
}

// StagedBundle returns the bundle staged for transfer, either built from the
// confirmed selections or recovered from a backup record.
func (m *Machine) StagedBundle() (store.BackupRecord, bool) {
	if m.staged == nil {
		return store.BackupRecord{}, false
	}
	return *m.staged, true
}

// LoadInventory fetches the NFT inventory for the active wallet and raises
// the user-facing cap and empty-inventory notices.
func (m *Machine) LoadInventory(ctx context.Context) ([]inventory.Asset, error) {
	items, total, err := m.fetcher.FetchAll(ctx, m.wallet.Account, m.wallet.ChainID)
	if err != nil {
		log.Error().Err(err).Str("account", m.wallet.Account.Hex()).Msg("Unable to fetch NFT inventory")
		return nil, err
	}

	if total > len(items) {
		m.notifier.Notify(
			NotificationWarning,
			"Inventory truncated",
			fmt.Sprintf("Sorry, we can only move the %d NFTs shown here, you will have to carry out another transfer", inventory.MaxAssets),
		)
	}
	if total == 0 {
		m.notifier.Notify(NotificationInfo, "No NFTs", "No NFTs found on this account")
	}
	if m.metrics != nil {
		m.metrics.TrackInventoryFetch(len(items), total)
	}
	return items, nil
}

// Reset clears both staged selections and the staged bundle and returns the
// workflow to start unconditionally. The persisted backup record is
// invalidated as well so an abandoned bundle is not resumed later.
func (m *Machine) Reset() {
	m.tokens = selection.Set{}
	m.nfts = selection.Set{}
	m.staged = nil
	m.recoveryNotified = false
	if m.wallet.Account != (common.Address{}) {
		if err := m.bundles.ClearBundle(m.wallet.Account); err != nil {
			log.Warn().Err(err).Str("account", m.wallet.Account.Hex()).Msg("Unable to clear persisted bundle on reset")
		}
	}
	m.setStep(StepStart)
}

func (m *Machine) advance(next Step) {
	if m.step == StepBundle && next == StepTransfer {
		if err := m.stageBundle(); err != nil {
			log.Error().Err(err).Msg("Unable to back up staged bundle")
			m.notifier.Notify(NotificationError, "Backup failed", "Unable to back up your bundle before transfer")
			return
		}
	}
	if m.step == StepTransfer && next == StepDone {
		m.finishTransfer()
	}
	m.setStep(next)
}

// stageBundle persists the confirmed selections as a backup record before
// the transfer step executes, so an interrupted session can be resumed.
func (m *Machine) stageBundle() error {
	record := store.BackupRecord{
		Account:  m.wallet.Account,
		ChainID:  m.wallet.ChainID,
		Tokens:   m.tokens.Items(),
		NFTs:     m.nfts.Items(),
		IsBackup: true,
	}
	if err := m.bundles.StoreBundle(record); err != nil {
		return err
	}
	m.staged = &record
	return nil
}

func (m *Machine) finishTransfer() {
	m.staged = nil
	if err := m.bundles.ClearBundle(m.wallet.Account); err != nil {
		log.Warn().Err(err).Str("account", m.wallet.Account.Hex()).Msg("Unable to clear persisted bundle after transfer")
	}
}

func (m *Machine) checkBackup() {
	record, err := m.bundles.FindBackupBundle(m.wallet.Account)
	if err != nil {
		log.Warn().Err(err).Str("account", m.wallet.Account.Hex()).Msg("Unable to check for a backed up bundle")
		return
	}
	if !record.IsBackup {
		return
	}

	m.staged = &record
	m.setStep(StepTransfer)
	if !m.recoveryNotified {
		m.notifier.Notify(NotificationInfo, "Bundle Recovered", "We found an unsent bundle from your previous session")
		m.recoveryNotified = true
	}
	m.switcher.RequestChainSwitch(record.ChainID)
}

func (m *Machine) setStep(next Step) {
	prev := m.step
	m.step = next
	if m.metrics != nil && prev != next {
		m.metrics.TrackStepTransition(string(prev), string(next))
	}
	log.Debug().Str("from", string(prev)).Str("to", string(next)).Msg("Workflow step changed")
}
