// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package workflow

// Step is the single process-wide workflow position. Exactly one step is
// current at any time.
type Step string

const (
	StepStart    Step = "start"
	StepTokens   Step = "tokens"
	StepNFTs     Step = "nfts"
	StepBundle   Step = "bundle"
	StepTransfer Step = "transfer"
	StepDone     Step = "done"
	StepAdmin    Step = "admin"
)

type EventType string

const (
	// StartClicked begins a new transfer session from the start step.
	StartClicked EventType = "startClicked"
	// SelectionFinished completes the current step. NextStep carries the
	// optional label-driven override on the nfts and bundle steps.
	SelectionFinished EventType = "selectionFinished"
	// ResetRequested abandons the session and returns to start.
	ResetRequested EventType = "resetRequested"
	AdminPaneOpened EventType = "adminPaneOpened"
	AdminPaneClosed EventType = "adminPaneClosed"
)

type Event struct {
	Type     EventType
	NextStep Step
}

type transitionKey struct {
	step  Step
	event EventType
}

// transitions holds the fixed edges of the step graph. Label-driven edges
// and reset/admin edges are resolved separately.
var transitions = map[transitionKey]Step{
	{StepStart, StartClicked}:         StepTokens,
	{StepTokens, SelectionFinished}:   StepNFTs,
	{StepTransfer, SelectionFinished}: StepDone,
}

// labelTargets lists the steps a label-driven completion event is allowed
// to route to from a given step.
var labelTargets = map[Step]map[Step]struct{}{
	StepNFTs:   {StepTokens: {}, StepBundle: {}},
	StepBundle: {StepNFTs: {}, StepTransfer: {}},
}
