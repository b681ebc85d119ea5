// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	api "go.opentelemetry.io/otel/metric"
)

type MoverMetrics struct {
	meter api.Meter
	opts  api.MeasurementOption

	StepTransitions  api.Int64Counter
	PagesFetched     api.Int64Counter
	AssetsFetched    api.Int64Counter
	TruncatedFetches api.Int64Counter
}

// NewMoverMetrics creates an instance of metrics
func NewMoverMetrics(meter api.Meter, env string) (*MoverMetrics, error) {
	stepTransitions, err := meter.Int64Counter(
		"mover.StepTransitions",
		api.WithDescription("Number of workflow step transitions"),
	)
	if err != nil {
		return nil, err
	}
	pagesFetched, err := meter.Int64Counter(
		"mover.PagesFetched",
		api.WithDescription("Number of inventory pages fetched"),
	)
	if err != nil {
		return nil, err
	}
	assetsFetched, err := meter.Int64Counter(
		"mover.AssetsFetched",
		api.WithDescription("Number of assets fetched into the selection universe"),
	)
	if err != nil {
		return nil, err
	}

	truncatedFetches, err := meter.Int64Counter(
		"mover.TruncatedFetches",
		api.WithDescription("Number of inventory fetches truncated at the asset cap"),
	)
	if err != nil {
		return nil, err
	}

	return &MoverMetrics{
		meter:            meter,
		opts:             api.WithAttributes(attribute.String("env", env)),
		StepTransitions:  stepTransitions,
		PagesFetched:     pagesFetched,
		AssetsFetched:    assetsFetched,
		TruncatedFetches: truncatedFetches,
	}, nil
}

func (m *MoverMetrics) TrackStepTransition(from, to string) {
	m.StepTransitions.Add(context.Background(), 1, m.opts, api.WithAttributes(
		attribute.String("from", from),
		attribute.String("to", to),
	))
}

func (m *MoverMetrics) TrackInventoryFetch(fetched, total int) {
	pages := (fetched + 99) / 100
	m.PagesFetched.Add(context.Background(), int64(pages), m.opts)
	m.AssetsFetched.Add(context.Background(), int64(fetched), m.opts)
	if total > fetched {
		m.TruncatedFetches.Add(context.Background(), 1, m.opts)
	}
}
