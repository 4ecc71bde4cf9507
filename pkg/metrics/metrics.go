// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package metrics exposes Prometheus collectors for a running sale.
package metrics

import (
	"math/big"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "minter"

// Sale groups the collectors of one sale. A nil *Sale is valid and records nothing.
type Sale struct {
	unitsMinted  *prometheus.CounterVec
	rejections   *prometheus.CounterVec
	totalSupply  prometheus.Gauge
	balanceWei   prometheus.Gauge
	withdrawals  prometheus.Counter
	currentPhase *prometheus.GaugeVec
}

// New registers the sale collectors with reg.
func New(reg prometheus.Registerer) *Sale {
	factory := promauto.With(reg)
	return &Sale{
		unitsMinted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "units_minted_total",
				Help:      "units minted, by sale phase",
			},
			[]string{"phase"},
		),
		rejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rejected_operations_total",
				Help:      "operations rejected, by operation and error kind",
			},
			[]string{"operation", "reason"},
		),
		totalSupply: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "total_supply",
				Help:      "units minted so far",
			},
		),
		balanceWei: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "balance_wei",
				Help:      "collected proceeds awaiting withdrawal",
			},
		),
		withdrawals: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "withdrawals_total",
				Help:      "successful treasury withdrawals",
			},
		),
		currentPhase: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "phase",
				Help:      "1 for the current coarse sale phase",
			},
			[]string{"phase"},
		),
	}
}

func (m *Sale) Minted(phase string, quantity uint64) {
	if m == nil {
		return
	}
	m.unitsMinted.WithLabelValues(phase).Add(float64(quantity))
}

func (m *Sale) Rejected(operation, reason string) {
	if m == nil {
		return
	}
	m.rejections.WithLabelValues(operation, reason).Inc()
}

func (m *Sale) SetSupply(total uint64) {
	if m == nil {
		return
	}
	m.totalSupply.Set(float64(total))
}

// SetBalance records wei as a float; precision loss above 2^53 is accepted.
func (m *Sale) SetBalance(wei *big.Int) {
	if m == nil || wei == nil {
		return
	}
	f, _ := new(big.Float).SetInt(wei).Float64()
	m.balanceWei.Set(f)
}

func (m *Sale) Withdrawn() {
	if m == nil {
		return
	}
	m.withdrawals.Inc()
}

// SetPhase marks current as the only active phase among all.
func (m *Sale) SetPhase(current string, all ...string) {
	if m == nil {
		return
	}
	for _, p := range all {
		v := 0.0
		if p == current {
			v = 1
		}
		m.currentPhase.WithLabelValues(p).Set(v)
	}
}
