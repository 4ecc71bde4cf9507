// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import "github.com/luxfi/minter/pkg/constants"

// SaleWindow is a half-open interval [BeginTime, EndTime) in Unix seconds.
type SaleWindow struct {
	BeginTime uint64 `json:"beginTime"`
	EndTime   uint64 `json:"endTime"`
}

func NewSaleWindow(beginTime, durationMinutes uint64) SaleWindow {
	return SaleWindow{
		BeginTime: beginTime,
		EndTime:   beginTime + durationMinutes*constants.SecondsPerMinute,
	}
}

// Configured is false until the owner has opened the window at least once.
func (w SaleWindow) Configured() bool {
	return w.BeginTime != 0
}

func (w SaleWindow) Active(now uint64) bool {
	return w.Configured() && w.BeginTime <= now && now < w.EndTime
}

// Elapsed returns the seconds since BeginTime, or zero before it.
func (w SaleWindow) Elapsed(now uint64) uint64 {
	if now < w.BeginTime {
		return 0
	}
	return now - w.BeginTime
}
