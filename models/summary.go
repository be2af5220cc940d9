// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// WeeklyStatus is the coarse classification of a client's logging effort.
type WeeklyStatus string

const (
	StatusGood         WeeklyStatus = "Bien"
	StatusRegular      WeeklyStatus = "Regular"
	StatusInsufficient WeeklyStatus = "Insuficiente"
)

// SlotsPerWeek is the number of (day, meal type) slots in a week.
const SlotsPerWeek = 7 * 5

// ClassifyWeek maps the number of meals logged in the trailing week to a
// [WeeklyStatus]: more than 15 is good, more than 7 is regular.
func ClassifyWeek(mealCount int) WeeklyStatus {
	switch {
	case mealCount > 15:
		return StatusGood
	case mealCount > 7:
		return StatusRegular
	default:
		return StatusInsufficient
	}
}

// ProgressPercent is the share of weekly slots filled, rounded down and
// capped at 100.
func ProgressPercent(filledSlots int) int {
	if filledSlots <= 0 {
		return 0
	}
	if filledSlots >= SlotsPerWeek {
		return 100
	}
	return filledSlots * 100 / SlotsPerWeek
}

// ClientStats is the raw per-client aggregate produced by the store.
type ClientStats struct {
	Client          User
	WeeklyMeals     int
	FilledSlots     int
	PendingComments int
}

// ClientSummary is one row of the nutritionist dashboard.
type ClientSummary struct {
	Client          ClientInfo   `json:"client"`
	LastMeal        *Meal        `json:"last_meal"`
	PendingComments int          `json:"pending_comments"`
	WeeklyMeals     int          `json:"weekly_meals"`
	WeeklyStatus    WeeklyStatus `json:"weekly_status"`
	Progress        int          `json:"progress"`
}

// ClientInfo is the public part of a client shown on the dashboard.
type ClientInfo struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}
