package entity

import "github.com/google/uuid"

// LeaderboardEntry ranks a customer or dealer by points.
type LeaderboardEntry struct {
	ID     uuid.UUID `json:"id"`
	Code   string    `json:"code,omitempty"` // Dealer code; empty for customers.
	Name   string    `json:"name"`
	Phone  string    `json:"phone,omitempty"`
	Points int64     `json:"points"`
}

// DailyCount is the number of activations on one calendar day (YYYY-MM-DD).
type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// ActivationReport is the admin dashboard rollup.
type ActivationReport struct {
	TotalToday       int64              `json:"totalToday"`
	TotalWeek        int64              `json:"totalWeek"`
	TotalMonth       int64              `json:"totalMonth"`
	TopDealers       []LeaderboardEntry `json:"topDealers"`
	TopCustomers     []LeaderboardEntry `json:"topCustomers"`
	DailyActivations []DailyCount       `json:"dailyActivations"`
}

// DealerReport is a dealer's view of its own performance.
type DealerReport struct {
	Total           int64 `json:"total"`
	Today           int64 `json:"today"`
	Week            int64 `json:"week"`
	Month           int64 `json:"month"`
	UniqueCustomers int64 `json:"uniqueCustomers"`
	TotalPoints     int64 `json:"totalPoints"`
}
