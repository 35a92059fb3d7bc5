package model

import "time"

// UserAnalytics aggregates a user's transcription activity
type UserAnalytics struct {
	Total          int          `json:"total"`
	Completed      int          `json:"completed"`
	Processing     int          `json:"processing"`
	Failed         int          `json:"failed"`
	TotalMinutes   float64      `json:"total_minutes"`
	CreditsUsed30d int          `json:"credits_used_30d"`
	AverageQuality *float64     `json:"average_quality,omitempty"`
	Daily          []DailyCount `json:"daily"`
}

// DailyCount is the number of jobs started on a day
type DailyCount struct {
	Day   time.Time `json:"day"`
	Count int       `json:"count"`
}
