// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"github.com/mitchellh/copystructure"
)

// PerformanceRecord is the per-player input the rating engine consumes after
// a match completes. All counts must be non-negative; ValidateMatch rejects
// records that break the invariant.
type PerformanceRecord struct {
	UserID        string `json:"user_id"`
	Side          Side   `json:"side"`
	MMR           int    `json:"mmr"`
	MatchesPlayed int    `json:"matches_played"`
	PlacementDone bool   `json:"placement_done"`
	Kills         int    `json:"kills"`
	Deaths        int    `json:"deaths"`
	Assists       int    `json:"assists"`
	Headshots     int    `json:"headshots"`
	Won           bool   `json:"won"`
	Abandoned     bool   `json:"abandoned"`
}

// Copy returns a deep copy of the record.
func (pr PerformanceRecord) Copy() PerformanceRecord {
	copied, err := copystructure.Copy(pr)
	if err != nil {
		return PerformanceRecord{}
	}
	record, ok := copied.(PerformanceRecord)
	if !ok {
		return PerformanceRecord{}
	}
	return record
}

// RatingBreakdown itemizes every additive term that produced a delta, kept
// for auditability. WinStreak is reserved and always zero; no cross-match
// history reaches this engine.
type RatingBreakdown struct {
	Base           float64 `json:"base"`
	Performance    float64 `json:"performance"`
	Disadvantage   float64 `json:"disadvantage"`
	AbandonPenalty float64 `json:"abandon_penalty"`
	PlacementSeed  float64 `json:"placement_seed"`
	WinStreak      float64 `json:"win_streak"`
}

// RatingDelta is the signed skill-score change computed for one player.
type RatingDelta struct {
	UserID    string          `json:"user_id"`
	OldMMR    int             `json:"old_mmr"`
	NewMMR    int             `json:"new_mmr"`
	Change    int             `json:"change"`
	Breakdown RatingBreakdown `json:"breakdown"`
}
