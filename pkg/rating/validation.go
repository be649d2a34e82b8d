// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package rating

import (
	"github.com/AccelByte/extend-ranked-engine/pkg/models"
)

// minSidePlayers is the smallest side size the engine accepts; below it the
// match data is considered corrupt rather than merely shorthanded.
const minSidePlayers = 3

// maxSideSizeGap is the largest tolerated size difference between sides.
const maxSideSizeGap = 2

// ValidateMatch rejects match data the engine must not compute deltas from.
// It is the fail-fast precondition gate: a violation is a caller error, and
// nothing is computed past it.
func ValidateMatch(records []models.PerformanceRecord, winningSide models.Side) error {
	sideCount := map[models.Side]int{}
	for _, record := range records {
		if record.Side != models.SideA && record.Side != models.SideB {
			return models.ValidationErrorUnknownSide
		}
		if record.Kills < 0 || record.Deaths < 0 || record.Assists < 0 || record.Headshots < 0 || record.MatchesPlayed < 0 {
			return models.ValidationErrorNegativeStatCount
		}
		if record.Won != (record.Side == winningSide) {
			return models.ValidationErrorWinFlagMismatch
		}
		sideCount[record.Side]++
	}

	for _, side := range models.Sides {
		if sideCount[side] < minSidePlayers {
			return models.ValidationErrorTeamTooSmall
		}
	}
	gap := sideCount[models.SideA] - sideCount[models.SideB]
	if gap < 0 {
		gap = -gap
	}
	if gap > maxSideSizeGap {
		return models.ValidationErrorTeamSizeGap
	}
	return nil
}
