// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"errors"
)

var (
	ValidationErrorNegativeStatCount = errors.New("stat counts cannot be negative")
	ValidationErrorTeamTooSmall      = errors.New("each side needs at least 3 players")
	ValidationErrorTeamSizeGap       = errors.New("side size difference cannot exceed 2")
	ValidationErrorUnknownSide       = errors.New("record side must be side_a or side_b")
	ValidationErrorWinFlagMismatch   = errors.New("record win flag disagrees with the winning side")

	ValidationErrorNegativeKFactor   = errors.New("k-factors cannot be negative")
	ValidationErrorScoreBounds       = errors.New("min score must be lower than max score")
	ValidationErrorNonPositiveCap    = errors.New("max change per match must be positive")
	ValidationErrorWeightSum         = errors.New("performance weights must sum to 1")
	ValidationErrorPlacementMatches  = errors.New("placement matches must be positive")
	ValidationErrorExperienceLadder  = errors.New("experience tier thresholds must be ascending")
	ValidationErrorPositiveAbandon   = errors.New("abandon penalty must be negative")
	ValidationErrorNegativeThreshold = errors.New("placement jump threshold cannot be negative")
)

var validationErrorCodeMap = map[error]int{
	ValidationErrorNegativeStatCount: 520101,
	ValidationErrorTeamTooSmall:      520102,
	ValidationErrorTeamSizeGap:       520103,
	ValidationErrorUnknownSide:       520104,
	ValidationErrorWinFlagMismatch:   520105,
	ValidationErrorNegativeKFactor:   520111,
	ValidationErrorScoreBounds:       520112,
	ValidationErrorNonPositiveCap:    520113,
	ValidationErrorWeightSum:         520114,
	ValidationErrorPlacementMatches:  520115,
	ValidationErrorExperienceLadder:  520116,
	ValidationErrorPositiveAbandon:   520117,
	ValidationErrorNegativeThreshold: 520118,
}

// ValidationErrorCode returns a code for the error.
// It returns 20002 (generic validation failure) if the error is not
// registered in the map.
func ValidationErrorCode(err error) int {
	code, ok := validationErrorCodeMap[err]
	if !ok {
		return 20002
	}
	return code
}
