// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package rating

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AccelByte/extend-ranked-engine/pkg/models"
)

func Test_ValidateMatch(t *testing.T) {
	t.Parallel()

	type args struct {
		mutate      func(records []models.PerformanceRecord)
		winningSide models.Side
	}
	tests := []struct {
		name    string
		args    args
		wantErr error
	}{
		{
			name: "valid_full_match",
			args: args{mutate: func([]models.PerformanceRecord) {}, winningSide: models.SideA},
		},
		{
			name: "negative_kills",
			args: args{mutate: func(records []models.PerformanceRecord) {
				records[2].Kills = -3
			}, winningSide: models.SideA},
			wantErr: models.ValidationErrorNegativeStatCount,
		},
		{
			name: "negative_matches_played",
			args: args{mutate: func(records []models.PerformanceRecord) {
				records[8].MatchesPlayed = -1
			}, winningSide: models.SideA},
			wantErr: models.ValidationErrorNegativeStatCount,
		},
		{
			name: "unknown_side",
			args: args{mutate: func(records []models.PerformanceRecord) {
				records[0].Side = "spectators"
			}, winningSide: models.SideA},
			wantErr: models.ValidationErrorUnknownSide,
		},
		{
			name: "win_flag_mismatch",
			args: args{mutate: func(records []models.PerformanceRecord) {
				records[9].Won = true
			}, winningSide: models.SideA},
			wantErr: models.ValidationErrorWinFlagMismatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			records := generateMatch(1000)
			tt.args.mutate(records)

			err := ValidateMatch(records, tt.args.winningSide)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func Test_ValidateMatch_SideSizes(t *testing.T) {
	t.Parallel()

	full := generateMatch(1000)

	// 2v5 is corrupt data, 3v5 is a tolerated shorthanded match
	assert.ErrorIs(t, ValidateMatch(full[3:], models.SideA), models.ValidationErrorTeamTooSmall)
	assert.NoError(t, ValidateMatch(full[2:], models.SideA))
}

func Test_ValidateMatch_SizeGap(t *testing.T) {
	t.Parallel()

	// 3v6 (gap 3) must be rejected even though both sides have 3+ players
	records := generateMatch(1000)[2:]
	extra := records[len(records)-1]
	extra.UserID = "side_b-extra"
	records = append(records, extra)

	assert.ErrorIs(t, ValidateMatch(records, models.SideA), models.ValidationErrorTeamSizeGap)
}
