// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AccelByte/extend-ranked-engine/pkg/models"
)

func validConfig() RatingConfig {
	return RatingConfig{
		InitialMMR: 1000,
		MinMMR:     0,
		MaxMMR:     5000,
		MaxChange:  100,

		KPlacement:   50,
		KNew:         32,
		KExperienced: 24,
		KVeteran:     16,

		PlacementMatches:   10,
		NewPlayerMatches:   50,
		ExperiencedMatches: 200,

		AbandonPenalty:        -50,
		TeamDisadvantageBonus: 15,
		PerformanceMultiplier: 0.5,

		KDWeight:            0.5,
		ParticipationWeight: 0.3,
		HeadshotWeight:      0.2,

		PlacementJumpThreshold: 4.0,
		PlacementJumpBonus:     200,
	}
}

func Test_RatingConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(cfg *RatingConfig)
		wantErr error
	}{
		{
			name:   "valid_defaults",
			mutate: func(*RatingConfig) {},
		},
		{
			name:    "negative_k_factor",
			mutate:  func(cfg *RatingConfig) { cfg.KVeteran = -16 },
			wantErr: models.ValidationErrorNegativeKFactor,
		},
		{
			name:    "inverted_score_bounds",
			mutate:  func(cfg *RatingConfig) { cfg.MinMMR = 5000; cfg.MaxMMR = 0 },
			wantErr: models.ValidationErrorScoreBounds,
		},
		{
			name:    "zero_max_change",
			mutate:  func(cfg *RatingConfig) { cfg.MaxChange = 0 },
			wantErr: models.ValidationErrorNonPositiveCap,
		},
		{
			name:    "weights_do_not_sum_to_one",
			mutate:  func(cfg *RatingConfig) { cfg.KDWeight = 0.7 },
			wantErr: models.ValidationErrorWeightSum,
		},
		{
			name:    "zero_placement_matches",
			mutate:  func(cfg *RatingConfig) { cfg.PlacementMatches = 0 },
			wantErr: models.ValidationErrorPlacementMatches,
		},
		{
			name:    "descending_experience_ladder",
			mutate:  func(cfg *RatingConfig) { cfg.NewPlayerMatches = 300 },
			wantErr: models.ValidationErrorExperienceLadder,
		},
		{
			name:    "positive_abandon_penalty",
			mutate:  func(cfg *RatingConfig) { cfg.AbandonPenalty = 50 },
			wantErr: models.ValidationErrorPositiveAbandon,
		},
		{
			name:    "negative_jump_threshold",
			mutate:  func(cfg *RatingConfig) { cfg.PlacementJumpThreshold = -1 },
			wantErr: models.ValidationErrorNegativeThreshold,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func Test_ParseRatingConfig_Defaults(t *testing.T) {
	cfg, err := ParseRatingConfig()
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.InitialMMR)
	assert.Equal(t, 100, cfg.MaxChange)
	assert.InDelta(t, 32.0, cfg.KNew, 1e-9)
	assert.InDelta(t, -50.0, cfg.AbandonPenalty, 1e-9)
	assert.NoError(t, cfg.Validate())
}

func Test_ParseRatingConfig_EnvOverride(t *testing.T) {
	t.Setenv("RATING_MAX_CHANGE", "60")
	t.Setenv("RATING_K_VETERAN", "12")

	cfg, err := ParseRatingConfig()
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.MaxChange)
	assert.InDelta(t, 12.0, cfg.KVeteran, 1e-9)
}

func Test_ParseRatingConfig_RejectsInvalidEnv(t *testing.T) {
	t.Setenv("RATING_ABANDON_PENALTY", "25")

	_, err := ParseRatingConfig()
	assert.ErrorIs(t, err, models.ValidationErrorPositiveAbandon)
}
