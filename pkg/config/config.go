// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package config

import (
	"math"

	"github.com/caarlos0/env"

	"github.com/AccelByte/extend-ranked-engine/pkg/models"
)

const weightSumEpsilon = 1e-9

// RatingConfig carries every tuning constant of the rating engine. It is an
// immutable value passed into ComputeDeltas, never process-wide state, so
// tests can supply alternate tunings without touching globals.
type RatingConfig struct {
	InitialMMR int `env:"RATING_INITIAL_MMR" envDefault:"1000" envDocs:"score assigned to empty sides as their mean and to fresh players"`
	MinMMR     int `env:"RATING_MIN_MMR"     envDefault:"0"    envDocs:"lower clamp bound of any resulting score"`
	MaxMMR     int `env:"RATING_MAX_MMR"     envDefault:"5000" envDocs:"upper clamp bound of any resulting score"`
	MaxChange  int `env:"RATING_MAX_CHANGE"  envDefault:"100"  envDocs:"per-match cap on the absolute score change"`

	KPlacement   float64 `env:"RATING_K_PLACEMENT"   envDefault:"50" envDocs:"k-factor during placement matches"`
	KNew         float64 `env:"RATING_K_NEW"         envDefault:"32" envDocs:"k-factor below the new-player match threshold"`
	KExperienced float64 `env:"RATING_K_EXPERIENCED" envDefault:"24" envDocs:"k-factor below the experienced match threshold"`
	KVeteran     float64 `env:"RATING_K_VETERAN"     envDefault:"16" envDocs:"k-factor for veterans"`

	PlacementMatches   int `env:"RATING_PLACEMENT_MATCHES"   envDefault:"10"  envDocs:"number of placement matches"`
	NewPlayerMatches   int `env:"RATING_NEW_PLAYER_MATCHES"  envDefault:"50"  envDocs:"matches played below which the new-player k-factor applies"`
	ExperiencedMatches int `env:"RATING_EXPERIENCED_MATCHES" envDefault:"200" envDocs:"matches played below which the experienced k-factor applies"`

	AbandonPenalty        float64 `env:"RATING_ABANDON_PENALTY"         envDefault:"-50"  envDocs:"flat score change applied to abandoning players"`
	TeamDisadvantageBonus float64 `env:"RATING_TEAM_DISADVANTAGE_BONUS" envDefault:"15"   envDocs:"bonus per missing teammate for winning shorthanded"`
	PerformanceMultiplier float64 `env:"RATING_PERFORMANCE_MULTIPLIER"  envDefault:"0.5"  envDocs:"scale of the performance bonus relative to the base term"`

	KDWeight            float64 `env:"RATING_KD_WEIGHT"            envDefault:"0.5" envDocs:"weight of the normalized kill/death ratio"`
	ParticipationWeight float64 `env:"RATING_PARTICIPATION_WEIGHT" envDefault:"0.3" envDocs:"weight of kill participation"`
	HeadshotWeight      float64 `env:"RATING_HEADSHOT_WEIGHT"      envDefault:"0.2" envDocs:"weight of headshot accuracy"`

	PlacementJumpThreshold float64 `env:"RATING_PLACEMENT_JUMP_THRESHOLD" envDefault:"4.0" envDocs:"(kills+assists)/deaths ratio required for the placement seeding jump"`
	PlacementJumpBonus     float64 `env:"RATING_PLACEMENT_JUMP_BONUS"     envDefault:"200" envDocs:"one-time seeding bonus for dominant placement wins"`
}

// ParseRatingConfig loads a RatingConfig from the environment and validates
// it. Malformed values are a construction-time error, not something the
// per-player loop defends against.
func ParseRatingConfig() (RatingConfig, error) {
	var cfg RatingConfig
	if err := env.Parse(&cfg); err != nil {
		return RatingConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RatingConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configs the engine cannot compute sane deltas from.
func (c RatingConfig) Validate() error {
	if c.KPlacement < 0 || c.KNew < 0 || c.KExperienced < 0 || c.KVeteran < 0 {
		return models.ValidationErrorNegativeKFactor
	}
	if c.MinMMR >= c.MaxMMR {
		return models.ValidationErrorScoreBounds
	}
	if c.MaxChange <= 0 {
		return models.ValidationErrorNonPositiveCap
	}
	weightSum := c.KDWeight + c.ParticipationWeight + c.HeadshotWeight
	if math.Abs(weightSum-1.0) > weightSumEpsilon {
		return models.ValidationErrorWeightSum
	}
	if c.PlacementMatches <= 0 {
		return models.ValidationErrorPlacementMatches
	}
	if !(c.PlacementMatches < c.NewPlayerMatches && c.NewPlayerMatches < c.ExperiencedMatches) {
		return models.ValidationErrorExperienceLadder
	}
	if c.AbandonPenalty >= 0 {
		return models.ValidationErrorPositiveAbandon
	}
	if c.PlacementJumpThreshold < 0 {
		return models.ValidationErrorNegativeThreshold
	}
	return nil
}
