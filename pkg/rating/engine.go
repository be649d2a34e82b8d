// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package rating computes post-match skill-score deltas from per-player
// performance records using a tiered Elo base term plus additive
// adjustments, clamped to configured bounds.
package rating

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/AccelByte/extend-ranked-engine/pkg/config"
	"github.com/AccelByte/extend-ranked-engine/pkg/constants"
	"github.com/AccelByte/extend-ranked-engine/pkg/envelope"
	"github.com/AccelByte/extend-ranked-engine/pkg/mathutil"
	"github.com/AccelByte/extend-ranked-engine/pkg/metrics"
	"github.com/AccelByte/extend-ranked-engine/pkg/models"
)

// Engine computes rating deltas. It holds no per-call state, so one instance
// may serve concurrent matches.
type Engine struct {
	namespace string
	matchPool string
	metric    metrics.EngineMetrics
}

// New returns an Engine reporting metrics under the given namespace and
// match pool labels.
func New(namespace, matchPool string, metric metrics.EngineMetrics) *Engine {
	return &Engine{
		namespace: namespace,
		matchPool: matchPool,
		metric:    metric,
	}
}

// sideStats are the per-side figures computed once per call and shared by
// every player's terms.
type sideStats struct {
	meanMMR      float64
	meanKD       float64
	totalKills   int
	disadvantage int
}

// ComputeDeltas returns one RatingDelta per record, order preserving. It
// fails fast with a typed validation error on malformed match data or
// config; no delta is computed past a validation failure.
func (e *Engine) ComputeDeltas(
	rootScope *envelope.Scope,
	records []models.PerformanceRecord,
	winningSide models.Side,
	cfg config.RatingConfig,
) ([]models.RatingDelta, error) {
	scope := rootScope.NewChildScope("Engine.ComputeDeltas")
	defer scope.Finish()

	startTime := time.Now()
	defer func() {
		e.metric.AddRatingElapsedTimeMs(e.namespace, e.matchPool, constants.ComputeDeltasFunction, time.Since(startTime))
	}()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateMatch(records, winningSide); err != nil {
		return nil, err
	}

	stats := collectSideStats(records, cfg)

	deltas := make([]models.RatingDelta, 0, len(records))
	for _, record := range records {
		deltas = append(deltas, computeDelta(record, winningSide, stats, cfg))
	}

	scope.Log.Infof("[rating] done players: %d winning side: %s", len(deltas), winningSide)
	return deltas, nil
}

// collectSideStats computes each side's mean MMR, mean K/D, total kills and
// disadvantage count. Abandoning players count toward every figure; an empty
// side contributes the configured initial score as its mean so the expected
// outcome stays defined.
func collectSideStats(records []models.PerformanceRecord, cfg config.RatingConfig) map[models.Side]sideStats {
	bySide := map[models.Side]sideStats{}
	mmrs := map[models.Side][]float64{}
	kds := map[models.Side][]float64{}

	for _, record := range records {
		s := bySide[record.Side]
		s.totalKills += record.Kills
		bySide[record.Side] = s
		mmrs[record.Side] = append(mmrs[record.Side], float64(record.MMR))
		kds[record.Side] = append(kds[record.Side], killDeathRatio(record))
	}

	for _, side := range models.Sides {
		s := bySide[side]
		if len(mmrs[side]) == 0 {
			s.meanMMR = float64(cfg.InitialMMR)
		} else {
			s.meanMMR = stat.Mean(mmrs[side], nil)
		}
		if len(kds[side]) > 0 {
			s.meanKD = stat.Mean(kds[side], nil)
		}
		s.disadvantage = mathutil.Max(0, models.TeamSize-len(mmrs[side]))
		bySide[side] = s
	}
	return bySide
}

func computeDelta(
	record models.PerformanceRecord,
	winningSide models.Side,
	stats map[models.Side]sideStats,
	cfg config.RatingConfig,
) models.RatingDelta {
	delta := models.RatingDelta{
		UserID: record.UserID,
		OldMMR: record.MMR,
	}

	// abandoners take the flat penalty and skip the rest of the pipeline
	if record.Abandoned {
		delta.Breakdown.AbandonPenalty = cfg.AbandonPenalty
		newMMR := int(math.Round(float64(record.MMR) + cfg.AbandonPenalty))
		delta.NewMMR = mathutil.Max(cfg.MinMMR, newMMR)
		delta.Change = delta.NewMMR - delta.OldMMR
		return delta
	}

	won := record.Side == winningSide
	own := stats[record.Side]
	opponent := stats[record.Side.Opponent()]

	base := baseEloTerm(record, won, opponent.meanMMR, cfg)
	delta.Breakdown.Base = base
	delta.Breakdown.Performance = performanceTerm(record, own, base, cfg)

	if won && own.disadvantage > 0 {
		delta.Breakdown.Disadvantage = float64(own.disadvantage) * cfg.TeamDisadvantageBonus
	}

	maxChange := float64(cfg.MaxChange)
	if seed, ok := placementSeedTerm(record, won, cfg); ok {
		delta.Breakdown.PlacementSeed = seed
		// the seeding jump is allowed to bypass the normal per-match cap
		maxChange = math.Max(maxChange, seed)
	}

	total := delta.Breakdown.Base +
		delta.Breakdown.Performance +
		delta.Breakdown.Disadvantage +
		delta.Breakdown.PlacementSeed +
		delta.Breakdown.WinStreak
	total = mathutil.Clamp(total, -maxChange, maxChange)

	newMMR := int(math.Round(float64(record.MMR) + total))
	delta.NewMMR = mathutil.Clamp(newMMR, cfg.MinMMR, cfg.MaxMMR)
	delta.Change = delta.NewMMR - delta.OldMMR
	return delta
}

// baseEloTerm returns K*(actual-expected) where expected is the Elo win
// probability against the opposing side's mean score and K is picked by
// experience tier.
func baseEloTerm(record models.PerformanceRecord, won bool, opponentMean float64, cfg config.RatingConfig) float64 {
	actual := 0.0
	if won {
		actual = 1.0
	}
	expected := 1.0 / (1.0 + math.Pow(10, (opponentMean-float64(record.MMR))/400.0))
	return kFactor(record.MatchesPlayed, cfg) * (actual - expected)
}

func kFactor(matchesPlayed int, cfg config.RatingConfig) float64 {
	switch {
	case matchesPlayed < cfg.PlacementMatches:
		return cfg.KPlacement
	case matchesPlayed < cfg.NewPlayerMatches:
		return cfg.KNew
	case matchesPlayed < cfg.ExperiencedMatches:
		return cfg.KExperienced
	default:
		return cfg.KVeteran
	}
}

// performanceTerm scores the player's match statistics against their own
// team and scales the result by the magnitude of the base term. The three
// metrics are each normalized so an average showing sits near 1.0: K/D is
// divided by the team mean K/D, and kill participation and headshot accuracy
// are doubled from their 0..1 fractions.
func performanceTerm(record models.PerformanceRecord, own sideStats, base float64, cfg config.RatingConfig) float64 {
	kdNorm := 1.0
	if own.meanKD > 0 {
		kdNorm = killDeathRatio(record) / own.meanKD
	}

	killParticipation := 0.0
	if own.totalKills > 0 {
		killParticipation = float64(record.Kills+record.Assists) / float64(own.totalKills)
	}

	headshotAccuracy := 0.0
	if record.Kills > 0 {
		headshotAccuracy = float64(record.Headshots) / float64(record.Kills)
	}

	score := cfg.KDWeight*kdNorm +
		cfg.ParticipationWeight*(killParticipation*2) +
		cfg.HeadshotWeight*(headshotAccuracy*2)

	return (score - 1.0) * math.Abs(base) * cfg.PerformanceMultiplier
}

// placementSeedTerm returns the one-time seeding bonus for unplaced players
// who win a placement match with a dominant (kills+assists)/deaths ratio.
func placementSeedTerm(record models.PerformanceRecord, won bool, cfg config.RatingConfig) (float64, bool) {
	if record.PlacementDone || record.MatchesPlayed >= cfg.PlacementMatches || !won {
		return 0, false
	}
	ka := float64(record.Kills + record.Assists)
	if record.Deaths > 0 {
		ka /= float64(record.Deaths)
	}
	if ka < cfg.PlacementJumpThreshold {
		return 0, false
	}
	return cfg.PlacementJumpBonus, true
}

// killDeathRatio is kills/deaths, or raw kills when the player never died.
func killDeathRatio(record models.PerformanceRecord) float64 {
	if record.Deaths == 0 {
		return float64(record.Kills)
	}
	return float64(record.Kills) / float64(record.Deaths)
}
