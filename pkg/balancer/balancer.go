// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

// Package balancer splits a queued candidate pool into two role-complete
// five-player teams with the smallest reachable skill-score gap.
package balancer

import (
	"time"

	pie "github.com/elliotchance/pie/v2"

	"github.com/AccelByte/extend-ranked-engine/pkg/constants"
	"github.com/AccelByte/extend-ranked-engine/pkg/envelope"
	"github.com/AccelByte/extend-ranked-engine/pkg/metrics"
	"github.com/AccelByte/extend-ranked-engine/pkg/models"
	"github.com/AccelByte/extend-ranked-engine/pkg/utils"
)

// TeamBalancer runs the slot-fill search. It holds no per-call state, so a
// single instance may serve concurrent matches.
type TeamBalancer struct {
	namespace string
	matchPool string
	metric    metrics.EngineMetrics
}

// New returns a TeamBalancer reporting metrics under the given namespace and
// match pool labels.
func New(namespace, matchPool string, metric metrics.EngineMetrics) *TeamBalancer {
	return &TeamBalancer{
		namespace: namespace,
		matchPool: matchPool,
		metric:    metric,
	}
}

// Balance partitions players into a role-complete 5v5 assignment with the
// lowest skill-score difference the slot-order search can reach. It returns
// nil when fewer than ten candidates are supplied or when no role-complete
// split exists. The result is deterministic for identical input, including
// queue timestamps.
func (b *TeamBalancer) Balance(rootScope *envelope.Scope, players []models.QueuedPlayer) *models.TeamAssignment {
	scope := rootScope.NewChildScope("TeamBalancer.Balance")
	defer scope.Finish()

	startTime := time.Now()
	defer func() {
		b.metric.AddBalanceElapsedTimeMs(b.namespace, b.matchPool, constants.BalanceFunction, time.Since(startTime))
	}()

	if len(players) < models.MatchPlayerCount {
		scope.Log.Infof("[balance] not enough players: %d", len(players))
		b.metric.AddUnbalancedReason(b.namespace, b.matchPool, constants.ReasonNotEnoughPlayers)
		return nil
	}

	// deterministic base order, oldest queue entry first
	pool := pie.SortUsing(players, func(p1, p2 models.QueuedPlayer) bool {
		if p1.QueuedAt != p2.QueuedAt {
			return p1.QueuedAt < p2.QueuedAt
		}
		return p1.UserID < p2.UserID
	})

	assigned, found := searchSlots(pool)
	if !found {
		scope.Log.Infof("[balance] no role-complete split for %d players", len(pool))
		b.metric.AddUnbalancedReason(b.namespace, b.matchPool, constants.ReasonRoleCoverageImpossible)
		return nil
	}

	assignment := buildAssignment(pool, assigned)
	scope.SetAttributes(envelope.MatchIDTag, assignment.MatchID)
	scope.SetAttributes(envelope.TeamMembersTag, assignment.PlayerIDs())
	scope.Log.Infof("[balance] done matchid: %s diff: %d candidates: %d", assignment.MatchID, assignment.SkillDiff(), len(pool))
	return assignment
}

// buildAssignment materializes the winning slot choices into a fresh
// TeamAssignment that shares no memory with the input pool.
func buildAssignment(pool []models.QueuedPlayer, assigned []int) *models.TeamAssignment {
	assignment := &models.TeamAssignment{
		MatchID: utils.GenerateMatchID(),
		SideA:   make([]models.SlotAssignment, 0, models.TeamSize),
		SideB:   make([]models.SlotAssignment, 0, models.TeamSize),
	}
	for slotIndex, slot := range models.SlotOrder() {
		sa := models.SlotAssignment{
			Player: pool[assigned[slotIndex]],
			Role:   slot.Role,
		}
		if slot.Side == models.SideA {
			assignment.SideA = append(assignment.SideA, sa)
		} else {
			assignment.SideB = append(assignment.SideB, sa)
		}
	}
	return assignment
}
