// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"github.com/mitchellh/copystructure"
)

// SlotAssignment binds one player to the role they will play.
type SlotAssignment struct {
	Player QueuedPlayer `json:"player"`
	Role   Role         `json:"role"`
}

// TeamAssignment is a complete two-sided split of ten players. Produced
// fresh per Balance call; it shares no memory with the input pool.
type TeamAssignment struct {
	MatchID string           `json:"match_id"`
	SideA   []SlotAssignment `json:"side_a"`
	SideB   []SlotAssignment `json:"side_b"`
}

// TeamMMR sums the skill score of the given side.
func (ta *TeamAssignment) TeamMMR(side Side) int {
	var total int
	for _, sa := range ta.Team(side) {
		total += sa.Player.MMR
	}
	return total
}

// Team returns the slot assignments of one side.
func (ta *TeamAssignment) Team(side Side) []SlotAssignment {
	if side == SideA {
		return ta.SideA
	}
	return ta.SideB
}

// SkillDiff is the absolute skill-score gap between the two sides, the
// quantity the balancer minimizes.
func (ta *TeamAssignment) SkillDiff() int {
	diff := ta.TeamMMR(SideA) - ta.TeamMMR(SideB)
	if diff < 0 {
		diff = -diff
	}
	return diff
}

// PlayerIDs returns every assigned user ID, SideA slots first.
func (ta *TeamAssignment) PlayerIDs() []string {
	ids := make([]string, 0, MatchPlayerCount)
	for _, sa := range ta.SideA {
		ids = append(ids, sa.Player.UserID)
	}
	for _, sa := range ta.SideB {
		ids = append(ids, sa.Player.UserID)
	}
	return ids
}

// Copy returns a deep copy of the assignment.
func (ta *TeamAssignment) Copy() TeamAssignment {
	copied, err := copystructure.Copy(*ta)
	if err != nil {
		return TeamAssignment{}
	}
	assignment, ok := copied.(TeamAssignment)
	if !ok {
		return TeamAssignment{}
	}
	return assignment
}
