// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

// TeamSize is the number of role slots each side must fill.
const TeamSize = 5

// MatchPlayerCount is the total pool size a full assignment consumes.
const MatchPlayerCount = TeamSize * 2

// RoleSlot is one of the ten fixed assignment targets a balanced match must
// fill.
type RoleSlot struct {
	Side Side `json:"side"`
	Role Role `json:"role"`
}

// slotRoles is the canonical role order of the slot table. SMG is not a slot
// role; it only participates as a flexible fallback in RolePriority.
var slotRoles = []Role{RoleSniper, RoleT1, RoleT2, RoleT3, RoleT4}

// SlotOrder returns the canonical slot fill order: two slots per role in
// slotRoles order, alternating SideA then SideB within each role. The table
// is rebuilt per call so callers may not corrupt shared state.
func SlotOrder() []RoleSlot {
	slots := make([]RoleSlot, 0, MatchPlayerCount)
	for _, role := range slotRoles {
		for _, side := range Sides {
			slots = append(slots, RoleSlot{Side: side, Role: role})
		}
	}
	return slots
}
