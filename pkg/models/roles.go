// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

// Role is one of the enumerated combat roles a player can queue with.
type Role string

const (
	RoleSniper Role = "sniper"
	RoleT1     Role = "t1"
	RoleT2     Role = "t2"
	RoleT3     Role = "t3"
	RoleT4     Role = "t4"
	RoleSMG    Role = "smg"
)

// Roles lists every queueable role in canonical order.
var Roles = []Role{RoleSniper, RoleT1, RoleT2, RoleT3, RoleT4, RoleSMG}

// Side identifies one of the two teams in a match.
type Side string

const (
	SideA Side = "side_a"
	SideB Side = "side_b"
)

// Sides lists both sides in slot-fill order.
var Sides = []Side{SideA, SideB}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

// Role fill priorities, lower is filled first. A priority of
// priorityIneligible means the player cannot take the slot at all.
const (
	PriorityPrimary      = 0
	PriorityPrimarySMG   = 1
	PrioritySecondary    = 2
	PrioritySecondarySMG = 3

	priorityIneligible = -1
)

// RolePriority returns the fill priority of a player for a slot with the
// given role, and whether the player is eligible at all. Primary role match
// beats the SMG fallback, which beats a secondary match, which beats a
// secondary SMG. Sniper slots never accept the SMG fallback.
func RolePriority(slotRole Role, player QueuedPlayer) (int, bool) {
	if player.PrimaryRole == slotRole {
		return PriorityPrimary, true
	}
	if slotRole != RoleSniper && player.PrimaryRole == RoleSMG {
		return PriorityPrimarySMG, true
	}
	if player.SecondaryRole == slotRole {
		return PrioritySecondary, true
	}
	if slotRole != RoleSniper && player.SecondaryRole == RoleSMG {
		return PrioritySecondarySMG, true
	}
	return priorityIneligible, false
}
