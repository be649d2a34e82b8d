// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

// QueuedPlayer is one candidate in the balancing pool. The caller owns the
// value for the duration of a single Balance call; the balancer never
// mutates it.
type QueuedPlayer struct {
	UserID        string `json:"user_id"`
	PrimaryRole   Role   `json:"primary_role"`
	SecondaryRole Role   `json:"secondary_role"`
	MMR           int    `json:"mmr"`
	QueuedAt      int64  `json:"queued_at"` // unix seconds
}

// CanFill reports whether the player is eligible for the given role at any
// priority.
func (p QueuedPlayer) CanFill(role Role) bool {
	_, ok := RolePriority(role, p)
	return ok
}
