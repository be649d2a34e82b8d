// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package constants

const (
	BalanceFunction       = "balanceTeams"
	ComputeDeltasFunction = "computeDeltas"

	// Unbalanced reason constants.
	ReasonNotEnoughPlayers       = "not_enough_players"
	ReasonRoleCoverageImpossible = "role_coverage_impossible"
)
