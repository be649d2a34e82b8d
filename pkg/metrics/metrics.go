// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type EngineMetrics interface {
	AddBalanceElapsedTimeMs(namespace, matchPool, function string, elapsedTime time.Duration)
	AddRatingElapsedTimeMs(namespace, matchPool, function string, elapsedTime time.Duration)
	AddUnbalancedReason(namespace string, matchPool string, reason string)
}

func NewMetrics(registry *prometheus.Registry) EngineMetrics {
	return setupPrometheusMetrics(registry)
}
