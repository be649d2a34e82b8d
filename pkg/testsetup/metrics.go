package testsetup

import (
	"time"

	"github.com/AccelByte/extend-ranked-engine/pkg/metrics"
)

type stubMetricsCollection struct{}

func (s stubMetricsCollection) AddBalanceElapsedTimeMs(namespace, matchPool, function string, elapsedTime time.Duration) {
}

func (s stubMetricsCollection) AddRatingElapsedTimeMs(namespace, matchPool, function string, elapsedTime time.Duration) {
}

func (s stubMetricsCollection) AddUnbalancedReason(namespace string, matchPool string, reason string) {
}

func NewMetrics() metrics.EngineMetrics {
	return stubMetricsCollection{}
}
