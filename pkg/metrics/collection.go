// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type prometheusMetrics struct {
	balanceElapsedTime prometheus.HistogramVec
	ratingElapsedTime  prometheus.HistogramVec
	unbalancedReasons  prometheus.CounterVec
}

func setupPrometheusMetrics(registry *prometheus.Registry) prometheusMetrics {
	factory := promauto.With(registry)
	labelDimensions := []string{"game_namespace", "matchpool", "function"}

	//nolint:promlinter
	balanceElapsedTime := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ab_ranked_balance_elapsed_time_ms",
			Help:    "A histogram of team balancing elapsed time in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}, labelDimensions)
	//nolint:promlinter
	ratingElapsedTime := factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ab_ranked_rating_elapsed_time_ms",
			Help:    "A histogram of rating delta computation elapsed time in milliseconds",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		}, labelDimensions)
	//nolint:promlinter
	unbalancedReasons := factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ab_ranked_unbalanced_reasons",
			Help: "A counter for pools the balancer could not split into full teams",
		}, []string{"game_namespace", "matchpool", "reason"})

	return prometheusMetrics{
		balanceElapsedTime: *balanceElapsedTime,
		ratingElapsedTime:  *ratingElapsedTime,
		unbalancedReasons:  *unbalancedReasons,
	}
}

func (metrics prometheusMetrics) AddBalanceElapsedTimeMs(namespace, matchPool, function string, elapsedTime time.Duration) {
	metrics.balanceElapsedTime.With(prometheus.Labels{"game_namespace": namespace, "matchpool": matchPool, "function": function}).Observe(float64(elapsedTime.Milliseconds()))
}

func (metrics prometheusMetrics) AddRatingElapsedTimeMs(namespace, matchPool, function string, elapsedTime time.Duration) {
	metrics.ratingElapsedTime.With(prometheus.Labels{"game_namespace": namespace, "matchpool": matchPool, "function": function}).Observe(float64(elapsedTime.Milliseconds()))
}

func (metrics prometheusMetrics) AddUnbalancedReason(namespace string, matchPool string, reason string) {
	metrics.unbalancedReasons.With(prometheus.Labels{"game_namespace": namespace, "matchpool": matchPool, "reason": reason}).Add(float64(1))
}
