package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	workflowOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace_orders",
		Subsystem: "workflow",
		Name:      "orders_total",
		Help:      "Order placements by terminal state and the state they failed in.",
	}, []string{"result", "state"})

	workflowDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "marketplace_orders",
		Subsystem: "workflow",
		Name:      "order_duration_seconds",
		Help:      "Histogram of order placement durations in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	stockShortages = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "marketplace_orders",
		Subsystem: "inventory",
		Name:      "shortages_total",
		Help:      "Line items that could not be reserved and were backordered.",
	})

	couponRedemptions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "marketplace_orders",
		Subsystem: "coupons",
		Name:      "redemptions_total",
		Help:      "Coupon redemptions by outcome.",
	}, []string{"result"})
)
