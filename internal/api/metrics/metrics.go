// Package metrics defines and registers all custom Prometheus metrics for
// the vitalrack API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register themselves with the default Prometheus registry via
// promauto on first import; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vitalrack"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenRejectionsTotal counts requests that failed the bearer-token gate.
// Label:
//   - reason: "missing_header", "malformed_header" or "invalid_token"
var TokenRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of requests rejected by the auth middleware.",
	},
	[]string{"reason"},
)

// ── Nutrition metrics ─────────────────────────────────────────────────────────

// FoodSearchesTotal counts food searches by where the answer came from.
// Label:
//   - source: "cache", "catalog" or "fallback"
var FoodSearchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "food_searches_total",
		Help:      "Total number of food searches, by answer source.",
	},
	[]string{"source"},
)

// ConsumptionsLoggedTotal counts recorded consumptions.
var ConsumptionsLoggedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "consumptions_logged_total",
		Help:      "Total number of consumption records created.",
	},
)

// ── Training metrics ──────────────────────────────────────────────────────────

// RoutinesGeneratedTotal counts generated routines.
// Label:
//   - level: "beginner", "intermediate" or "advanced"
var RoutinesGeneratedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "routines_generated_total",
		Help:      "Total number of routines generated, by training level.",
	},
	[]string{"level"},
)

// WorkoutsLoggedTotal counts logged workout sessions.
var WorkoutsLoggedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "workouts_logged_total",
		Help:      "Total number of workout sessions logged.",
	},
)
