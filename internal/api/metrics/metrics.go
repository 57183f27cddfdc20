// Package metrics defines and registers all custom Prometheus metrics for the
// reservation API. It is the single source of truth for metric names, labels,
// and help strings. All metrics register with the default registry at import
// time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "reservations"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "not_found", "bad_password", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts newly created bookings.
var BookingsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created.",
	},
)

// BookingsCancelledTotal counts cancelled bookings.
var BookingsCancelledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_cancelled_total",
		Help:      "Total number of bookings cancelled.",
	},
)

// BookingsUpdatedTotal counts edited bookings.
var BookingsUpdatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_updated_total",
		Help:      "Total number of bookings updated.",
	},
)

// ListingCacheTotal counts day-listing cache lookups.
// Label:
//   - result: "hit", "miss", or "error"
var ListingCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listing_cache_total",
		Help:      "Total number of booking listing cache lookups, by result.",
	},
	[]string{"result"},
)
