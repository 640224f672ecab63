// Package metrics defines the custom Prometheus metrics for the todo API.
// It is the single source of truth for metric names, labels, and help
// strings. Registration happens implicitly through promauto against the
// default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "todo"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (failure never distinguishes unknown
//     user from wrong password, matching the API contract)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "success" or "failure"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// TokenValidationsTotal counts identity resolutions on protected routes.
// Label:
//   - result: "ok" or "rejected" (missing, malformed, expired and
//     badly signed tokens are one bucket)
var TokenValidationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_validations_total",
		Help:      "Total number of token validations on protected routes, by result.",
	},
	[]string{"result"},
)

// PasswordChangesTotal counts password-change attempts.
// Label:
//   - result: "success" or "failure"
var PasswordChangesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_changes_total",
		Help:      "Total number of password change attempts, by result.",
	},
	[]string{"result"},
)
