// Package metrics defines and registers all custom Prometheus metrics for the
// user/role API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry on package
// initialisation through promauto and exposed by the router on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "user_roles"

// Entity label values.
const (
	EntityRole = "role"
	EntityUser = "user"
)

// Rejection reasons.
const (
	ReasonDuplicateName           = "duplicate_name"
	ReasonDuplicateIdentification = "duplicate_identification"
	ReasonDuplicateEmail          = "duplicate_email"
	ReasonNoRoles                 = "no_roles"
	ReasonUnknownRole             = "unknown_role"
)

// RolesCreatedTotal counts roles persisted successfully.
var RolesCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "roles_created_total",
		Help:      "Total number of roles created.",
	},
)

// UsersCreatedTotal counts users persisted successfully.
var UsersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created.",
	},
)

// CreateRejectedTotal counts create requests refused by a business rule.
// Labels:
//   - entity: "role" or "user"
//   - reason: e.g. "duplicate_email", "no_roles", "unknown_role"
var CreateRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "create_rejected_total",
		Help:      "Total number of create requests rejected by a business rule.",
	},
	[]string{"entity", "reason"},
)
