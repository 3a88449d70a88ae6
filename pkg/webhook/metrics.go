package webhook

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// outcomesTotal counts processed callbacks by outcome kind ("ok" or one of
// the rejection kind codes). Registered on the default registry; expose it
// with promhttp in the application.
var outcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "unitpay",
	Subsystem: "webhook",
	Name:      "outcomes_total",
	Help:      "Number of processed gateway callbacks by outcome kind.",
}, []string{"kind"})
