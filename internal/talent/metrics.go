package talent

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var analysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ops_dashboard",
	Subsystem: "talent",
	Name:      "analyses_total",
	Help:      "Talent analyses by analyzer and outcome.",
}, []string{"analyzer", "outcome"})
