package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	Screened = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "callscreen_screened_total",
		Help: "Total number of calls screened",
	}, []string{"mode"})

	Blocked = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "callscreen_blocked_total",
		Help: "Total number of calls blocked",
	}, []string{"mode", "reason"})

	CacheHits = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "callscreen_verdict_cache_total",
		Help: "Verdict cache lookups by result",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(Screened, Blocked, CacheHits)
}
