package core

import (
	"github.com/automoto/platfight/components"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Labels are bounded: pool names and state names are fixed sets.
var (
	tickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sim_tick_duration_seconds",
		Help:    "Time spent simulating one tick",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.002, 0.005, 0.01, 0.0167},
	})

	ticksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sim_ticks_total",
		Help: "Ticks simulated",
	})

	playerCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "sim_player_count",
		Help: "Players in the match",
	})

	poolOccupancy = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "sim_pool_occupancy",
		Help: "Objects rented from a pool on the last tick",
	}, []string{"pool"})

	poolOverflow = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sim_pool_overflow_total",
		Help: "Rents served past a pool's capacity",
	}, []string{"pool"})

	stateTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sim_state_transitions_total",
		Help: "State machine transitions by target state",
	}, []string{"state"})

	knockouts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sim_knockouts_total",
		Help: "Players that left the blast zone",
	})
)

func observeTick(match *components.MatchData, seconds float64) {
	tickDuration.Observe(seconds)
	ticksTotal.Inc()
	for _, s := range match.PoolStats {
		poolOccupancy.WithLabelValues(s.Name).Set(float64(s.Len))
		if s.Overflow > 0 {
			poolOverflow.WithLabelValues(s.Name).Add(float64(s.Overflow))
		}
	}
	if n := len(match.KOs); n > 0 {
		knockouts.Add(float64(n))
	}
}
