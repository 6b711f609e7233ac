package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "flashdeck", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "flashdeck", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	DecksCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "flashdeck", Name: "decks_created_total", Help: "Number of decks created."},
	)
	CardsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "flashdeck", Name: "cards_created_total", Help: "Number of cards created."},
	)
	CardsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "flashdeck", Name: "cards_deleted_total", Help: "Number of cards deleted."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(DecksCreated)
	reg.MustRegister(CardsCreated)
	reg.MustRegister(CardsDeleted)
}
