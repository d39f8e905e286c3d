package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	intentClassifiedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "freelancehub",
		Name:      "intent_classified_total",
		Help:      "Chat intent resolutions by tier (rule, semantic, default) and intent.",
	}, []string{"tier", "intent"})

	recommendationRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "freelancehub",
		Name:      "recommendation_requests_total",
		Help:      "Recommendation queries by kind (gigs, courses, skill_gaps).",
	}, []string{"kind"})

	embedderErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "freelancehub",
		Name:      "embedder_errors_total",
		Help:      "Embedding requests that failed.",
	})

	chatConnectionsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "freelancehub",
		Name:      "chat_ws_connections",
		Help:      "Currently open websocket chat connections.",
	})
)

func IncIntentClassified(tier string, intent string) {
	intentClassifiedTotal.WithLabelValues(tier, intent).Inc()
}

func IncRecommendation(kind string) {
	recommendationRequestsTotal.WithLabelValues(kind).Inc()
}

func IncEmbedderError() {
	embedderErrorsTotal.Inc()
}

func SetChatConnections(n int) {
	chatConnectionsActive.Set(float64(n))
}
