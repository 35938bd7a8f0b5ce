package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	FallbackServed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "fallback_served_total", Help: "Number of responses served from built-in fallback content."},
		[]string{"content", "reason"},
	)
	DocumentsInserted = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "documents_inserted_total", Help: "Number of documents written to the store by collection."},
		[]string{"collection"},
	)
	SuggestionsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "portfolio", Name: "suggestions_generated_total", Help: "Number of AI reply suggestions generated."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(FallbackServed)
	reg.MustRegister(DocumentsInserted)
	reg.MustRegister(SuggestionsGenerated)
}
