package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the translators.
// Tracks translation outcomes, document counts and type cache effectiveness.
type Metrics struct {
	Translations        *prometheus.CounterVec
	TranslationDuration *prometheus.HistogramVec
	DocumentsReturned   prometheus.Histogram
	TypeLookups         *prometheus.CounterVec
}

// New registers the translator metrics on the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the translator metrics on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Translations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fastdrc_translations_total",
			Help: "Total number of translations by function and outcome",
		}, []string{"functie", "outcome"}),
		TranslationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fastdrc_translation_duration_seconds",
			Help:    "Duration of translations including registry and datastore calls",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"functie"}),
		DocumentsReturned: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fastdrc_documents_returned",
			Help:    "Number of documents in a GeefLijstZaakdocumenten antwoord",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		}),
		TypeLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fastdrc_document_type_lookups_total",
			Help: "Document type label lookups by cache result (hit or miss)",
		}, []string{"result"}),
	}
}

// ObserveTranslation records a finished translation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveTranslation(functie, outcome string, start time.Time) {
	m.Translations.WithLabelValues(functie, outcome).Inc()
	m.TranslationDuration.WithLabelValues(functie).Observe(time.Since(start).Seconds())
}

// ObserveDocuments records the size of an antwoord.
func (m *Metrics) ObserveDocuments(n int) {
	m.DocumentsReturned.Observe(float64(n))
}

// RecordTypeLookup records a type cache hit or miss.
func (m *Metrics) RecordTypeLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.TypeLookups.WithLabelValues(result).Inc()
}
