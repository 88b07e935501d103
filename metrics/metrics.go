package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Signing — счётчики конвейера подписи.
type Signing struct {
	Signatures prometheus.Counter
	Failures   *prometheus.CounterVec
	Duration   prometheus.Histogram
}

// NewSigning создаёт и регистрирует метрики подписи.
// reason у Failures — машинный код ошибки ("frame_parse_failed", ...).
func NewSigning(reg prometheus.Registerer) *Signing {
	s := &Signing{
		Signatures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "reqsign_signatures_total",
			Help: "Signatures computed successfully.",
		}),
		Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "reqsign_sign_failures_total",
			Help: "Signing attempts rejected before producing a signature.",
		}, []string{"reason"}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "reqsign_sign_duration_seconds",
			Help:    "Wall time of a single Sign invocation.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}
	if reg != nil {
		registerCollector(reg, s.Signatures)
		registerCollector(reg, s.Failures)
		registerCollector(reg, s.Duration)
	}
	return s
}

// ObserveSuccess учитывает успешную подпись.
func (s *Signing) ObserveSuccess(seconds float64) {
	if s == nil {
		return
	}
	s.Signatures.Inc()
	s.Duration.Observe(seconds)
}

// ObserveFailure учитывает отказ с машинным кодом причины.
func (s *Signing) ObserveFailure(reason string) {
	if s == nil {
		return
	}
	s.Failures.WithLabelValues(reason).Inc()
}

func registerCollector(reg prometheus.Registerer, c prometheus.Collector) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			// Уже зарегистрирован — ок.
			return
		}
	}
}
