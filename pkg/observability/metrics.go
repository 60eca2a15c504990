package observability

import (
	"context"

	"github.com/aretw0/cellsweep/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by the engine hooks.
type Metrics struct {
	Generations prometheus.Counter
	Births      prometheus.Counter
	Deaths      prometheus.Counter
	Population  prometheus.Gauge
	Duration    prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Generations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cellsweep_generations_total",
			Help: "Total number of generations advanced",
		}),
		Births: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cellsweep_births_total",
			Help: "Total number of cells that came alive",
		}),
		Deaths: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cellsweep_deaths_total",
			Help: "Total number of cells that died",
		}),
		Population: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "cellsweep_population",
			Help: "Live cells in the latest generation",
		}),
		Duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "cellsweep_generation_duration_seconds",
			Help:    "Duration of one generation sweep",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
	}

	for _, c := range []prometheus.Collector{m.Generations, m.Births, m.Deaths, m.Population, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record every completed generation.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnGenerationComplete: func(_ context.Context, e *domain.GenerationEvent) {
			m.Generations.Inc()
			m.Births.Add(float64(e.Births))
			m.Deaths.Add(float64(e.Deaths))
			m.Population.Set(float64(e.Population))
			m.Duration.Observe(e.Duration.Seconds())
		},
	}
}
