// Package metrics はゲートウェイの判定結果をPrometheusカウンタとして公開する。
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder はゲートウェイの判定結果を記録する。
type Recorder interface {
	// IncReflection は振り返り生成リクエストの結果を記録する。
	IncReflection(outcome string)
	// IncConfig は設定エンドポイントの結果を記録する。
	IncConfig(outcome string)
	// IncDisclosure はエラー開示ティアの適用を記録する。
	IncDisclosure(tier string)
}

// Noop は何も記録しない Recorder。
type Noop struct{}

func (Noop) IncReflection(string) {}
func (Noop) IncConfig(string)     {}
func (Noop) IncDisclosure(string) {}

// Prom はPrometheusカウンタで記録する Recorder。
// プロセス全体のレジストリではなく専用のレジストリに登録する。
type Prom struct {
	registry   *prometheus.Registry
	reflection *prometheus.CounterVec
	config     *prometheus.CounterVec
	disclosure *prometheus.CounterVec
}

// NewProm は新しい Prom を生成する。
func NewProm(namespace string) *Prom {
	p := &Prom{
		registry: prometheus.NewRegistry(),
		reflection: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reflection_requests_total",
			Help:      "Reflection requests by outcome",
		}, []string{"outcome"}),
		config: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "config_requests_total",
			Help:      "Connection config requests by outcome",
		}, []string{"outcome"}),
		disclosure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "error_disclosure_total",
			Help:      "Error responses by disclosure tier",
		}, []string{"tier"}),
	}
	p.registry.MustRegister(p.reflection, p.config, p.disclosure)
	return p
}

func (p *Prom) IncReflection(outcome string) { p.reflection.WithLabelValues(outcome).Inc() }
func (p *Prom) IncConfig(outcome string)     { p.config.WithLabelValues(outcome).Inc() }
func (p *Prom) IncDisclosure(tier string)    { p.disclosure.WithLabelValues(tier).Inc() }

// Handler は /metrics 用のHTTPハンドラを返す。
func (p *Prom) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}
