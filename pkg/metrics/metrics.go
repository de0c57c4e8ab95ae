package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 请求级 Prometheus 指标
// 使用独立 Registry，避免多实例（测试）重复注册
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// New 创建并注册指标
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "stu_dashboard",
			Name:      "requests_total",
			Help:      "HTTP 请求总数，outcome 为信封 status（success/failed/none）",
		}, []string{"method", "route", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "stu_dashboard",
			Name:      "request_duration_seconds",
			Help:      "HTTP 请求处理耗时",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		m.requests,
		m.latency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observe 记录一次请求
func (m *Metrics) Observe(method, route, outcome string, seconds float64) {
	m.requests.WithLabelValues(method, route, outcome).Inc()
	m.latency.WithLabelValues(method, route).Observe(seconds)
}

// Handler /metrics 暴露端点
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry 返回底层 Registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
