// Package observability exports the service's Prometheus metrics.
package observability

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const defaultNamespace = "booking_assistant"

// Metrics implements the metric sinks of the classifier, the assistant
// pipeline and the HTTP middleware.
type Metrics struct {
	chatRequests        *prometheus.CounterVec
	classifierFallbacks *prometheus.CounterVec
	calendarActions     *prometheus.CounterVec
	llmRequests         *prometheus.CounterVec
	pipelineDuration    prometheus.Histogram
	httpRequests        *prometheus.CounterVec
	httpDuration        *prometheus.HistogramVec
}

// NewMetrics registers the collectors on reg. A nil reg means the default
// registerer. Collectors already registered on reg are reused.
func NewMetrics(namespace string, reg prometheus.Registerer) (*Metrics, error) {
	if namespace == "" {
		namespace = defaultNamespace
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		chatRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chat_requests_total",
			Help:      "Chat messages handled, by resolved intent.",
		}, []string{"intent"}),
		classifierFallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classifier_fallbacks_total",
			Help:      "Classifier outputs that fell back to the unknown intent.",
		}, []string{"reason"}),
		calendarActions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calendar_actions_total",
			Help:      "Calendar calls made by the assistant, by action and result.",
		}, []string{"action", "result"}),
		llmRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "llm_requests_total",
			Help:      "Completion attempts sent to language model providers, by provider and result.",
		}, []string{"provider", "result"}),
		pipelineDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "chat_pipeline_duration_seconds",
			Help:      "End-to-end latency of one chat message.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30, 60},
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	var err error
	if m.chatRequests, err = register(reg, m.chatRequests); err != nil {
		return nil, err
	}
	if m.classifierFallbacks, err = register(reg, m.classifierFallbacks); err != nil {
		return nil, err
	}
	if m.calendarActions, err = register(reg, m.calendarActions); err != nil {
		return nil, err
	}
	if m.llmRequests, err = register(reg, m.llmRequests); err != nil {
		return nil, err
	}
	if m.pipelineDuration, err = register(reg, m.pipelineDuration); err != nil {
		return nil, err
	}
	if m.httpRequests, err = register(reg, m.httpRequests); err != nil {
		return nil, err
	}
	if m.httpDuration, err = register(reg, m.httpDuration); err != nil {
		return nil, err
	}
	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("observability: register collector: %w", err)
	}
	return c, nil
}

func (m *Metrics) ChatRequest(intent string) {
	m.chatRequests.WithLabelValues(intent).Inc()
}

func (m *Metrics) ClassifierFallback(reason string) {
	m.classifierFallbacks.WithLabelValues(reason).Inc()
}

func (m *Metrics) CalendarAction(action, result string) {
	m.calendarActions.WithLabelValues(action, result).Inc()
}

// LLMRequest counts one provider attempt, retries included.
func (m *Metrics) LLMRequest(provider, result string) {
	m.llmRequests.WithLabelValues(provider, result).Inc()
}

func (m *Metrics) ObservePipeline(d time.Duration) {
	m.pipelineDuration.Observe(d.Seconds())
}

// ObserveHTTP records one served request. route is the matched pattern,
// not the raw path.
func (m *Metrics) ObserveHTTP(method, route string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(d.Seconds())
}
