package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Исходы авто-назначения
const (
	OutcomeAssigned         = "assigned"
	OutcomeAssignedFallback = "assigned_fallback"
	OutcomeUnassigned       = "unassigned"
	OutcomePreempted        = "preempted"
)

// Результаты попытки принять запрос
const (
	AcceptSucceeded     = "accepted"
	AcceptConflict      = "conflict"
	AcceptDeclined      = "declined"
	AcceptNotFound      = "not_found"
	AcceptUnknownDoctor = "unknown_doctor"

	SourceManual = "manual"
	SourceAuto   = "auto"
)

// PromRecorder пишет метрики диспетчеризации в Prometheus
type PromRecorder struct {
	dispatches          *prometheus.CounterVec
	accepts             *prometheus.CounterVec
	transitions         *prometheus.CounterVec
	classifierFallbacks *prometheus.CounterVec
	skippedCandidates   *prometheus.CounterVec
}

// NewPromRecorder регистрирует метрики в переданном registerer.
// Если reg == nil, используется registerer по умолчанию. Уже зарегистрированные
// коллекторы переиспользуются.
func NewPromRecorder(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	dispatches, err := registerCounterVec(reg, prometheus.CounterOpts{
		Name: "emergency_dispatch_total",
		Help: "Auto-assign outcomes for created or redispatched emergency requests",
	}, []string{"outcome"})
	if err != nil {
		return nil, err
	}
	accepts, err := registerCounterVec(reg, prometheus.CounterOpts{
		Name: "emergency_accept_total",
		Help: "Accept attempts by result",
	}, []string{"result", "source"})
	if err != nil {
		return nil, err
	}
	transitions, err := registerCounterVec(reg, prometheus.CounterOpts{
		Name: "emergency_transitions_total",
		Help: "Emergency request state transitions",
	}, []string{"transition"})
	if err != nil {
		return nil, err
	}
	fallbacks, err := registerCounterVec(reg, prometheus.CounterOpts{
		Name: "classifier_fallbacks_total",
		Help: "Classifier calls that degraded to the default specialization",
	}, []string{"reason"})
	if err != nil {
		return nil, err
	}
	skipped, err := registerCounterVec(reg, prometheus.CounterOpts{
		Name: "dispatch_candidates_skipped_total",
		Help: "Available doctors skipped during ranking",
	}, []string{"reason"})
	if err != nil {
		return nil, err
	}

	return &PromRecorder{
		dispatches:          dispatches,
		accepts:             accepts,
		transitions:         transitions,
		classifierFallbacks: fallbacks,
		skippedCandidates:   skipped,
	}, nil
}

func registerCounterVec(reg prometheus.Registerer, opts prometheus.CounterOpts, labels []string) (*prometheus.CounterVec, error) {
	vec := prometheus.NewCounterVec(opts, labels)
	if err := reg.Register(vec); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector.(*prometheus.CounterVec), nil
		}
		return nil, err
	}
	return vec, nil
}

func (r *PromRecorder) DispatchOutcome(outcome string) {
	r.dispatches.WithLabelValues(outcome).Inc()
}

// AcceptResult учитывает попытку принять запрос. source - "manual" или "auto".
func (r *PromRecorder) AcceptResult(result, source string) {
	r.accepts.WithLabelValues(result, source).Inc()
}

func (r *PromRecorder) Transition(transition string) {
	r.transitions.WithLabelValues(transition).Inc()
}

func (r *PromRecorder) ClassifierFallback(reason string) {
	r.classifierFallbacks.WithLabelValues(reason).Inc()
}

func (r *PromRecorder) CandidateSkipped(reason string) {
	r.skippedCandidates.WithLabelValues(reason).Inc()
}

// NopRecorder ничего не записывает
type NopRecorder struct{}

func (NopRecorder) DispatchOutcome(string)      {}
func (NopRecorder) AcceptResult(string, string) {}
func (NopRecorder) Transition(string)           {}
func (NopRecorder) ClassifierFallback(string)   {}
func (NopRecorder) CandidateSkipped(string)     {}
