package http

import (
	"github.com/MKhiriev/go-goal-keeper/internal/logger"
	"github.com/MKhiriev/go-goal-keeper/internal/metrics"
	"github.com/MKhiriev/go-goal-keeper/internal/service"
	"github.com/MKhiriev/go-goal-keeper/models"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services
	build    models.AppBuildInfo

	metrics  *metrics.HTTPMetrics
	gatherer prometheus.Gatherer

	logger *logger.Logger
}

// HandlerOption customizes a [Handler].
type HandlerOption func(*Handler)

// WithMetrics records request metrics into m and serves gatherer on /metrics.
func WithMetrics(m *metrics.HTTPMetrics, gatherer prometheus.Gatherer) HandlerOption {
	return func(h *Handler) {
		h.metrics = m
		h.gatherer = gatherer
	}
}

// WithBuildInfo sets the build metadata served on /version.
func WithBuildInfo(build models.AppBuildInfo) HandlerOption {
	return func(h *Handler) {
		h.build = build
	}
}

func NewHandler(services *service.Services, logger *logger.Logger, opts ...HandlerOption) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
