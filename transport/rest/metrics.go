package rest

import (
	"errors"
	"fmt"

	"github.com/buzkaaclicker/useravatar"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

type Metrics struct {
	requests    *prometheus.CounterVec
	uploadBytes prometheus.Counter
	registry    *prometheus.Registry
}

func NewMetrics(registry *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "avatar_requests_total",
			Help: "Avatar endpoint requests by method and outcome.",
		}, []string{"method", "outcome"}),
		uploadBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "avatar_upload_bytes_total",
			Help: "Bytes of avatars successfully uploaded to object storage.",
		}),
		registry: registry,
	}
	if err := registry.Register(m.requests); err != nil {
		return nil, fmt.Errorf("register requests counter: %w", err)
	}
	if err := registry.Register(m.uploadBytes); err != nil {
		return nil, fmt.Errorf("register upload bytes counter: %w", err)
	}
	return m, nil
}

func (m *Metrics) InstallTo(app *fiber.App) {
	handler := fasthttpadaptor.NewFastHTTPHandler(
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	app.Get("/metrics", func(ctx *fiber.Ctx) error {
		handler(ctx.Context())
		return nil
	})
}

func (m *Metrics) observeRequest(method string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		var e *useravatar.Error
		if errors.As(err, &e) {
			outcome = e.Kind.String()
		} else {
			outcome = "error"
		}
	}
	m.requests.WithLabelValues(method, outcome).Inc()
}

func (m *Metrics) addUploadBytes(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.uploadBytes.Add(float64(n))
}
