package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "proofdeck",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "proofdeck",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "proofdeck",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	// Feedback request metrics
	feedbackEmailsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "proofdeck",
			Subsystem: "feedback",
			Name:      "emails_total",
			Help:      "Total number of feedback request emails by outcome",
		},
		[]string{"kind", "status"},
	)

	// Response metrics
	responsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "proofdeck",
			Subsystem: "response",
			Name:      "submissions_total",
			Help:      "Total number of submitted feedback responses",
		},
		[]string{"question_type"},
	)

	// Social share metrics
	sharesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "proofdeck",
			Subsystem: "share",
			Name:      "recorded_total",
			Help:      "Total number of recorded social shares",
		},
		[]string{"platform"},
	)

	testimonialImagesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "proofdeck",
			Subsystem: "share",
			Name:      "images_rendered_total",
			Help:      "Total number of rendered testimonial images",
		},
	)

	// Quota metrics
	quotaRejectionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "proofdeck",
			Subsystem: "usage",
			Name:      "quota_rejections_total",
			Help:      "Total number of actions rejected by the usage quota",
		},
		[]string{"action"},
	)
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Middleware returns a middleware that records Prometheus metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()

		// Get route pattern from chi
		routePattern := chi.RouteContext(r.Context()).RoutePattern()
		if routePattern == "" {
			routePattern = "unknown"
		}

		status := strconv.Itoa(wrapped.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, routePattern, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, routePattern, status).Observe(duration)
	})
}

// Handler returns the Prometheus metrics HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordFeedbackEmail records a feedback request email attempt
func RecordFeedbackEmail(kind, status string) {
	feedbackEmailsTotal.WithLabelValues(kind, status).Inc()
}

// RecordResponse records a submitted feedback response
func RecordResponse(questionType string) {
	responsesTotal.WithLabelValues(questionType).Inc()
}

// RecordShare records a social share
func RecordShare(platform string) {
	sharesTotal.WithLabelValues(platform).Inc()
}

// RecordTestimonialImage records a rendered testimonial image
func RecordTestimonialImage() {
	testimonialImagesTotal.Inc()
}

// RecordQuotaRejection records an action rejected by the usage quota
func RecordQuotaRejection(action string) {
	quotaRejectionsTotal.WithLabelValues(action).Inc()
}
