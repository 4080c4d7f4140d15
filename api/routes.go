package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	rh "github.com/AmGarera/tagnpark-landing/route-handlers"
	"github.com/AmGarera/tagnpark-landing/webutil"
)

const (
	apiBasePath       = "/api"
	subscribeSubPath  = "/subscribe"
	healthPath        = "/healthz"
	metricsPath       = "/metrics"
	defaultReqTimeout = 60 * time.Second
)

type Options struct {
	// CORSOrigins lists origins allowed to call /api. Empty means same-origin only.
	CORSOrigins    []string
	RequestTimeout time.Duration
}

func SetupRoutes(
	landingHandler *rh.LandingHandler,
	subscribeHandler *rh.SubscribeHandler,
	opts Options,
) http.Handler {
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = defaultReqTimeout
	}

	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RealIP)
	r.Use(PropagateRequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	r.Use(WithMetrics)

	r.Get("/", webutil.MakeHandler(landingHandler.HandleIndex))
	r.Post("/", webutil.MakeHandler(landingHandler.HandleWaitlistForm))

	r.Route(apiBasePath, func(r chi.Router) {
		r.Use(SetHeader(webutil.HeaderCacheControl, "no-store"))
		if len(opts.CORSOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: opts.CORSOrigins,
				AllowedMethods: []string{http.MethodPost, http.MethodOptions},
				AllowedHeaders: []string{webutil.HeaderContentType, webutil.HeaderRequestID},
				ExposedHeaders: []string{webutil.HeaderRequestID},
				MaxAge:         300,
			}))
		}
		// Registered for every method; the handler answers non-POST with 405.
		r.HandleFunc(subscribeSubPath, webutil.MakeHandler(subscribeHandler.HandleSubscribe))
	})

	r.Get(healthPath, handleHealthCheck)
	r.Handle(metricsPath, promhttp.Handler())

	return r
}

// SubscribePath is where the waitlist controller posts signups.
func SubscribePath() string {
	return apiBasePath + subscribeSubPath
}

// handleHealthCheck responds to a health check request.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(webutil.HeaderContentType, webutil.ContentTypeTextPlainUTF8)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
