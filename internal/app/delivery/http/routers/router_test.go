package routers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"telecare-service/internal/app/config"
	"telecare-service/internal/app/delivery/http/handlers"
	"telecare-service/internal/app/delivery/http/middlewares"
	"telecare-service/internal/app/services/core/admins"
	"telecare-service/internal/app/services/core/analytics"
	"telecare-service/internal/app/services/core/appointments"
	"telecare-service/internal/app/services/core/payments"
	"telecare-service/internal/app/services/core/professionals"
	"telecare-service/internal/app/services/core/testimonials"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type emptySessionStore struct{}

func (emptySessionStore) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (emptySessionStore) Get(ctx context.Context, key string) (string, error) { return "", nil }

func (emptySessionStore) Delete(ctx context.Context, key string) error { return nil }

// newTestRouter wires the full route tree with inert usecases. Guarded routes
// answer before any handler logic runs, which is what these tests exercise.
func newTestRouter() *chi.Mux {
	log := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{Env: "development", MaxRequests: 1000},
		JWT: config.JWT{Secret: "router-test-secret", ExpTimeInHour: 24},
	}
	m := middlewares.NewMiddlewares(log, emptySessionStore{}, internalConfig)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		m,
		professionals.NewProfessionalController(log, nil),
		appointments.NewAppointmentController(log, nil),
		payments.NewPaymentController(log, nil),
		testimonials.NewTestimonialController(log, nil),
		admins.NewAdminController(log, nil),
		analytics.NewAnalyticsController(log, nil),
		handlers.NewHealthHandler(log, nil, nil),
	)
	return router
}

func TestGuardedRoutesRequireToken(t *testing.T) {
	router := newTestRouter()

	guarded := []struct {
		name   string
		method string
		target string
	}{
		{"Testimonial Create", http.MethodPost, "/api/testimonials"},
		{"Professional Listing", http.MethodGet, "/api/professionals"},
		{"Professional Update", http.MethodPut, "/api/professionals/64f1c0ffee0000000000abcd"},
		{"Appointments By Professional", http.MethodGet, "/api/appointments/professional/64f1c0ffee0000000000abcd"},
		{"Analytics Overview", http.MethodGet, "/api/admin/analytics/overview"},
	}

	for _, route := range guarded {
		t.Run(route.name+" Without Token", func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(route.method, route.target, strings.NewReader("{}"))
			router.ServeHTTP(recorder, request)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})

		t.Run(route.name+" With Garbage Token", func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(route.method, route.target, strings.NewReader("{}"))
			request.Header.Set("Authorization", "Bearer not-a-token")
			router.ServeHTTP(recorder, request)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}

func TestPublicRoutesSkipAuth(t *testing.T) {
	router := newTestRouter()

	public := []struct {
		name   string
		method string
		target string
	}{
		{"Testimonial Listing", http.MethodGet, "/api/testimonials/64f1c0ffee0000000000abcd"},
		{"Approved Professionals", http.MethodGet, "/api/professionals/approved"},
		{"Onboarding Submit", http.MethodPost, "/api/onboarding/submit"},
		{"Service Status", http.MethodGet, "/api/"},
	}

	for _, route := range public {
		t.Run(route.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(route.method, route.target, strings.NewReader("{}"))
			router.ServeHTTP(recorder, request)
			assert.NotEqual(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}
