package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/scholarduty/duty-backend-go/internal/handler/http/middleware"
	"github.com/scholarduty/duty-backend-go/internal/pkg/jwt"
)

func NewRouter(jwtService jwt.Service, dutyHandler DutyHandler, monitoringHandler MonitoringHandler, scheduleHandler ScheduleHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "duty-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires operator authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/duty", func(r chi.Router) {
				r.Post("/identify", dutyHandler.Identify)
				r.Route("/sessions", func(r chi.Router) {
					r.Get("/", dutyHandler.ListSessions)
					r.Post("/{id}/check-out", dutyHandler.CheckOut)
				})
				r.Route("/slots", func(r chi.Router) {
					r.Get("/", scheduleHandler.ListSlots)
					r.Get("/{id}", scheduleHandler.GetSlot)
				})
			})

			r.Route("/monitoring", func(r chi.Router) {
				r.Get("/", monitoringHandler.List)
				r.Post("/", monitoringHandler.Record)
				r.Post("/{id}/revert", monitoringHandler.Revert)
			})
		})
	})
	return r
}
