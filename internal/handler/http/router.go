package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/teampulse/teampulse-backend-go/internal/handler/http/middleware"
	"github.com/teampulse/teampulse-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	Env            string
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	teamHandler TeamHandler,
	userHandler UserHandler,
	feedbackHandler FeedbackHandler,
	assessmentHandler AssessmentHandler,
	achievementHandler AchievementHandler,
	performanceHandler PerformanceHandler,
	attendanceHandler AttendanceHandler,
	ticketStatsHandler TicketStatsHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "teampulse"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/team", func(r chi.Router) {
				r.Get("/direct-reports", teamHandler.DirectReports)
				r.Get("/indirect-reports", teamHandler.IndirectReports)
			})

			r.Route("/users", func(r chi.Router) {
				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", userHandler.ListUsers)
					r.Post("/", userHandler.CreateUser)
				})

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", userHandler.GetUser)
					r.Get("/feedback", feedbackHandler.ListForUser)
					r.Get("/assessments", assessmentHandler.ListForUser)
					r.Get("/achievements", achievementHandler.ListForUser)
					r.Get("/performance-reviews", performanceHandler.ListForUser)
					r.Get("/attendance", attendanceHandler.ListForUser)
					r.Get("/ticket-stats", ticketStatsHandler.GetForUser)

					// Admin only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireAdmin)
						r.Put("/manager", userHandler.UpdateManager)
						r.Put("/status", userHandler.UpdateStatus)
					})
				})
			})

			r.Post("/feedback", feedbackHandler.GiveFeedback)
			r.Post("/assessments", assessmentHandler.Submit)
			r.Post("/achievements", achievementHandler.Award)
			r.Post("/performance-reviews", performanceHandler.CreateReview)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", attendanceHandler.ClockIn)
				r.Post("/clock-out", attendanceHandler.ClockOut)
			})
		})
	})
	return r
}
