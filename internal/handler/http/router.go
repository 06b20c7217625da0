package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/storetrack/attendance-backend-go/internal/config"
	"github.com/storetrack/attendance-backend-go/internal/handler/http/middleware"
	"github.com/storetrack/attendance-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Attendance AttendanceHandler
	Auth       AuthHandler
	Employee   EmployeeHandler
	Store      StoreHandler
	Settings   SettingsHandler
	Report     ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "storetrack-attendance"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Stored photos and the logo are served straight off disk.
	if cfg.Storage.Type == "local" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
		r.Get("/uploads/*", fileServer.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {
		// The kiosk endpoint is unauthenticated: the device only ever
		// submits employee IDs it scanned.
		r.Post("/scan", h.Attendance.Scan)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
			r.Get("/login/oauth/google", h.Auth.LoginWithGoogle)
			r.Get("/oauth/callback/google", h.Auth.OAuthCallbackGoogle)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Post("/change-password", h.Auth.ChangePassword)
			})
		})

		// Administrative surface
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Post("/import", h.Employee.Import)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Employee.Get)
					r.Put("/", h.Employee.Update)
					r.Delete("/", h.Employee.Delete)
					r.Post("/photo", h.Employee.UploadPhoto)
				})
			})

			r.Route("/stores", func(r chi.Router) {
				r.Get("/", h.Store.List)
				r.Post("/", h.Store.Create)
				r.Post("/import", h.Store.Import)
				r.Route("/{code}", func(r chi.Router) {
					r.Get("/", h.Store.Get)
					r.Put("/", h.Store.Update)
					r.Delete("/", h.Store.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Patch("/{id}", h.Attendance.Update)
				r.Delete("/{id}", h.Attendance.Delete)
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.Settings.Get)
				r.Patch("/", h.Settings.Update)
				r.Post("/logo", h.Settings.UploadLogo)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/", h.Report.Generate)
				r.Get("/export", h.Report.Export)
			})
		})
	})

	return r
}
