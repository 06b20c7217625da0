package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/storetrack/attendance-backend-go/internal/config"
	appHTTP "github.com/storetrack/attendance-backend-go/internal/handler/http"
	"github.com/storetrack/attendance-backend-go/internal/pkg/cron"
	"github.com/storetrack/attendance-backend-go/internal/pkg/database"
	"github.com/storetrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/storetrack/attendance-backend-go/internal/pkg/oauth"
	"github.com/storetrack/attendance-backend-go/internal/pkg/storage"
	"github.com/storetrack/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/storetrack/attendance-backend-go/internal/service/attendance"
	serviceAuth "github.com/storetrack/attendance-backend-go/internal/service/auth"
	"github.com/storetrack/attendance-backend-go/internal/service/directory"
	"github.com/storetrack/attendance-backend-go/internal/service/file"
	reportService "github.com/storetrack/attendance-backend-go/internal/service/report"
	settingsService "github.com/storetrack/attendance-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	storeRepo := postgresql.NewStoreRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	adminRepo := postgresql.NewAdminAccountRepository(db)
	txRunner := postgresql.NewTxRunner(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var googleService oauth.GoogleService
	if cfg.GoogleOAuthEnabled() {
		googleService = oauth.NewGoogleService(
			cfg.OAuth2Google.ClientID,
			cfg.OAuth2Google.ClientSecret,
			cfg.OAuth2Google.RedirectURL,
			cfg.OAuth2Google.Scopes,
		)
	}

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage: ", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileSvc := file.NewFileService(fileStorage)
	attendanceSvc := attendanceService.NewAttendanceService(txRunner, attendanceRepo, employeeRepo, settingsRepo)
	directorySvc := directory.NewDirectoryService(employeeRepo, storeRepo)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, storeRepo, settingsRepo)
	authSvc := serviceAuth.NewAuthService(adminRepo, jwtService, googleService)

	if err := authSvc.EnsureAccount(context.Background(), cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Fatal("Failed to seed administrator account: ", err)
	}

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, employeeRepo, settingsRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	handlers := appHTTP.Handlers{
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService, googleService),
		Employee:   appHTTP.NewEmployeeHandler(directorySvc, fileSvc),
		Store:      appHTTP.NewStoreHandler(directorySvc),
		Settings:   appHTTP.NewSettingsHandler(settingsSvc, fileSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
