package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/attendlyhq/attendly-backend-go/internal/config"
	appHTTP "github.com/attendlyhq/attendly-backend-go/internal/handler/http"
	"github.com/attendlyhq/attendly-backend-go/internal/pkg/database"
	"github.com/attendlyhq/attendly-backend-go/internal/pkg/jwt"
	"github.com/attendlyhq/attendly-backend-go/internal/pkg/oauth"
	"github.com/attendlyhq/attendly-backend-go/internal/pkg/storage"
	"github.com/attendlyhq/attendly-backend-go/internal/repository/postgresql"
	analyticsService "github.com/attendlyhq/attendly-backend-go/internal/service/analytics"
	serviceAuth "github.com/attendlyhq/attendly-backend-go/internal/service/auth"
	employeeService "github.com/attendlyhq/attendly-backend-go/internal/service/employee"
	"github.com/attendlyhq/attendly-backend-go/internal/service/file"
	recordService "github.com/attendlyhq/attendly-backend-go/internal/service/record"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	recordRepo := postgresql.NewRecordRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		log.Fatal("Failed to initialize local storage:", err)
	}

	fileService := file.NewFileService(fileStorage)
	authService := serviceAuth.NewAuthService(userRepo, JWTService, GoogleService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	recordSvc := recordService.NewRecordService(db, recordRepo, fileService)
	analyticsSvc := analyticsService.NewAnalyticsService(recordRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(JWTService, authService, cfg.App.FrontendURL)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	recordHandler := appHTTP.NewRecordHandler(recordSvc)
	analyticsHandler := appHTTP.NewAnalyticsHandler(analyticsSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		employeeHandler,
		recordHandler,
		analyticsHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
