package main

import (
	"fmt"
	"net/http"

	"github.com/pontolabs/ponto-backend-go/internal/config"
	appHTTP "github.com/pontolabs/ponto-backend-go/internal/handler/http"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/holiday"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/oauth"
	"github.com/pontolabs/ponto-backend-go/internal/repository/postgresql"
	analysisService "github.com/pontolabs/ponto-backend-go/internal/service/analysis"
	serviceAuth "github.com/pontolabs/ponto-backend-go/internal/service/auth"
	ingestService "github.com/pontolabs/ponto-backend-go/internal/service/ingest"
	settingsService "github.com/pontolabs/ponto-backend-go/internal/service/settings"
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
	punchRepo := postgresql.NewPunchRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	holidayService := holiday.NewService()

	authSvc := serviceAuth.NewAuthService(userRepo, JWTService, GoogleService)
	analysisSvc := analysisService.NewAnalysisService(punchRepo, cfg.Analysis)
	ingestSvc := ingestService.NewIngestService(punchRepo, postgresql.NewTxManager(db))
	settingsSvc := settingsService.NewSettingsService(settingsRepo, cfg.Analysis)

	authHandler := appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService, cfg.App.FrontendURL)
	analysisHandler := appHTTP.NewAnalysisHandler(analysisSvc, settingsSvc)
	punchHandler := appHTTP.NewPunchHandler(ingestSvc)
	settingsHandler := appHTTP.NewSettingsHandler(settingsSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidayService)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
		JWTService,
		authHandler,
		analysisHandler,
		punchHandler,
		settingsHandler,
		holidayHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
