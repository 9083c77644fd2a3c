package initialize

import (
	"fmt"
	"net/http"

	"authd/app/controllers"
	"authd/app/db"
	jwtutil "authd/app/jwt"
	"authd/app/middleware"
	"authd/app/models"
	"authd/app/password"
	"authd/app/repo"
	"authd/app/services"
	"authd/config"
	"authd/router"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type App struct {
	Cfg      *config.Config
	Log      zerolog.Logger
	DB       *gorm.DB
	Router   http.Handler
	Accounts *services.AccountService
	Signer   *jwtutil.Signer
}

func Build(configPath string) (*App, error) {
	log := NewLogger()

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cfg.DevMode {
		log.Warn().Msg("dev mode: ephemeral secret and seed admin in use")
	}

	gdb, err := db.Connect(db.Config{Driver: cfg.DB.Driver, Path: cfg.DB.Path, Host: cfg.DB.Host, Port: cfg.DB.Port, User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	if err := gdb.AutoMigrate(&models.Account{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	accountRepo := repo.NewAccountRepository(gdb)
	hasher := password.Hasher{Cost: cfg.BcryptCost}
	accountSvc := services.NewAccountService(accountRepo, hasher, log)

	seed := make([]services.SeedAccount, 0, len(cfg.Seed))
	for _, sa := range cfg.Seed {
		seed = append(seed, services.SeedAccount{Username: sa.Username, Password: sa.Password, Role: sa.Role})
	}
	if err := accountSvc.Seed(seed); err != nil {
		return nil, fmt.Errorf("seed accounts: %w", err)
	}

	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, TTL: cfg.JWT.TTL}
	mw := &middleware.Auth{Signer: signer, Log: log}
	authCtrl := controllers.NewAuthController(accountSvc, signer)
	adminCtrl := controllers.NewAdminController(accountSvc)
	httpCtrl := controllers.NewHTTPController()

	h := router.NewRouter(httpCtrl, authCtrl, adminCtrl, mw)
	h = middleware.Logging(log, h)

	return &App{Cfg: cfg, Log: log, DB: gdb, Router: h, Accounts: accountSvc, Signer: signer}, nil
}
