package initialize

import (
	"fmt"
	"net/http"

	"frota-api/app/controllers"
	"frota-api/app/db"
	jwtutil "frota-api/app/jwt"
	"frota-api/app/middleware"
	"frota-api/app/models"
	"frota-api/app/repo"
	"frota-api/app/services"
	"frota-api/config"
	"frota-api/global"
	"frota-api/router"

	"gorm.io/gorm"
)

type App struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Router   http.Handler
	Accounts services.AdministradorService
	Vehicles services.VeiculoService
}

// Build wires the whole application from a config file path.
func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	gdb, err := db.Connect(db.Config{
		Driver: cfg.DB.Driver, Host: cfg.DB.Host, Port: cfg.DB.Port,
		User: cfg.DB.User, Password: cfg.DB.Pass, DBName: cfg.DB.Name, Path: cfg.DB.Path,
	})
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.Administrator{}, &models.Vehicle{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	accountRepo := repo.NewAdministradorRepository(gdb)
	vehicleRepo := repo.NewVeiculoRepository(gdb)
	accounts := services.NewAdministradorService(accountRepo)
	vehicles := services.NewVeiculoService(vehicleRepo)

	if cfg.Admin.Email != "" && cfg.Admin.Senha != "" {
		if err := accounts.EnsureAdmin(cfg.Admin.Email, cfg.Admin.Senha); err != nil {
			return nil, fmt.Errorf("seed admin: %w", err)
		}
	}

	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}
	mw := &middleware.Auth{Signer: signer}

	home := controllers.NewHomeController()
	auth := controllers.NewAuthController(accounts, signer)
	admins := controllers.NewAdministradorController(accounts)
	veiculos := controllers.NewVeiculoController(vehicles)

	h := router.NewRouter(home, auth, admins, veiculos, mw)
	h = middleware.Recovery(h)
	h = middleware.Logging(h)
	h = middleware.RequestID(h)

	return &App{Cfg: cfg, DB: gdb, Router: h, Accounts: accounts, Vehicles: vehicles}, nil
}
