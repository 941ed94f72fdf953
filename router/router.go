package router

import (
	"net/http"

	"frota-api/app/controllers"
	"frota-api/app/middleware"
	"frota-api/app/models"
)

// NewRouter builds the route table. Mutating vehicle routes and everything
// under /administradores are Admin-only; vehicle reads and creation accept
// either role.
func NewRouter(home *controllers.HomeController, auth *controllers.AuthController, admins *controllers.AdministradorController, vehicles *controllers.VeiculoController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("GET /{$}", home.Index)
	mux.HandleFunc("POST /administradores/login", auth.Login)

	// administradores (Admin only)
	admin := func(h http.HandlerFunc) http.Handler {
		return mw.RequireRole(h, models.RoleAdmin)
	}
	anyRole := func(h http.HandlerFunc) http.Handler {
		return mw.RequireRole(h, models.RoleAdmin, models.RoleUser)
	}
	mux.Handle("GET /administradores", admin(admins.List))
	mux.Handle("GET /administradores/{id}", admin(admins.GetByID))
	mux.Handle("POST /administradores", admin(admins.Create))

	// veiculos
	mux.Handle("POST /veiculos", anyRole(vehicles.Create))
	mux.Handle("GET /veiculos", anyRole(vehicles.List))
	mux.Handle("GET /veiculos/{id}", anyRole(vehicles.GetByID))
	mux.Handle("PUT /veiculos/{id}", admin(vehicles.Update))
	mux.Handle("DELETE /veiculos/{id}", admin(vehicles.Delete))

	return mux
}
