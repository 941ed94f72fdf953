package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"frota-api/app/dto"
	jwtutil "frota-api/app/jwt"
	"frota-api/app/services"
)

type AuthController struct {
	Accounts services.AdministradorService
	Signer   *jwtutil.Signer
}

func NewAuthController(accounts services.AdministradorService, signer *jwtutil.Signer) *AuthController {
	return &AuthController{Accounts: accounts, Signer: signer}
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Email == "" || req.Senha == "" {
		writeValidation(w, []string{"Email e senha são obrigatórios."})
		return
	}
	a, err := c.Accounts.Login(req.Email, req.Senha)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	token, err := c.Signer.Sign(a.Email, a.Role)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, dto.LoggedAdministrator{Email: a.Email, Perfil: a.Role, Token: token})
}
