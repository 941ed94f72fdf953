package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"frota-api/app/dto"
	"frota-api/app/models"
	"frota-api/app/services"
	"frota-api/app/validation"
)

type AdministradorController struct {
	Accounts services.AdministradorService
}

func NewAdministradorController(accounts services.AdministradorService) *AdministradorController {
	return &AdministradorController{Accounts: accounts}
}

func view(a *models.Administrator) dto.AdministradorView {
	return dto.AdministradorView{ID: a.ID, Email: a.Email, Perfil: a.Role}
}

func (c *AdministradorController) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := c.Accounts.List(queryPage(r))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	views := make([]dto.AdministradorView, 0, len(accounts))
	for i := range accounts {
		views = append(views, view(&accounts[i]))
	}
	writeJSON(w, http.StatusOK, views)
}

func (c *AdministradorController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	a, err := c.Accounts.FindByID(id)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if a == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, view(a))
}

func (c *AdministradorController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AdministradorDTO
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Perfil == "" {
		req.Perfil = models.RoleUser
	}
	if msgs := validation.ValidateAdministrador(req.Email, req.Senha, req.Perfil); len(msgs) > 0 {
		writeValidation(w, msgs)
		return
	}
	a, err := c.Accounts.Create(req.Email, req.Senha, req.Perfil)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/administradores/%d", a.ID))
	writeJSON(w, http.StatusCreated, view(a))
}
