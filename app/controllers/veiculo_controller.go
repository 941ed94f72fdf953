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

type VeiculoController struct {
	Vehicles services.VeiculoService
}

func NewVeiculoController(vehicles services.VeiculoService) *VeiculoController {
	return &VeiculoController{Vehicles: vehicles}
}

func (c *VeiculoController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.VeiculoDTO
	_ = json.NewDecoder(r.Body).Decode(&req)
	if msgs := validation.ValidateVeiculo(req.Nome, req.Marca, req.Ano); len(msgs) > 0 {
		writeValidation(w, msgs)
		return
	}
	v := models.Vehicle{Name: req.Nome, Brand: req.Marca, Year: req.Ano}
	if err := c.Vehicles.Create(&v); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/veiculos/%d", v.ID))
	writeJSON(w, http.StatusCreated, v)
}

func (c *VeiculoController) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := c.Vehicles.List(queryPage(r), r.URL.Query().Get("nome"))
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (c *VeiculoController) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	v, err := c.Vehicles.FindByID(id)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if v == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (c *VeiculoController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	v, err := c.Vehicles.FindByID(id)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if v == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	var req dto.VeiculoDTO
	_ = json.NewDecoder(r.Body).Decode(&req)
	if msgs := validation.ValidateVeiculo(req.Nome, req.Marca, req.Ano); len(msgs) > 0 {
		writeValidation(w, msgs)
		return
	}
	v.Name = req.Nome
	v.Brand = req.Marca
	v.Year = req.Ano
	if err := c.Vehicles.Update(v); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (c *VeiculoController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	v, err := c.Vehicles.FindByID(id)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	if v == nil {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err := c.Vehicles.Delete(v); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
