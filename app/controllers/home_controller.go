package controllers

import "net/http"

type HomeController struct{}

func NewHomeController() *HomeController { return &HomeController{} }

func (c *HomeController) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"mensagem": "Bem vindo a API de veículos",
	})
}
