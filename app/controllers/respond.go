package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"frota-api/app/dto"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeValidation(w http.ResponseWriter, msgs []string) {
	writeJSON(w, http.StatusBadRequest, dto.ValidationErrors{Mensagens: msgs})
}

// pathID parses the {id} wildcard; ok is false for non-numeric values.
func pathID(r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// queryPage reads the 1-indexed pagina parameter, defaulting to page 1.
func queryPage(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("pagina"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
