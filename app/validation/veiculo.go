package validation

import (
	"fmt"
	"time"
)

const minYear = 1900

// ValidateVeiculo checks a vehicle payload and returns one message per
// violated rule. An empty slice means the payload is valid.
func ValidateVeiculo(nome, marca string, ano int) []string {
	var msgs []string
	if len(nome) < 3 {
		msgs = append(msgs, "O nome do veículo deve conter ao menos 3 caracteres.")
	}
	if len(marca) < 3 {
		msgs = append(msgs, "A marca do veículo deve conter ao menos 3 caracteres.")
	}
	maxYear := time.Now().Year()
	if ano < minYear || ano > maxYear {
		msgs = append(msgs, fmt.Sprintf("O ano do veículo deve estar entre %d e %d.", minYear, maxYear))
	}
	return msgs
}
