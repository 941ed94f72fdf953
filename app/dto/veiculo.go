package dto

type VeiculoDTO struct {
	Nome  string `json:"nome"`
	Marca string `json:"marca"`
	Ano   int    `json:"ano"`
}
