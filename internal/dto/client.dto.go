package dto

import "github.com/BruksfildServices01/axanet-clients/internal/models"

type ClientListDTO struct {
	Name string `json:"name"`
	File string `json:"file"`
}

type ClientCreatedDTO struct {
	Name     string   `json:"name"`
	ClientID string   `json:"client_id"`
	File     string   `json:"file"`
	Warnings []string `json:"warnings,omitempty"`
}

type ClientViewDTO struct {
	Raw    string               `json:"raw"`
	Record *models.ClientRecord `json:"record,omitempty"`
}
