package models

// Ficha de cliente persistida como arquivo texto, um por cliente.
type ClientRecord struct {
	Name         string         `json:"name"`
	ClientID     string         `json:"client_id"`
	Phone        string         `json:"phone"`
	Email        string         `json:"email"`
	RegisteredAt string         `json:"registered_at"`
	Services     []ServiceEntry `json:"services"`
}

type ServiceEntry struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}
