package client

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/axanet-clients/internal/models"
)

const (
	ServicesHeader  = "SERVICIOS:"
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"

	labelName       = "Nombre: "
	labelClientID   = "ID_Cliente: "
	labelPhone      = "Teléfono: "
	labelEmail      = "Correo: "
	labelRegistered = "FechaRegistro: "

	servicePrefix    = "  - Fecha: "
	serviceSeparator = ", Descripción: "
)

// CleanField mantém a ficha orientada a linhas: quebras viram espaço.
func CleanField(s string) string {
	s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
	return strings.TrimSpace(s)
}

// NewRecord monta a ficha inicial com um único serviço datado em now.
func NewRecord(name, phone, email, firstService string, now time.Time) *models.ClientRecord {
	name = CleanField(name)
	return &models.ClientRecord{
		Name:         name,
		ClientID:     GenerateClientID(name, now),
		Phone:        CleanField(phone),
		Email:        CleanField(email),
		RegisteredAt: now.Format(TimestampLayout),
		Services: []models.ServiceEntry{
			NewServiceEntry(firstService, now),
		},
	}
}

func NewServiceEntry(description string, now time.Time) models.ServiceEntry {
	return models.ServiceEntry{
		Date:        now.Format(DateLayout),
		Description: CleanField(description),
	}
}

func FormatServiceLine(e models.ServiceEntry) string {
	return servicePrefix + e.Date + serviceSeparator + e.Description + "\n"
}

// Serialize escreve a ficha no layout fixo; Services sai na ordem do slice.
func Serialize(rec *models.ClientRecord) []byte {
	var b bytes.Buffer
	b.WriteString(labelName + rec.Name + "\n")
	b.WriteString(labelClientID + rec.ClientID + "\n")
	b.WriteString(labelPhone + rec.Phone + "\n")
	b.WriteString(labelEmail + rec.Email + "\n")
	b.WriteString(labelRegistered + rec.RegisteredAt + "\n\n")
	b.WriteString(ServicesHeader + "\n")
	for _, s := range rec.Services {
		b.WriteString(FormatServiceLine(s))
	}
	return b.Bytes()
}

// Parse lê uma ficha no layout fixo. Linhas desconhecidas são ignoradas;
// serviços de todas as seções SERVICIOS: são acumulados na ordem do arquivo.
func Parse(data []byte) (*models.ClientRecord, error) {
	rec := &models.ClientRecord{Services: []models.ServiceEntry{}}

	var (
		hasName    bool
		inServices bool
	)

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")

		if strings.TrimSpace(line) == ServicesHeader {
			inServices = true
			continue
		}

		if inServices {
			if entry, ok := parseServiceLine(line); ok {
				rec.Services = append(rec.Services, entry)
			}
			continue
		}

		switch {
		case strings.HasPrefix(line, labelName):
			rec.Name = strings.TrimPrefix(line, labelName)
			hasName = true
		case strings.HasPrefix(line, labelClientID):
			rec.ClientID = strings.TrimPrefix(line, labelClientID)
		case strings.HasPrefix(line, labelPhone):
			rec.Phone = strings.TrimPrefix(line, labelPhone)
		case strings.HasPrefix(line, labelEmail):
			rec.Email = strings.TrimPrefix(line, labelEmail)
		case strings.HasPrefix(line, labelRegistered):
			rec.RegisteredAt = strings.TrimPrefix(line, labelRegistered)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan record: %w", err)
	}

	if !hasName {
		return nil, ErrMalformedRecord
	}

	return rec, nil
}

func parseServiceLine(line string) (models.ServiceEntry, bool) {
	rest, ok := strings.CutPrefix(line, servicePrefix)
	if !ok {
		return models.ServiceEntry{}, false
	}
	date, desc, ok := strings.Cut(rest, serviceSeparator)
	if !ok {
		return models.ServiceEntry{}, false
	}
	return models.ServiceEntry{Date: date, Description: desc}, true
}
