package client

import (
	"context"

	domain "github.com/BruksfildServices01/axanet-clients/internal/domain/client"
	"github.com/BruksfildServices01/axanet-clients/internal/dto"
)

type ListClients struct {
	repo domain.Repository
}

func NewListClients(repo domain.Repository) *ListClients {
	return &ListClients{repo: repo}
}

func (uc *ListClients) Execute(ctx context.Context) ([]dto.ClientListDTO, error) {
	entries, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ClientListDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ClientListDTO{
			Name: domain.DisplayName(e.Key),
			File: e.FileName,
		})
	}
	return out, nil
}
