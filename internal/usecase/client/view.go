package client

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/axanet-clients/internal/domain/client"
	"github.com/BruksfildServices01/axanet-clients/internal/dto"
)

type ViewClient struct {
	repo domain.Repository
}

func NewViewClient(repo domain.Repository) *ViewClient {
	return &ViewClient{repo: repo}
}

// Execute devolve o texto cru da ficha; Record vem preenchido apenas
// quando o arquivo segue o layout.
func (uc *ViewClient) Execute(
	ctx context.Context,
	name string,
) (*dto.ClientViewDTO, error) {

	content, err := uc.repo.Read(ctx, domain.Normalize(strings.TrimSpace(name)))
	if err != nil {
		return nil, err
	}

	out := &dto.ClientViewDTO{Raw: string(content)}
	if rec, err := domain.Parse(content); err == nil {
		out.Record = rec
	}
	return out, nil
}

// Exists consulta só o índice.
func (uc *ViewClient) Exists(ctx context.Context, name string) (bool, error) {
	key := domain.Normalize(strings.TrimSpace(name))
	if !domain.ValidKey(key) {
		return false, domain.ErrInvalidName
	}
	return uc.repo.Has(ctx, key)
}
