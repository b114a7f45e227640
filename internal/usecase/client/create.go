package client

import (
	"context"

	"github.com/BruksfildServices01/axanet-clients/internal/audit"
	domain "github.com/BruksfildServices01/axanet-clients/internal/domain/client"
	"github.com/BruksfildServices01/axanet-clients/internal/models"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type CreateClientInput struct {
	Name         string
	Phone        string
	Email        string
	FirstService string
	Actor        Actor
}

type CreateClientOutput struct {
	Record   *models.ClientRecord
	FileName string
}

// ======================================================
// USE CASE
// ======================================================

type CreateClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   domain.Clock
}

func NewCreateClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
	now domain.Clock,
) *CreateClient {
	return &CreateClient{
		repo:  repo,
		audit: audit,
		now:   now,
	}
}

func (uc *CreateClient) Execute(
	ctx context.Context,
	in CreateClientInput,
) (*CreateClientOutput, error) {

	name := domain.CleanField(in.Name)
	if name == "" {
		return nil, domain.ErrEmptyName
	}

	key := domain.Normalize(name)
	if !domain.ValidKey(key) {
		return nil, domain.ErrInvalidName
	}

	exists, err := uc.repo.Has(ctx, key)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyExists
	}

	rec := domain.NewRecord(name, in.Phone, in.Email, in.FirstService, uc.now())

	fileName, err := uc.repo.Create(ctx, key, domain.Serialize(rec))
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(in.Actor.stamp(audit.Event{
		Action:    "client_created",
		Entity:    "client",
		EntityKey: key,
		Metadata: map[string]string{
			"client_id": rec.ClientID,
			"file":      fileName,
		},
	}))

	return &CreateClientOutput{Record: rec, FileName: fileName}, nil
}
