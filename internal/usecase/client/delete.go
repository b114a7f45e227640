package client

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/BruksfildServices01/axanet-clients/internal/audit"
	domain "github.com/BruksfildServices01/axanet-clients/internal/domain/client"
)

type DeleteClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteClient {
	return &DeleteClient{
		repo:  repo,
		audit: audit,
	}
}

// Execute sem confirmação devolve ErrCancelled e não toca em nada.
func (uc *DeleteClient) Execute(
	ctx context.Context,
	actor Actor,
	name string,
	confirmed bool,
) error {

	key := domain.Normalize(strings.TrimSpace(name))
	if !domain.ValidKey(key) {
		return domain.ErrInvalidName
	}

	exists, err := uc.repo.Has(ctx, key)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrNotFound
	}

	if !confirmed {
		return domain.ErrCancelled
	}

	if err := uc.repo.Delete(ctx, key); err != nil {
		if errors.Is(err, domain.ErrFileMissing) {
			log.Printf("client %q: record file already gone, index entry removed", key)
		}
		return err
	}

	uc.audit.Dispatch(actor.stamp(audit.Event{
		Action:    "client_deleted",
		Entity:    "client",
		EntityKey: key,
	}))

	return nil
}
