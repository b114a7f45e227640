package client

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/axanet-clients/internal/audit"
	domain "github.com/BruksfildServices01/axanet-clients/internal/domain/client"
	"github.com/BruksfildServices01/axanet-clients/internal/models"
)

type AddService struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   domain.Clock
}

func NewAddService(
	repo domain.Repository,
	audit *audit.Dispatcher,
	now domain.Clock,
) *AddService {
	return &AddService{
		repo:  repo,
		audit: audit,
		now:   now,
	}
}

func (uc *AddService) Execute(
	ctx context.Context,
	actor Actor,
	name string,
	description string,
) (*models.ServiceEntry, error) {

	key := domain.Normalize(strings.TrimSpace(name))
	entry := domain.NewServiceEntry(description, uc.now())

	err := uc.repo.Update(ctx, key, func(content []byte) ([]byte, error) {
		return domain.SpliceService(content, domain.FormatServiceLine(entry)), nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(actor.stamp(audit.Event{
		Action:    "service_added",
		Entity:    "client",
		EntityKey: key,
		Metadata: map[string]string{
			"date":        entry.Date,
			"description": entry.Description,
		},
	}))

	return &entry, nil
}
