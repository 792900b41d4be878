package repository

import (
	"context"
	"log/slog"

	"invoice-tracker/gen/ent"
	"invoice-tracker/gen/ent/party"
	"invoice-tracker/internal/common"
	"invoice-tracker/internal/entity"
)

// PartyRepository resolves counterpart names to registry rows.
type PartyRepository interface {
	GetOrCreate(ctx context.Context, name, kind, taxID string) (*entity.Party, error)
}

type partyRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewPartyRepository(entc *ent.Client, log *slog.Logger) PartyRepository {
	if log == nil {
		log = slog.Default()
	}
	return &partyRepo{ent: entc, log: log}
}

func (r *partyRepo) GetOrCreate(ctx context.Context, name, kind, taxID string) (*entity.Party, error) {
	row, err := r.ent.Party.Query().Where(party.NameEQ(name)).Only(ctx)
	if err == nil {
		return partyToEntity(row), nil
	}
	if !ent.IsNotFound(err) {
		return nil, common.WrapError(common.ErrDatabase, "querying party")
	}

	row, err = r.ent.Party.Create().
		SetName(name).
		SetKind(kind).
		SetTaxID(taxID).
		Save(ctx)
	if err == nil {
		r.log.Info("party created", "name", name, "kind", kind)
		return partyToEntity(row), nil
	}
	// lost a race on the unique name; read the winner
	if ent.IsConstraintError(err) {
		row, err = r.ent.Party.Query().Where(party.NameEQ(name)).Only(ctx)
		if err == nil {
			return partyToEntity(row), nil
		}
	}
	return nil, common.WrapError(common.ErrDatabase, "creating party")
}

func partyToEntity(row *ent.Party) *entity.Party {
	return &entity.Party{
		ID:        row.ID,
		Name:      row.Name,
		Kind:      row.Kind,
		TaxID:     row.TaxID,
		CreatedAt: row.CreatedAt,
	}
}
