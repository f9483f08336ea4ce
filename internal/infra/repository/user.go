package repository

import (
	"context"

	"stay-marketplace/internal/infra"
	"stay-marketplace/internal/infra/query"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	UpsertUser(ctx context.Context, db query.DBTX, arg query.UpsertUserParams) error
}

type UserRepository struct {
	queries UserWriteQueries
	db      query.DBTX
}

func NewUserRepository(queries UserWriteQueries, db query.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) Upsert(ctx context.Context, id uuid.UUID, username string) error {
	err := r.queries.UpsertUser(ctx, r.db, query.UpsertUserParams{ID: id, Username: username})
	if err != nil {
		return infra.WrapRepoErr("failed to upsert user", err)
	}
	return nil
}
