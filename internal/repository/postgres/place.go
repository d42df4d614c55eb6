package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/yourplaces/places-server/internal/model"
)

var _ model.PlaceStore = (*PlaceRepository)(nil)

type PlaceRepository struct {
	db *Connection
}

func NewPlaceRepository(db *Connection) *PlaceRepository {
	return &PlaceRepository{
		db: db,
	}
}

const placeColumns = `id, title, description, address, lat, lng, image, creator, created_at, updated_at`

func scanPlace(row pgx.Row) (model.Place, error) {
	var place model.Place
	err := row.Scan(
		&place.ID, &place.Title, &place.Description, &place.Address,
		&place.Location.Lat, &place.Location.Lng, &place.Image, &place.Creator,
		&place.CreatedAt, &place.UpdatedAt,
	)
	return place, err
}

func (r *PlaceRepository) Create(ctx context.Context, place model.Place) (model.Place, error) {
	query := `INSERT INTO places (id, title, description, address, lat, lng, image, creator, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING ` + placeColumns

	savedPlace, err := scanPlace(queryEngine(ctx, r.db).QueryRow(ctx, query,
		place.ID, place.Title, place.Description, place.Address,
		place.Location.Lat, place.Location.Lng, place.Image, place.Creator,
		place.CreatedAt, place.UpdatedAt,
	))
	if err != nil {
		return model.Place{}, fmt.Errorf("failed to create place: %w", err)
	}

	return savedPlace, nil
}

func (r *PlaceRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE id = $1`

	place, err := scanPlace(queryEngine(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Place{}, model.ErrNotFound
		}
		return model.Place{}, fmt.Errorf("failed to get place by id: %w", err)
	}

	return place, nil
}

func (r *PlaceRepository) GetByCreator(ctx context.Context, creatorID uuid.UUID) ([]model.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE creator = $1 ORDER BY created_at`

	rows, err := queryEngine(ctx, r.db).Query(ctx, query, creatorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get places by creator: %w", err)
	}
	defer rows.Close()

	var places []model.Place
	for rows.Next() {
		place, err := scanPlace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan place: %w", err)
		}
		places = append(places, place)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read places: %w", err)
	}

	return places, nil
}

func (r *PlaceRepository) Update(ctx context.Context, place model.Place) (model.Place, error) {
	query := `UPDATE places
			  SET title = $2, description = $3, updated_at = now()
			  WHERE id = $1
			  RETURNING ` + placeColumns

	savedPlace, err := scanPlace(queryEngine(ctx, r.db).QueryRow(ctx, query,
		place.ID, place.Title, place.Description,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Place{}, model.ErrNotFound
		}
		return model.Place{}, fmt.Errorf("failed to update place: %w", err)
	}

	return savedPlace, nil
}

func (r *PlaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM places WHERE id = $1`

	tag, err := queryEngine(ctx, r.db).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete place: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
