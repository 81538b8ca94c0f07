package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"homefinder/internal/model"

	"github.com/jackc/pgx/v5"
)

const homeColumns = `id, address, city, price, land_size, property_type, number_of_bedrooms, number_of_bathrooms, listed_date, created_at, updated_at, realtor_id`

// HomeRepository defines operations for home and image data. Create and
// Delete act on the whole home+images aggregate inside one transaction.
type HomeRepository interface {
	Create(ctx context.Context, home *model.Home, imageURLs []string) error
	FindByID(ctx context.Context, id int) (*model.Home, error)
	FindImagesByHome(ctx context.Context, homeID int) ([]model.Image, error)
	FindOwner(ctx context.Context, homeID int) (*model.RealtorContact, error)
	Search(ctx context.Context, filters model.HomeFilters) ([]model.HomeSummary, error)
	Update(ctx context.Context, home *model.Home) error
	Delete(ctx context.Context, id int) error
}

type homeRepository struct {
	db DB
}

// NewHomeRepository creates a new HomeRepository
func NewHomeRepository(db DB) HomeRepository {
	return &homeRepository{db: db}
}

// Create inserts the home row and one image row per URL. Both writes run in
// a single transaction so a failure never leaves a home with zero images.
func (r *homeRepository) Create(ctx context.Context, home *model.Home, imageURLs []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	sql := `INSERT INTO homes (address, city, price, land_size, property_type, number_of_bedrooms, number_of_bathrooms, realtor_id)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
            RETURNING id, listed_date, created_at, updated_at`
	err = tx.QueryRow(ctx, sql,
		home.Address, home.City, home.Price, home.LandSize, home.PropertyType,
		home.NumberOfBedrooms, home.NumberOfBathrooms, home.RealtorID,
	).Scan(&home.ID, &home.ListedDate, &home.CreatedAt, &home.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create home: %w", err)
	}

	for _, url := range imageURLs {
		if _, err := tx.Exec(ctx, `INSERT INTO images (url, home_id) VALUES ($1, $2)`, url, home.ID); err != nil {
			return fmt.Errorf("failed to create home image: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit home creation: %w", err)
	}
	return nil
}

// FindByID retrieves a home by its ID
func (r *homeRepository) FindByID(ctx context.Context, id int) (*model.Home, error) {
	h := &model.Home{}
	sql := `SELECT ` + homeColumns + ` FROM homes WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&h.ID, &h.Address, &h.City, &h.Price, &h.LandSize, &h.PropertyType,
		&h.NumberOfBedrooms, &h.NumberOfBathrooms, &h.ListedDate, &h.CreatedAt, &h.UpdatedAt, &h.RealtorID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find home by ID: %w", err)
	}
	return h, nil
}

// FindImagesByHome retrieves all images attached to a home
func (r *homeRepository) FindImagesByHome(ctx context.Context, homeID int) ([]model.Image, error) {
	rows, err := r.db.Query(ctx, `SELECT id, url, home_id FROM images WHERE home_id = $1 ORDER BY id`, homeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query home images: %w", err)
	}
	defer rows.Close()

	var images []model.Image
	for rows.Next() {
		var img model.Image
		if err := rows.Scan(&img.ID, &img.URL, &img.HomeID); err != nil {
			return nil, fmt.Errorf("failed to scan image row: %w", err)
		}
		images = append(images, img)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating image rows: %w", err)
	}
	return images, nil
}

// FindOwner retrieves the contact projection of the realtor who owns a home.
// This is the single authoritative ownership lookup.
func (r *homeRepository) FindOwner(ctx context.Context, homeID int) (*model.RealtorContact, error) {
	owner := &model.RealtorContact{}
	sql := `SELECT u.id, u.name, u.email, u.phone
            FROM homes h JOIN users u ON h.realtor_id = u.id
            WHERE h.id = $1`
	err := r.db.QueryRow(ctx, sql, homeID).Scan(&owner.ID, &owner.Name, &owner.Email, &owner.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Home not found
		}
		return nil, fmt.Errorf("failed to find home owner: %w", err)
	}
	return owner, nil
}

// Search retrieves homes matching the given filters, each with the first
// image by id as its cover.
func (r *homeRepository) Search(ctx context.Context, filters model.HomeFilters) ([]model.HomeSummary, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT h.id, h.address, h.city, h.price, h.land_size, h.property_type, h.number_of_bedrooms, h.number_of_bathrooms, h.listed_date, h.created_at, h.updated_at, h.realtor_id,
            COALESCE((SELECT i.url FROM images i WHERE i.home_id = h.id ORDER BY i.id LIMIT 1), '') AS image
            FROM homes h`)

	args := []interface{}{}
	argCount := 1
	var conditions []string

	if filters.City != nil && *filters.City != "" {
		conditions = append(conditions, fmt.Sprintf("h.city = $%d", argCount))
		args = append(args, *filters.City)
		argCount++
	}
	if filters.MinPrice != nil {
		conditions = append(conditions, fmt.Sprintf("h.price >= $%d", argCount))
		args = append(args, *filters.MinPrice)
		argCount++
	}
	if filters.MaxPrice != nil {
		conditions = append(conditions, fmt.Sprintf("h.price <= $%d", argCount))
		args = append(args, *filters.MaxPrice)
		argCount++
	}
	if filters.PropertyType != nil && *filters.PropertyType != "" {
		conditions = append(conditions, fmt.Sprintf("h.property_type = $%d", argCount))
		args = append(args, *filters.PropertyType)
		//argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY h.listed_date DESC, h.id DESC")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query homes: %w", err)
	}
	defer rows.Close()

	var homes []model.HomeSummary
	for rows.Next() {
		var h model.HomeSummary
		if err := rows.Scan(
			&h.ID, &h.Address, &h.City, &h.Price, &h.LandSize, &h.PropertyType,
			&h.NumberOfBedrooms, &h.NumberOfBathrooms, &h.ListedDate, &h.CreatedAt, &h.UpdatedAt, &h.RealtorID,
			&h.Image,
		); err != nil {
			return nil, fmt.Errorf("failed to scan home row: %w", err)
		}
		homes = append(homes, h)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating home rows: %w", err)
	}
	return homes, nil
}

// Update modifies an existing home. The owning realtor never changes.
func (r *homeRepository) Update(ctx context.Context, h *model.Home) error {
	sql := `UPDATE homes
            SET address = $1, city = $2, price = $3, land_size = $4, property_type = $5, number_of_bedrooms = $6, number_of_bathrooms = $7, updated_at = NOW()
            WHERE id = $8 RETURNING updated_at`
	err := r.db.QueryRow(ctx, sql,
		h.Address, h.City, h.Price, h.LandSize, h.PropertyType,
		h.NumberOfBedrooms, h.NumberOfBathrooms, h.ID,
	).Scan(&h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("home not found for update")
		}
		return fmt.Errorf("failed to update home: %w", err)
	}
	return nil
}

// Delete removes a home together with all its images in one transaction.
func (r *homeRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM images WHERE home_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete home images: %w", err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM homes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete home: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("home not found for deletion")
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit home deletion: %w", err)
	}
	return nil
}
