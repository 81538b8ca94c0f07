package service

import (
	"context"
	"errors"
	"fmt"

	"homefinder/internal/model"
	"homefinder/internal/repository"
)

var ErrHomeNotFound = errors.New("home not found")

// HomeService provides listing search, detail retrieval and the
// home+images aggregate lifecycle. It performs no ownership checks itself;
// those belong to the AccessGuard in front of it.
type HomeService interface {
	Search(ctx context.Context, filters model.HomeFilters) ([]model.HomeSummary, error)
	GetByID(ctx context.Context, id int) (*model.HomeDetail, error)
	GetOwner(ctx context.Context, homeID int) (*model.RealtorContact, error)
	Create(ctx context.Context, req model.CreateHomeRequest, ownerID int) (*model.Home, error)
	Update(ctx context.Context, id int, req model.UpdateHomeRequest) (*model.Home, error)
	Delete(ctx context.Context, id int) error
}

type homeService struct {
	repo repository.HomeRepository
}

// NewHomeService creates a new HomeService
func NewHomeService(repo repository.HomeRepository) HomeService {
	return &homeService{repo: repo}
}

// Search returns homes matching the filter conjunction, each with a cover
// image. An empty result set is ErrHomeNotFound, never an empty list.
func (s *homeService) Search(ctx context.Context, filters model.HomeFilters) ([]model.HomeSummary, error) {
	homes, err := s.repo.Search(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to search homes: %w", err)
	}
	if len(homes) == 0 {
		return nil, ErrHomeNotFound
	}
	return homes, nil
}

// GetByID returns the home with all its images and the owning realtor's
// contact projection.
func (s *homeService) GetByID(ctx context.Context, id int) (*model.HomeDetail, error) {
	home, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find home by ID: %w", err)
	}
	if home == nil {
		return nil, ErrHomeNotFound
	}

	images, err := s.repo.FindImagesByHome(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load home images: %w", err)
	}

	owner, err := s.repo.FindOwner(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load home owner: %w", err)
	}
	if owner == nil {
		return nil, ErrHomeNotFound
	}

	return &model.HomeDetail{Home: *home, Images: images, Realtor: *owner}, nil
}

// GetOwner returns the owning realtor of a home. All ownership decisions
// route through this lookup.
func (s *homeService) GetOwner(ctx context.Context, homeID int) (*model.RealtorContact, error) {
	owner, err := s.repo.FindOwner(ctx, homeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find home owner: %w", err)
	}
	if owner == nil {
		return nil, ErrHomeNotFound
	}
	return owner, nil
}

// Create lists a new home together with its images for the given realtor.
func (s *homeService) Create(ctx context.Context, req model.CreateHomeRequest, ownerID int) (*model.Home, error) {
	home := &model.Home{
		Address:           req.Address,
		City:              req.City,
		Price:             req.Price,
		LandSize:          req.LandSize,
		PropertyType:      req.PropertyType,
		NumberOfBedrooms:  req.NumberOfBedrooms,
		NumberOfBathrooms: req.NumberOfBathrooms,
		RealtorID:         ownerID,
	}

	if err := s.repo.Create(ctx, home, req.Images); err != nil {
		return nil, fmt.Errorf("failed to create home in repo: %w", err)
	}
	return home, nil
}

// Update merges the non-nil request fields into the stored home and
// persists it. Omitted fields keep their prior values.
func (s *homeService) Update(ctx context.Context, id int, req model.UpdateHomeRequest) (*model.Home, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find home for update: %w", err)
	}
	if existing == nil {
		return nil, ErrHomeNotFound
	}

	// Apply updates
	if req.Address != nil {
		existing.Address = *req.Address
	}
	if req.City != nil {
		existing.City = *req.City
	}
	if req.Price != nil {
		existing.Price = *req.Price
	}
	if req.LandSize != nil {
		existing.LandSize = *req.LandSize
	}
	if req.PropertyType != nil {
		existing.PropertyType = *req.PropertyType
	}
	if req.NumberOfBedrooms != nil {
		existing.NumberOfBedrooms = *req.NumberOfBedrooms
	}
	if req.NumberOfBathrooms != nil {
		existing.NumberOfBathrooms = *req.NumberOfBathrooms
	}

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update home in repo: %w", err)
	}
	return existing, nil
}

// Delete removes a home and all of its images.
func (s *homeService) Delete(ctx context.Context, id int) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find home for deletion: %w", err)
	}
	if existing == nil {
		return ErrHomeNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete home in repo: %w", err)
	}
	return nil
}
