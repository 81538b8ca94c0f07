package service

import (
	"context"
	"testing"

	"homefinder/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeService_Search_EmptyResultIsNotFound(t *testing.T) {
	repo := newFakeHomeRepo()
	svc := NewHomeService(repo)

	city := "Austin"
	minPrice := 100000.0
	maxPrice := 200000.0
	_, err := svc.Search(context.Background(), model.HomeFilters{
		City: &city, MinPrice: &minPrice, MaxPrice: &maxPrice,
	})

	assert.ErrorIs(t, err, ErrHomeNotFound)
}

func TestHomeService_Search_ReturnsMatches(t *testing.T) {
	repo := newFakeHomeRepo()
	repo.summaries = []model.HomeSummary{
		{Home: model.Home{ID: 1, City: "Austin"}, Image: "https://img/1.jpg"},
	}
	svc := NewHomeService(repo)

	homes, err := svc.Search(context.Background(), model.HomeFilters{})

	require.NoError(t, err)
	require.Len(t, homes, 1)
	assert.Equal(t, "https://img/1.jpg", homes[0].Image)
}

func TestHomeService_Create_KeepsAllImages(t *testing.T) {
	repo := newFakeHomeRepo()
	svc := NewHomeService(repo)

	home, err := svc.Create(context.Background(), model.CreateHomeRequest{
		Address:           "1 Main St",
		City:              "Austin",
		Price:             150000,
		LandSize:          420,
		PropertyType:      model.PropertyTypeResidential,
		NumberOfBedrooms:  3,
		NumberOfBathrooms: 2,
		Images:            []string{"https://img/1.jpg", "https://img/2.jpg"},
	}, 7)

	require.NoError(t, err)
	assert.Equal(t, 7, home.RealtorID)

	repo.owners[home.ID] = &model.RealtorContact{ID: 7, Name: "Bob"}
	detail, err := svc.GetByID(context.Background(), home.ID)
	require.NoError(t, err)
	require.Len(t, detail.Images, 2)
	urls := []string{detail.Images[0].URL, detail.Images[1].URL}
	assert.ElementsMatch(t, []string{"https://img/1.jpg", "https://img/2.jpg"}, urls)
	assert.Equal(t, 7, detail.Realtor.ID)
}

func TestHomeService_GetByID_NotFound(t *testing.T) {
	svc := NewHomeService(newFakeHomeRepo())

	_, err := svc.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrHomeNotFound)
}

func TestHomeService_GetOwner_NotFound(t *testing.T) {
	svc := NewHomeService(newFakeHomeRepo())

	_, err := svc.GetOwner(context.Background(), 99)

	assert.ErrorIs(t, err, ErrHomeNotFound)
}

func TestHomeService_Update_PartialMerge(t *testing.T) {
	repo := newFakeHomeRepo()
	svc := NewHomeService(repo)

	home, err := svc.Create(context.Background(), model.CreateHomeRequest{
		Address:           "1 Main St",
		City:              "Austin",
		Price:             150000,
		LandSize:          420,
		PropertyType:      model.PropertyTypeResidential,
		NumberOfBedrooms:  3,
		NumberOfBathrooms: 2,
		Images:            []string{"https://img/1.jpg"},
	}, 7)
	require.NoError(t, err)

	newPrice := 175000.0
	newCity := "Dallas"
	updated, err := svc.Update(context.Background(), home.ID, model.UpdateHomeRequest{
		Price: &newPrice,
		City:  &newCity,
	})

	require.NoError(t, err)
	assert.Equal(t, 175000.0, updated.Price)
	assert.Equal(t, "Dallas", updated.City)
	// Omitted fields keep their prior values.
	assert.Equal(t, "1 Main St", updated.Address)
	assert.Equal(t, 420.0, updated.LandSize)
	assert.Equal(t, model.PropertyTypeResidential, updated.PropertyType)
	assert.Equal(t, 3, updated.NumberOfBedrooms)
	assert.Equal(t, 2, updated.NumberOfBathrooms)
	assert.Equal(t, 7, updated.RealtorID)
}

func TestHomeService_Update_NotFound(t *testing.T) {
	svc := NewHomeService(newFakeHomeRepo())

	newPrice := 175000.0
	_, err := svc.Update(context.Background(), 99, model.UpdateHomeRequest{Price: &newPrice})

	assert.ErrorIs(t, err, ErrHomeNotFound)
}

func TestHomeService_Delete(t *testing.T) {
	repo := newFakeHomeRepo()
	svc := NewHomeService(repo)

	home, err := svc.Create(context.Background(), model.CreateHomeRequest{
		Address:           "1 Main St",
		City:              "Austin",
		Price:             150000,
		LandSize:          420,
		PropertyType:      model.PropertyTypeResidential,
		NumberOfBedrooms:  3,
		NumberOfBathrooms: 2,
		Images:            []string{"https://img/1.jpg"},
	}, 7)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), home.ID))

	_, err = svc.GetByID(context.Background(), home.ID)
	assert.ErrorIs(t, err, ErrHomeNotFound)
	_, err = svc.GetOwner(context.Background(), home.ID)
	assert.ErrorIs(t, err, ErrHomeNotFound)
	assert.Empty(t, repo.images[home.ID])
}

func TestHomeService_Delete_NotFound(t *testing.T) {
	svc := NewHomeService(newFakeHomeRepo())

	err := svc.Delete(context.Background(), 99)

	assert.ErrorIs(t, err, ErrHomeNotFound)
}
