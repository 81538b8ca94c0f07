package service

import (
	"context"

	"homefinder/internal/model"
	"homefinder/internal/repository"
)

// In-memory repository fakes backing the service tests.

type fakeUserRepo struct {
	byEmail map[string]*model.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*model.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	f.nextID++
	user.ID = f.nextID
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id int) (*model.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

type fakeHomeRepo struct {
	homes     map[int]*model.Home
	images    map[int][]model.Image
	owners    map[int]*model.RealtorContact
	summaries []model.HomeSummary
	nextID    int
}

func newFakeHomeRepo() *fakeHomeRepo {
	return &fakeHomeRepo{
		homes:  make(map[int]*model.Home),
		images: make(map[int][]model.Image),
		owners: make(map[int]*model.RealtorContact),
	}
}

func (f *fakeHomeRepo) Create(_ context.Context, home *model.Home, imageURLs []string) error {
	f.nextID++
	home.ID = f.nextID
	stored := *home
	f.homes[home.ID] = &stored
	for i, url := range imageURLs {
		f.images[home.ID] = append(f.images[home.ID], model.Image{ID: i + 1, URL: url, HomeID: home.ID})
	}
	return nil
}

func (f *fakeHomeRepo) FindByID(_ context.Context, id int) (*model.Home, error) {
	home, ok := f.homes[id]
	if !ok {
		return nil, nil
	}
	copied := *home
	return &copied, nil
}

func (f *fakeHomeRepo) FindImagesByHome(_ context.Context, homeID int) ([]model.Image, error) {
	return f.images[homeID], nil
}

func (f *fakeHomeRepo) FindOwner(_ context.Context, homeID int) (*model.RealtorContact, error) {
	return f.owners[homeID], nil
}

func (f *fakeHomeRepo) Search(_ context.Context, _ model.HomeFilters) ([]model.HomeSummary, error) {
	return f.summaries, nil
}

func (f *fakeHomeRepo) Update(_ context.Context, home *model.Home) error {
	stored := *home
	f.homes[home.ID] = &stored
	return nil
}

func (f *fakeHomeRepo) Delete(_ context.Context, id int) error {
	delete(f.homes, id)
	delete(f.images, id)
	delete(f.owners, id)
	return nil
}

type fakeMessageRepo struct {
	created []*model.Message
	views   map[int][]model.MessageView
	nextID  int
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{views: make(map[int][]model.MessageView)}
}

func (f *fakeMessageRepo) Create(_ context.Context, m *model.Message) error {
	f.nextID++
	m.ID = f.nextID
	f.created = append(f.created, m)
	return nil
}

func (f *fakeMessageRepo) FindByHome(_ context.Context, homeID int) ([]model.MessageView, error) {
	return f.views[homeID], nil
}
