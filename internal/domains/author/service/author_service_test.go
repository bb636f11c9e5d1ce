package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtualbiblio-backend/internal/domains/author"
	"virtualbiblio-backend/internal/domains/author/model"
)

// fakeUnitOfWork keeps authors in memory and mimics the staged-write
// semantics of the real unit of work.
type fakeUnitOfWork struct {
	repo      *fakeRepo
	completed int
}

type fakeRepo struct {
	authors []model.Author
	nextID  int64
	staged  []func()
}

func newFakeUoW(seed ...model.Author) *fakeUnitOfWork {
	repo := &fakeRepo{authors: seed, nextID: 1}
	for _, a := range seed {
		if a.ID >= repo.nextID {
			repo.nextID = a.ID + 1
		}
	}
	return &fakeUnitOfWork{repo: repo}
}

func (u *fakeUnitOfWork) Authors() author.Repository { return u.repo }

func (u *fakeUnitOfWork) Complete(context.Context) error {
	for _, op := range u.repo.staged {
		op()
	}
	u.repo.staged = nil
	u.completed++
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*model.Author, error) {
	for i := range r.authors {
		if r.authors[i].ID == id {
			a := r.authors[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) GetAll(context.Context) ([]model.Author, error) {
	return append([]model.Author(nil), r.authors...), nil
}

func (r *fakeRepo) Find(ctx context.Context, pred func(*model.Author) bool) ([]model.Author, error) {
	all, _ := r.GetAll(ctx)
	var out []model.Author
	for i := range all {
		if pred(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out, nil
}

func (r *fakeRepo) Add(a *model.Author) {
	r.staged = append(r.staged, func() {
		a.ID = r.nextID
		r.nextID++
		r.authors = append(r.authors, *a)
	})
}

func (r *fakeRepo) Update(a *model.Author) {
	updated := *a
	r.staged = append(r.staged, func() {
		for i := range r.authors {
			if r.authors[i].ID == updated.ID {
				r.authors[i] = updated
			}
		}
	})
}

func (r *fakeRepo) Remove(a *model.Author) {
	id := a.ID
	r.staged = append(r.staged, func() {
		for i := range r.authors {
			if r.authors[i].ID == id {
				r.authors = append(r.authors[:i], r.authors[i+1:]...)
				return
			}
		}
	})
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func seedAuthors() []model.Author {
	return []model.Author{
		{ID: 1, FirstName: "Gabriel", LastName: "García Márquez", Gender: "M", BirthYear: intPtr(1927), Nationality: "Colombiana", Language: "Español", IsAlive: false},
		{ID: 2, FirstName: "Isabel", LastName: "Allende", Gender: "F", BirthYear: intPtr(1942), Nationality: "Chilena", Language: "Español", IsAlive: true},
		{ID: 3, FirstName: "Laura", LastName: "Restrepo", Gender: "F", BirthYear: intPtr(1950), Nationality: "Colombiana", Language: "Español", IsAlive: true},
	}
}

func newService(u *fakeUnitOfWork) author.Service {
	return NewAuthorService(func() author.UnitOfWork { return u })
}

func TestAddCommitsAndReturnsStoredAuthor(t *testing.T) {
	u := newFakeUoW()
	svc := newService(u)

	created, err := svc.Add(context.Background(), model.AuthorRequest{
		FirstName: "Gabriel", LastName: "García Márquez",
		Gender: "M", Nationality: "Colombiana", Language: "Español",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, 1, u.completed)
}

func TestUpdateOverwritesEveryField(t *testing.T) {
	u := newFakeUoW(seedAuthors()...)
	svc := newService(u)

	updated, err := svc.Update(context.Background(), 2, model.AuthorRequest{
		FirstName: "Isabel", LastName: "Allende Llona",
		Gender: "F", BirthYear: intPtr(1942),
		Nationality: "Chilena", Language: "Español", IsAlive: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Allende Llona", updated.LastName)

	stored, err := svc.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Allende Llona", stored.LastName)
}

func TestUpdateMissingAuthorIsNotFoundAndWritesNothing(t *testing.T) {
	u := newFakeUoW(seedAuthors()...)
	svc := newService(u)

	_, err := svc.Update(context.Background(), 99, model.AuthorRequest{
		FirstName: "Nadie", LastName: "Ninguno",
	})
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
	assert.Equal(t, 0, u.completed, "a not-found update must not commit")
}

func TestDeactivateSetsIsAliveFalse(t *testing.T) {
	u := newFakeUoW(seedAuthors()...)
	svc := newService(u)

	require.NoError(t, svc.Deactivate(context.Background(), 2))

	stored, err := svc.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.False(t, stored.IsAlive)
}

func TestDeactivateMissingAuthorIsNotFound(t *testing.T) {
	svc := newService(newFakeUoW())
	err := svc.Deactivate(context.Background(), 42)
	assert.ErrorIs(t, err, model.ErrAuthorNotFound)
}

func TestSearchNoFiltersReturnsEverything(t *testing.T) {
	svc := newService(newFakeUoW(seedAuthors()...))

	got, err := svc.Search(context.Background(), model.SearchFilter{})
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestSearchFiltersAreConjunctive(t *testing.T) {
	svc := newService(newFakeUoW(seedAuthors()...))
	ctx := context.Background()

	byNationality, err := svc.Search(ctx, model.SearchFilter{Nationality: "Colombiana"})
	require.NoError(t, err)
	assert.Len(t, byNationality, 2)

	// Each added filter narrows (or keeps) the previous result set.
	narrowed, err := svc.Search(ctx, model.SearchFilter{Nationality: "Colombiana", IsAlive: boolPtr(true)})
	require.NoError(t, err)
	assert.Len(t, narrowed, 1)
	assert.Equal(t, "Restrepo", narrowed[0].LastName)

	assert.LessOrEqual(t, len(narrowed), len(byNationality))
}

func TestSearchNameFiltersAreSubstrings(t *testing.T) {
	svc := newService(newFakeUoW(seedAuthors()...))

	got, err := svc.Search(context.Background(), model.SearchFilter{LastName: "García"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Gabriel", got[0].FirstName)
}

func TestSearchBirthYearEquality(t *testing.T) {
	svc := newService(newFakeUoW(seedAuthors()...))

	got, err := svc.Search(context.Background(), model.SearchFilter{BirthYear: intPtr(1942)})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Isabel", got[0].FirstName)
}
