package service

import (
	"context"
	"strings"

	"virtualbiblio-backend/internal/domains/author"
	"virtualbiblio-backend/internal/domains/author/model"
)

// authorService implements author.Service on top of the unit of work.
// Every operation opens its own short-lived unit of work.
type authorService struct {
	uow func() author.UnitOfWork
}

func NewAuthorService(factory func() author.UnitOfWork) author.Service {
	return &authorService{uow: factory}
}

func (s *authorService) Add(ctx context.Context, req model.AuthorRequest) (*model.Author, error) {
	u := s.uow()

	a := req.ToEntity()
	u.Authors().Add(a)
	if err := u.Complete(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *authorService) GetByID(ctx context.Context, id int64) (*model.Author, error) {
	u := s.uow()

	a, err := u.Authors().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, model.ErrAuthorNotFound
	}
	return a, nil
}

// Update overwrites every mutable field of an existing author.
func (s *authorService) Update(ctx context.Context, id int64, req model.AuthorRequest) (*model.Author, error) {
	u := s.uow()

	existing, err := u.Authors().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, model.ErrAuthorNotFound
	}

	existing.FirstName = req.FirstName
	existing.LastName = req.LastName
	existing.Gender = req.Gender
	existing.BirthYear = req.BirthYear
	existing.Nationality = req.Nationality
	existing.Language = req.Language
	existing.IsAlive = req.IsAlive

	u.Authors().Update(existing)
	if err := u.Complete(ctx); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *authorService) Deactivate(ctx context.Context, id int64) error {
	u := s.uow()

	existing, err := u.Authors().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return model.ErrAuthorNotFound
	}

	existing.IsAlive = false
	u.Authors().Update(existing)
	return u.Complete(ctx)
}

// Search loads the whole table and applies the supplied filters in memory,
// each one conjunctively narrowing the result. No filters returns everything.
func (s *authorService) Search(ctx context.Context, filter model.SearchFilter) ([]model.Author, error) {
	u := s.uow()

	authors, err := u.Authors().GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]model.Author, 0, len(authors))
	for i := range authors {
		if matchesFilter(&authors[i], filter) {
			matched = append(matched, authors[i])
		}
	}
	return matched, nil
}

func matchesFilter(a *model.Author, f model.SearchFilter) bool {
	if f.FirstName != "" && !strings.Contains(a.FirstName, f.FirstName) {
		return false
	}
	if f.LastName != "" && !strings.Contains(a.LastName, f.LastName) {
		return false
	}
	if f.Gender != "" && a.Gender != f.Gender {
		return false
	}
	if f.BirthYear != nil && (a.BirthYear == nil || *a.BirthYear != *f.BirthYear) {
		return false
	}
	if f.Nationality != "" && a.Nationality != f.Nationality {
		return false
	}
	if f.Language != "" && a.Language != f.Language {
		return false
	}
	if f.IsAlive != nil && a.IsAlive != *f.IsAlive {
		return false
	}
	return true
}
