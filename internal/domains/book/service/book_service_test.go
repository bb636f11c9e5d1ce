package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtualbiblio-backend/internal/domains/book/model"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	books     map[int64]*model.Book
	authorIDs map[int64]bool
	nextID    int64
	updated   *model.Book
	deleted   []int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		books:     map[int64]*model.Book{},
		authorIDs: map[int64]bool{},
		nextID:    1,
	}
}

func (f *fakeRepo) List(ctx context.Context, filter *model.BookFilter) ([]model.BookResponse, int, error) {
	return nil, len(f.books), nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*model.BookResponse, error) {
	if _, ok := f.books[id]; !ok {
		return nil, model.ErrBookNotFound
	}
	return &model.BookResponse{ID: id}, nil
}

func (f *fakeRepo) GetBySKU(ctx context.Context, sku string) (*model.BookResponse, error) {
	for _, b := range f.books {
		if b.SKU == sku && b.IsActive {
			return &model.BookResponse{ID: b.ID, SKU: b.SKU}, nil
		}
	}
	return nil, model.ErrBookNotFound
}

func (f *fakeRepo) GetRawByID(ctx context.Context, id int64) (*model.Book, error) {
	b, ok := f.books[id]
	if !ok || !b.IsActive {
		return nil, model.ErrBookNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) SKUExists(ctx context.Context, sku string) (bool, error) {
	for _, b := range f.books {
		if b.SKU == sku {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) AuthorExists(ctx context.Context, authorID int64) (bool, error) {
	return f.authorIDs[authorID], nil
}

func (f *fakeRepo) Create(ctx context.Context, b *model.Book) error {
	b.ID = f.nextID
	f.nextID++
	f.books[b.ID] = b
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, b *model.Book) error {
	f.books[b.ID] = b
	f.updated = b
	return nil
}

func (f *fakeRepo) SoftDelete(ctx context.Context, id int64) error {
	b, ok := f.books[id]
	if !ok || !b.IsActive {
		return model.ErrBookNotFound
	}
	b.IsActive = false
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeRepo) DistinctValues(ctx context.Context, column string) ([]string, error) {
	seen := map[string]bool{}
	var values []string
	for _, b := range f.books {
		var v string
		switch column {
		case "category":
			v = b.Category
		case "format":
			v = b.Format
		case "language":
			v = b.Language
		}
		if v != "" && !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values, nil
}

func (f *fakeRepo) BulkCreate(ctx context.Context, items []model.BulkCreateBookRequest) (*model.BulkCreateResponse, error) {
	resp := &model.BulkCreateResponse{Errors: []string{}}
	for _, item := range items {
		if taken, _ := f.SKUExists(ctx, item.SKU); taken {
			resp.Errors = append(resp.Errors, "SKU "+item.SKU+" ya existe")
			continue
		}
		f.Create(ctx, &model.Book{SKU: item.SKU, Title: item.Title, IsActive: true})
		resp.SuccessCount++
	}
	resp.ErrorCount = len(resp.Errors)
	return resp, nil
}

func validCreateRequest() *model.CreateBookRequest {
	return &model.CreateBookRequest{
		SKU:         "LIB-001",
		Title:       "Cuentos de la montaña",
		AuthorID:    1,
		Publisher:   "Secretos para Contar",
		Category:    "Cuentos",
		Quantity:    10,
		Format:      "impreso",
		Edition:     "1a",
		Language:    "Español",
		Description: "Relatos campesinos ilustrados para lectura en familia.",
	}
}

func TestCreateBook(t *testing.T) {
	repo := newFakeRepo()
	repo.authorIDs[1] = true
	svc := NewBookService(repo)

	b, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.NotZero(t, b.ID)
	assert.True(t, b.IsActive)
	assert.Equal(t, 0, b.ReviewCount)
}

func TestCreateBookRejectsDuplicateSKU(t *testing.T) {
	repo := newFakeRepo()
	repo.authorIDs[1] = true
	svc := NewBookService(repo)

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, model.ErrDuplicateSKU)
}

func TestCreateBookRejectsUnknownAuthor(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBookService(repo)

	_, err := svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, model.ErrAuthorDoesNotExist)
}

func TestUpdateBookAppliesPartialFields(t *testing.T) {
	repo := newFakeRepo()
	repo.authorIDs[1] = true
	svc := NewBookService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	qty := 25
	updated, err := svc.Update(context.Background(), created.ID, &model.UpdateBookRequest{
		Title:    "Cuentos de la montaña, edición revisada",
		Quantity: &qty,
	})
	require.NoError(t, err)

	assert.Equal(t, "Cuentos de la montaña, edición revisada", updated.Title)
	assert.Equal(t, 25, updated.Quantity)
	assert.Equal(t, "Secretos para Contar", updated.Publisher, "unsupplied fields survive")
	assert.NotNil(t, updated.UpdatedAt)
}

func TestUpdateBookRejectsTakenSKU(t *testing.T) {
	repo := newFakeRepo()
	repo.authorIDs[1] = true
	svc := NewBookService(repo)

	first, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	second := validCreateRequest()
	second.SKU = "LIB-002"
	other, err := svc.Create(context.Background(), second)
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), other.ID, &model.UpdateBookRequest{SKU: first.SKU})
	assert.ErrorIs(t, err, model.ErrDuplicateSKU)
}

func TestUpdateBookKeepingOwnSKU(t *testing.T) {
	repo := newFakeRepo()
	repo.authorIDs[1] = true
	svc := NewBookService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	// Resubmitting the book's own SKU is not a conflict.
	_, err = svc.Update(context.Background(), created.ID, &model.UpdateBookRequest{SKU: created.SKU})
	assert.NoError(t, err)
}

func TestUpdateBookNotFound(t *testing.T) {
	svc := NewBookService(newFakeRepo())

	_, err := svc.Update(context.Background(), 404, &model.UpdateBookRequest{Title: "x"})
	assert.ErrorIs(t, err, model.ErrBookNotFound)
}

func TestDeleteBookIsSoft(t *testing.T) {
	repo := newFakeRepo()
	repo.authorIDs[1] = true
	svc := NewBookService(repo)

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.False(t, repo.books[created.ID].IsActive)

	// A second delete finds nothing active.
	assert.ErrorIs(t, svc.Delete(context.Background(), created.ID), model.ErrBookNotFound)
}

func TestBulkCreateCountsPerItemErrors(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBookService(repo)

	resp, err := svc.BulkCreate(context.Background(), &model.BulkCreateRequest{
		Books: []model.BulkCreateBookRequest{
			{SKU: "LIB-001", Title: "Uno", Author: "Gabriel García Márquez"},
			{SKU: "LIB-001", Title: "Duplicado", Author: "Gabriel García Márquez"},
			{SKU: "LIB-002", Title: "Dos", Author: "Isabel Allende"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.SuccessCount)
	assert.Equal(t, 1, resp.ErrorCount)
	assert.Contains(t, resp.Errors[0], "LIB-001")
}
