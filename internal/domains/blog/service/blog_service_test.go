package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtualbiblio-backend/internal/domains/blog/model"
)

type fakeRepo struct {
	blogs  map[int64]*model.Blog
	nextID int64
	views  map[int64]int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{blogs: map[int64]*model.Blog{}, nextID: 1, views: map[int64]int{}}
}

func (f *fakeRepo) List(ctx context.Context, filter *model.BlogFilter) ([]model.Blog, int, error) {
	var out []model.Blog
	for _, b := range f.blogs {
		if b.IsActive && b.IsPublished {
			out = append(out, *b)
		}
	}
	return out, len(out), nil
}

func (f *fakeRepo) GetPublishedByID(ctx context.Context, id int64) (*model.Blog, error) {
	b, ok := f.blogs[id]
	if !ok || !b.IsActive || !b.IsPublished {
		return nil, model.ErrBlogNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) GetRawByID(ctx context.Context, id int64) (*model.Blog, error) {
	b, ok := f.blogs[id]
	if !ok || !b.IsActive {
		return nil, model.ErrBlogNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeRepo) IncrementViewCount(ctx context.Context, id int64) error {
	f.views[id]++
	f.blogs[id].ViewCount++
	return nil
}

func (f *fakeRepo) Create(ctx context.Context, b *model.Blog) error {
	b.ID = f.nextID
	f.nextID++
	f.blogs[b.ID] = b
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, b *model.Blog) error {
	f.blogs[b.ID] = b
	return nil
}

func (f *fakeRepo) SoftDelete(ctx context.Context, id int64) error {
	b, ok := f.blogs[id]
	if !ok || !b.IsActive {
		return model.ErrBlogNotFound
	}
	b.IsActive = false
	return nil
}

func (f *fakeRepo) Categories(ctx context.Context) ([]string, error) {
	seen := map[string]bool{}
	var values []string
	for _, b := range f.blogs {
		if b.IsActive && b.IsPublished && !seen[b.Category] {
			seen[b.Category] = true
			values = append(values, b.Category)
		}
	}
	return values, nil
}

func publishedRequest() *model.CreateBlogRequest {
	return &model.CreateBlogRequest{
		Title:       "Lectura en voz alta",
		Content:     "Leer en voz alta acerca a las familias del campo a los libros.",
		Summary:     "Por qué la lectura en voz alta importa en la ruralidad.",
		Author:      "Equipo pedagógico",
		Category:    "Educación",
		IsPublished: true,
	}
}

func TestCreateStampsPublishedAt(t *testing.T) {
	svc := NewBlogService(newFakeRepo())

	b, err := svc.Create(context.Background(), publishedRequest())
	require.NoError(t, err)
	assert.True(t, b.IsPublished)
	require.NotNil(t, b.PublishedAt)

	draft := publishedRequest()
	draft.IsPublished = false
	d, err := svc.Create(context.Background(), draft)
	require.NoError(t, err)
	assert.Nil(t, d.PublishedAt)
}

func TestCreateStartsCountersAtZero(t *testing.T) {
	svc := NewBlogService(newFakeRepo())

	b, err := svc.Create(context.Background(), publishedRequest())
	require.NoError(t, err)
	assert.Zero(t, b.ViewCount)
	assert.Zero(t, b.LikeCount)
}

func TestGetByIDIncrementsViewCount(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBlogService(repo)

	created, err := svc.Create(context.Background(), publishedRequest())
	require.NoError(t, err)

	b, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, b.ViewCount)

	b, err = svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, b.ViewCount)
}

func TestGetByIDHidesDrafts(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBlogService(repo)

	draft := publishedRequest()
	draft.IsPublished = false
	created, err := svc.Create(context.Background(), draft)
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, model.ErrBlogNotFound)
	assert.Zero(t, repo.views[created.ID], "hidden entries never count views")
}

func TestUpdatePublishStampsOnce(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBlogService(repo)

	draft := publishedRequest()
	draft.IsPublished = false
	created, err := svc.Create(context.Background(), draft)
	require.NoError(t, err)

	published := true
	b, err := svc.Update(context.Background(), created.ID, &model.UpdateBlogRequest{IsPublished: &published})
	require.NoError(t, err)
	require.NotNil(t, b.PublishedAt)
	firstStamp := *b.PublishedAt

	// Unpublish, then publish again: the original stamp survives.
	unpublished := false
	_, err = svc.Update(context.Background(), created.ID, &model.UpdateBlogRequest{IsPublished: &unpublished})
	require.NoError(t, err)

	b, err = svc.Update(context.Background(), created.ID, &model.UpdateBlogRequest{IsPublished: &published})
	require.NoError(t, err)
	assert.Equal(t, firstStamp, *b.PublishedAt)
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewBlogService(newFakeRepo())

	_, err := svc.Update(context.Background(), 404, &model.UpdateBlogRequest{Title: "x"})
	assert.ErrorIs(t, err, model.ErrBlogNotFound)
}

func TestDeleteHidesFromListing(t *testing.T) {
	repo := newFakeRepo()
	svc := NewBlogService(repo)

	created, err := svc.Create(context.Background(), publishedRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))

	_, total, err := svc.List(context.Background(), &model.BlogFilter{})
	require.NoError(t, err)
	assert.Zero(t, total)
}
