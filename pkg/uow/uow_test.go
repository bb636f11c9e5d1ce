package uow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"virtualbiblio-backend/internal/domains/author/model"
)

func TestAuthorMappingArity(t *testing.T) {
	a := &model.Author{FirstName: "Gabriel", LastName: "García Márquez"}

	values := authorMapping.Values(a)
	require.Len(t, values, len(authorMapping.Columns),
		"Values must line up with Columns one-to-one")
}

func TestAuthorMappingIDRoundTrip(t *testing.T) {
	a := &model.Author{}
	authorMapping.SetID(a, 17)
	assert.Equal(t, int64(17), authorMapping.ID(a))
}

func TestWritesAreStagedUntilComplete(t *testing.T) {
	u := New(nil)

	u.Authors().Add(&model.Author{FirstName: "Laura", LastName: "Restrepo"})
	u.Authors().Update(&model.Author{ID: 3, FirstName: "Laura", LastName: "Restrepo"})

	assert.Len(t, u.pending, 2, "Add and Update stage, they do not execute")
}

func TestCompleteWithNothingStagedIsANoOp(t *testing.T) {
	u := New(nil)

	// Must not touch the (nil) pool.
	err := u.Complete(context.Background())
	assert.NoError(t, err)
}
