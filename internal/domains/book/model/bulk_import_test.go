package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitAuthorName(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		firstName string
		lastName  string
	}{
		{"two tokens", "Gabriel García", "Gabriel", "García"},
		{"multi-word last name", "Gabriel García Márquez", "Gabriel", "García Márquez"},
		{"single token", "Homero", "Homero", ""},
		{"surrounding whitespace", "  Isabel Allende ", "Isabel", "Allende"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, last := SplitAuthorName(tt.input)
			assert.Equal(t, tt.firstName, first)
			assert.Equal(t, tt.lastName, last)
		})
	}
}

func TestBookFilterNormalize(t *testing.T) {
	f := BookFilter{Page: 0, PageSize: 0}
	f.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, DefaultPageSize, f.PageSize)
	assert.Equal(t, 0, f.Offset())

	f = BookFilter{Page: 3, PageSize: 500}
	f.Normalize()
	assert.Equal(t, 100, f.PageSize)
	assert.Equal(t, 200, f.Offset())
}

func TestUpdateRequestAppliesOnlySuppliedFields(t *testing.T) {
	pages := 120
	b := &Book{Title: "Original", Publisher: "Editorial", Quantity: 5}

	UpdateBookRequest{Title: "Nuevo título", Pages: &pages}.ApplyToEntity(b)

	assert.Equal(t, "Nuevo título", b.Title)
	assert.Equal(t, "Editorial", b.Publisher, "unsupplied strings stay untouched")
	assert.Equal(t, 5, b.Quantity, "nil numerics stay untouched")
	assert.Equal(t, &pages, b.Pages)
}

func TestCreateBookRequestValidation(t *testing.T) {
	valid := CreateBookRequest{
		SKU: "GGM-001", Title: "Cien años de soledad", AuthorID: 1,
		Publisher: "Sudamericana", Category: "Novela", Format: "impreso",
		Edition: "1a", Language: "Español",
		Description: "Una novela fundacional del realismo mágico.",
	}
	assert.NoError(t, valid.Validate())

	missingSKU := valid
	missingSKU.SKU = ""
	assert.Error(t, missingSKU.Validate())

	shortDescription := valid
	shortDescription.Description = "corta"
	assert.Error(t, shortDescription.Validate())
}
