package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Author is a catalog author. Authors are never physically removed; IsAlive
// doubles as the record's soft state.
type Author struct {
	ID          int64  `json:"id" db:"id"`
	FirstName   string `json:"firstName" db:"first_name"`
	LastName    string `json:"lastName" db:"last_name"`
	Gender      string `json:"gender" db:"gender"`
	BirthYear   *int   `json:"birthYear" db:"birth_year"`
	Nationality string `json:"nationality" db:"nationality"`
	Language    string `json:"language" db:"language"`
	IsAlive     bool   `json:"isAlive" db:"is_alive"`
}

// AuthorRequest creates or fully overwrites an author. Updates are
// whole-record: every mutable field is written.
type AuthorRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Gender      string `json:"gender"`
	BirthYear   *int   `json:"birthYear"`
	Nationality string `json:"nationality"`
	Language    string `json:"language"`
	IsAlive     bool   `json:"isAlive"`
}

func (r AuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName,
			validation.Required.Error("El nombre es obligatorio"),
			validation.Length(2, 100),
		),
		validation.Field(&r.LastName,
			validation.Required.Error("El apellido es obligatorio"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Gender, validation.Length(0, 50)),
		validation.Field(&r.BirthYear,
			validation.Min(1000).Error("El año de nacimiento debe estar entre 1000 y 2025"),
			validation.Max(2025).Error("El año de nacimiento debe estar entre 1000 y 2025"),
		),
		validation.Field(&r.Nationality, validation.Length(0, 100)),
		validation.Field(&r.Language, validation.Length(0, 50)),
	)
}

// ToEntity converts the request to an Author entity.
func (r AuthorRequest) ToEntity() *Author {
	return &Author{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Gender:      r.Gender,
		BirthYear:   r.BirthYear,
		Nationality: r.Nationality,
		Language:    r.Language,
		IsAlive:     r.IsAlive,
	}
}

// SearchFilter carries the optional author search criteria. Absent fields are
// no-ops; supplied fields narrow the result conjunctively.
type SearchFilter struct {
	FirstName   string `form:"firstName"`
	LastName    string `form:"lastName"`
	Gender      string `form:"gender"`
	BirthYear   *int   `form:"birthYear"`
	Nationality string `form:"nationality"`
	Language    string `form:"language"`
	IsAlive     *bool  `form:"isAlive"`
}

// FullName renders the display name used by the book listings.
func (a *Author) FullName() string {
	return a.FirstName + " " + a.LastName
}
