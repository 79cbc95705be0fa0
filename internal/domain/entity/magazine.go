package entity

import "github.com/google/uuid"

// Magazine represents a publication that articles appear in.
// Unlike an article title, both name and category may be changed after
// construction; every change is validated with the construction rules.
type Magazine struct {
	ID       uuid.UUID
	name     string
	category string
}

// NewMagazine creates a Magazine after validating name (2-16 characters)
// and category (non-blank).
func NewMagazine(name, category string) (*Magazine, error) {
	m := &Magazine{ID: uuid.New()}
	if err := m.SetName(name); err != nil {
		return nil, err
	}
	if err := m.SetCategory(category); err != nil {
		return nil, err
	}
	return m, nil
}

// Name returns the magazine's name.
func (m *Magazine) Name() string {
	return m.name
}

// Category returns the magazine's category.
func (m *Magazine) Category() string {
	return m.category
}

// SetName replaces the name. On validation failure the previous name is kept.
func (m *Magazine) SetName(name string) error {
	if err := ValidateLength("name", name, MagazineNameMinLength, MagazineNameMaxLength); err != nil {
		return err
	}
	m.name = name
	return nil
}

// SetCategory replaces the category. On validation failure the previous category is kept.
func (m *Magazine) SetCategory(category string) error {
	if err := ValidateNotBlank("category", category); err != nil {
		return err
	}
	m.category = category
	return nil
}

// String implements fmt.Stringer.
func (m *Magazine) String() string {
	return m.name
}
