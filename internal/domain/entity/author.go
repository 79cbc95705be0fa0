package entity

import "github.com/google/uuid"

// Author represents a writer who contributes articles to magazines.
// The name is fixed at construction and has no setter.
type Author struct {
	ID   uuid.UUID
	name string
}

// NewAuthor creates an Author after checking that name is not blank.
func NewAuthor(name string) (*Author, error) {
	if err := ValidateNotBlank("name", name); err != nil {
		return nil, err
	}
	return &Author{ID: uuid.New(), name: name}, nil
}

// Name returns the author's name.
func (a *Author) Name() string {
	return a.name
}

// String implements fmt.Stringer.
func (a *Author) String() string {
	return a.name
}
