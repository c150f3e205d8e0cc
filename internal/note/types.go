package note

import "breeze/internal/model"

type CreateInput struct {
	Title   string
	Content string
}

// UpdateInput changes only the non-empty fields.
type UpdateInput struct {
	ID      string
	Title   string
	Content string
}

type CreateOutput struct {
	Note model.Note
}

type ListOutput struct {
	Notes []model.Note
}

type UpdateOutput struct {
	Note model.Note
}

type DeleteOutput struct {
	Note model.Note
}
