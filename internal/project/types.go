package project

import "breeze/internal/model"

type CreateInput struct {
	Name        string
	Description string
	Status      string
}

type CreateOutput struct {
	Project model.Project
}

type ListOutput struct {
	Projects []model.Project
}

type DetailOutput struct {
	Project model.Project
}

type DeleteOutput struct {
	Project      model.Project
	TasksDeleted int
}
