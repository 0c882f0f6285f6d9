package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task is a scheduled task document in the "tarefas" collection. Horario is
// stored as a BSON date; the display form DD/MM/YYYY HH:mm exists only at the
// HTTP boundary.
type Task struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"userId"`
	Titulo    string             `bson:"titulo"`
	Descricao string             `bson:"descricao"`
	Horario   time.Time          `bson:"horario"`
}

// TaskView is the task shape returned in list responses, with horario
// rendered back to display format.
type TaskView struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
	Horario   string `json:"horario"`
}

// CreateTaskRequest is the JSON body for POST /api/tarefas.
type CreateTaskRequest struct {
	UserID    string `json:"userId"`
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
	Horario   string `json:"horario"`
}

// UpdateTaskRequest is the JSON body for PUT /api/tarefas/{id}. An empty
// field means "leave unchanged".
type UpdateTaskRequest struct {
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
	Horario   string `json:"horario"`
}

// TaskPatch carries the subset of task fields an update will merge. A nil
// Horario or empty string means the field was not provided. UserID and ID are
// never part of a patch.
type TaskPatch struct {
	Titulo    string
	Descricao string
	Horario   *time.Time
}
