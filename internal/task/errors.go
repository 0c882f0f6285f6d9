package task

import "errors"

var (
	// ErrMissingFields means a required create field was absent or empty.
	ErrMissingFields = errors.New("todos os campos são obrigatórios")
	// ErrNoFieldsProvided means an update carried none of the optional fields.
	ErrNoFieldsProvided = errors.New("nenhum campo para atualizar foi fornecido")
	// ErrNotFound means no task exists with the given id.
	ErrNotFound = errors.New("tarefa não encontrada")
	// ErrNoTasks means an owner has no tasks at all; callers report it
	// distinctly from a plain empty list.
	ErrNoTasks = errors.New("nenhuma tarefa encontrada para este usuário")
)
