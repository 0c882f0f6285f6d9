package task

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/rmoura/agenda-api/internal/models"
	"github.com/rmoura/agenda-api/internal/store"
	"github.com/rmoura/agenda-api/internal/timefmt"
)

// Store defines the interface for task persistence.
type Store interface {
	Insert(ctx context.Context, t *models.Task) (string, error)
	ListByOwner(ctx context.Context, userID string) ([]models.Task, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	Update(ctx context.Context, id string, patch models.TaskPatch) error
	Delete(ctx context.Context, id string) error
}

// ListCache defines the interface for the per-owner list cache.
type ListCache interface {
	GetList(ctx context.Context, userID string) ([]models.TaskView, bool)
	SetList(ctx context.Context, userID string, views []models.TaskView) error
	Invalidate(ctx context.Context, userID string) error
}

// Service implements the task lifecycle: create, list by owner, partial
// update, delete. A nil cache disables caching.
type Service struct {
	store Store
	cache ListCache
}

func NewService(st Store, cache ListCache) *Service {
	return &Service{store: st, cache: cache}
}

// Create validates and persists a new task, returning the assigned id. The
// horario field must be in display format.
func (s *Service) Create(ctx context.Context, req models.CreateTaskRequest) (string, error) {
	if req.UserID == "" || req.Titulo == "" || req.Descricao == "" || req.Horario == "" {
		return "", ErrMissingFields
	}
	horario, err := timefmt.Parse(req.Horario)
	if err != nil {
		return "", err
	}
	id, err := s.store.Insert(ctx, &models.Task{
		UserID:    req.UserID,
		Titulo:    req.Titulo,
		Descricao: req.Descricao,
		Horario:   horario,
	})
	if err != nil {
		return "", fmt.Errorf("create task: %w", err)
	}
	s.invalidate(ctx, req.UserID)
	return id, nil
}

// ListByOwner returns the owner's tasks with horario rendered to display
// format. An owner with no tasks yields ErrNoTasks, not an empty list.
func (s *Service) ListByOwner(ctx context.Context, userID string) ([]models.TaskView, error) {
	if s.cache != nil {
		if views, ok := s.cache.GetList(ctx, userID); ok {
			return views, nil
		}
	}

	tasks, err := s.store.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if len(tasks) == 0 {
		return nil, ErrNoTasks
	}

	views := make([]models.TaskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, models.TaskView{
			ID:        t.ID.Hex(),
			UserID:    t.UserID,
			Titulo:    t.Titulo,
			Descricao: t.Descricao,
			Horario:   timefmt.Format(t.Horario),
		})
	}

	if s.cache != nil {
		if err := s.cache.SetList(ctx, userID, views); err != nil {
			log.Printf("cache set tarefas %s: %v", userID, err)
		}
	}
	return views, nil
}

// Update merges the provided fields into an existing task. Horario, when
// provided, uses the same display format as create. Id and owner are
// immutable.
func (s *Service) Update(ctx context.Context, id string, req models.UpdateTaskRequest) error {
	if req.Titulo == "" && req.Descricao == "" && req.Horario == "" {
		return ErrNoFieldsProvided
	}

	// Existence decides before the horario is even looked at, so a missing
	// id always answers not-found.
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("update task: %w", err)
	}

	patch := models.TaskPatch{Titulo: req.Titulo, Descricao: req.Descricao}
	if req.Horario != "" {
		horario, err := timefmt.Parse(req.Horario)
		if err != nil {
			return err
		}
		patch.Horario = &horario
	}
	if err := s.store.Update(ctx, id, patch); err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	s.invalidate(ctx, existing.UserID)
	return nil
}

// Delete checks existence first so a missing id answers deterministically
// with ErrNotFound instead of a silent no-op.
func (s *Service) Delete(ctx context.Context, id string) error {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete task: %w", err)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	s.invalidate(ctx, existing.UserID)
	return nil
}

func (s *Service) invalidate(ctx context.Context, userID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, userID); err != nil {
		log.Printf("cache invalidate tarefas %s: %v", userID, err)
	}
}
