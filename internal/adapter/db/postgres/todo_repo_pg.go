package postgres

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"user-todo-service/internal/domain/todo"
)

// TodoRepoPG implements the todo Repository interface using GORM.
type TodoRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewTodoRepoPG creates a new instance of TodoRepoPG.
func NewTodoRepoPG(db *gorm.DB, log *zap.Logger) *TodoRepoPG {
	return &TodoRepoPG{db: db, log: log}
}

// Create inserts a todo. is_completed and due_date take their column defaults.
func (r *TodoRepoPG) Create(ctx context.Context, f todo.Fields) (*todo.Todo, error) {
	model := TodoSchema{
		UserID:      f.UserID,
		Title:       f.Title,
		Description: f.Description,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create todo in db", zap.Error(err), zap.Int64p("user_id", f.UserID))
		return nil, storeError(r.db, "create todo", err)
	}

	r.log.Info("todo created in db", zap.Int64("id", model.ID))
	t := model.toDomain()
	return &t, nil
}

// List returns every todo row in store order.
func (r *TodoRepoPG) List(ctx context.Context) ([]todo.Todo, error) {
	var models []TodoSchema
	if err := r.db.WithContext(ctx).Find(&models).Error; err != nil {
		r.log.Error("failed to list todos from db", zap.Error(err))
		return nil, storeError(r.db, "list todos", err)
	}

	todos := make([]todo.Todo, len(models))
	for i, m := range models {
		todos[i] = m.toDomain()
	}
	return todos, nil
}

func (m TodoSchema) toDomain() todo.Todo {
	return todo.Todo{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       deref(m.Title),
		Description: m.Description,
		IsCompleted: m.IsCompleted,
		DueDate:     m.DueDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
