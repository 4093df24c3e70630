package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DillonStreator/typedid/domain"
	"github.com/DillonStreator/typedid/entityid"
	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

type todo struct {
	tableName struct{} `pg:"todos"`

	ID          entityid.ID[domain.Todo] `pg:"id,pk,type:uuid"`
	UserID      entityid.ID[domain.User] `pg:"user_id,type:uuid,notnull"`
	Title       string                   `pg:"title"`
	Description string                   `pg:"description"`
	Completed   bool                     `pg:"completed,use_zero"`
	CreatedAt   time.Time                `pg:"created_at"`
	UpdatedAt   time.Time                `pg:"updated_at"`
}

func fromTodo(t entityid.Identified[domain.Todo]) *todo {
	record := t.Entity()
	return &todo{
		ID:          t.ID(),
		UserID:      record.UserID,
		Title:       record.Title,
		Description: record.Description,
		Completed:   record.Completed,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

const selectTodos = `SELECT id, user_id, title, description, completed, created_at, updated_at FROM todos`

// Todos reads rows straight into identified todos and writes through the
// storage model.
type Todos struct {
	db orm.DB
}

func NewTodos(db orm.DB) *Todos {
	return &Todos{db: db}
}

func (s *Todos) Create(ctx context.Context, t entityid.Identified[domain.Todo]) error {
	_, err := s.db.ModelContext(ctx, fromTodo(t)).Insert()
	return err
}

func (s *Todos) Update(ctx context.Context, t entityid.Identified[domain.Todo]) error {
	res, err := s.db.ModelContext(ctx, fromTodo(t)).WherePK().Update()
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, t.ID())
	}
	return nil
}

func (s *Todos) Delete(ctx context.Context, id entityid.ID[domain.Todo]) error {
	res, err := s.db.ModelContext(ctx, (*todo)(nil)).Where("id = ?", id).Delete()
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func (s *Todos) Get(ctx context.Context, id entityid.ID[domain.Todo]) (entityid.Identified[domain.Todo], error) {
	var t entityid.Identified[domain.Todo]
	_, err := s.db.QueryOneContext(ctx, entityid.ScanRow(&t), selectTodos+` WHERE id = ?`, id)
	if errors.Is(err, pg.ErrNoRows) {
		return t, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return t, err
}

func (s *Todos) ListByUser(ctx context.Context, userID entityid.ID[domain.User]) (domain.Todos, error) {
	todos := make([]entityid.Identified[domain.Todo], 0)
	_, err := s.db.QueryContext(ctx, entityid.ScanRows(&todos), selectTodos+` WHERE user_id = ? ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	return todos, nil
}
