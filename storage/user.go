package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DillonStreator/typedid/domain"
	"github.com/DillonStreator/typedid/entityid"
	"github.com/eleanorhealth/milo"
	"github.com/go-pg/pg/v10"
)

var ErrNotFound = errors.New("storage: not found")

type user struct {
	tableName struct{} `pg:"users"`

	ID         entityid.ID[domain.User] `pg:"id,pk,type:uuid"`
	Email      string                   `pg:"email,unique,notnull"`
	Password   string                   `pg:"password,notnull"`
	CreatedAt  time.Time                `pg:"created_at"`
	LastSeenAt time.Time                `pg:"last_seen_at"`
}

var _ milo.Model = (*user)(nil)

func (u *user) FromEntity(e interface{}) error {
	entity, ok := e.(*entityid.Identified[domain.User])
	if !ok {
		return fmt.Errorf("storage: unexpected user entity %T", e)
	}
	record := entity.Entity()

	u.ID = entity.ID()
	u.Email = record.Email
	u.Password = record.Password
	u.CreatedAt = record.CreatedAt
	u.LastSeenAt = record.LastSeenAt

	return nil
}

func (u *user) ToEntity() (interface{}, error) {
	entity := entityid.NewIdentified(u.ID, domain.User{
		Email:      u.Email,
		Password:   u.Password,
		CreatedAt:  u.CreatedAt,
		LastSeenAt: u.LastSeenAt,
	})
	return &entity, nil
}

// Users persists users through milo.
type Users struct {
	store *milo.Store
}

func NewUsers(store *milo.Store) *Users {
	return &Users{store: store}
}

func (u *Users) Save(ctx context.Context, user *entityid.Identified[domain.User]) error {
	return u.store.Save(ctx, user)
}

func (u *Users) FindByID(ctx context.Context, id entityid.ID[domain.User]) (entityid.Identified[domain.User], error) {
	var found entityid.Identified[domain.User]
	err := u.store.FindByID(&found, id.DBID())
	if errors.Is(err, pg.ErrNoRows) || (err == nil && found.ID().IsZero()) {
		return found, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return found, err
	}
	return found, nil
}
