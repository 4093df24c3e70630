package domain

import (
	"time"

	"github.com/DillonStreator/typedid/entityid"
)

func init() {
	entityid.MustRegister[User]()
	entityid.MustRegister[Todo]()
}

type User struct {
	Email      string    `json:"email"`
	Password   string    `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
	LastSeenAt time.Time `json:"lastSeenAt"`
}

func (User) EntityTag() entityid.Tag { return "User" }

type Todo struct {
	UserID      entityid.ID[User] `json:"userId"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Completed   bool              `json:"completed"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

func (Todo) EntityTag() entityid.Tag { return "Todo" }

type Todos []entityid.Identified[Todo]

func (todos Todos) FindByID(id entityid.ID[Todo]) (entityid.Identified[Todo], bool) {
	if index := todos.FindIndexByID(id); index != -1 {
		return todos[index], true
	}
	return entityid.Identified[Todo]{}, false
}

func (todos Todos) FindIndexByID(id entityid.ID[Todo]) int {
	for i, todo := range todos {
		if todo.ID() == id {
			return i
		}
	}
	return -1
}
