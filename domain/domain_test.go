package domain

import (
	"testing"

	"github.com/DillonStreator/typedid/entityid"
	"github.com/stretchr/testify/assert"
)

func TestTodosFindByID(t *testing.T) {
	first := entityid.NewIdentified(entityid.New[Todo](), Todo{Title: "first"})
	second := entityid.NewIdentified(entityid.New[Todo](), Todo{Title: "second"})
	todos := Todos{first, second}

	got, ok := todos.FindByID(second.ID())
	assert.True(t, ok)
	assert.Equal(t, "second", got.Entity().Title)
	assert.Equal(t, 1, todos.FindIndexByID(second.ID()))

	_, ok = todos.FindByID(entityid.New[Todo]())
	assert.False(t, ok)
	assert.Equal(t, -1, todos.FindIndexByID(entityid.New[Todo]()))
}

func TestTagsRegistered(t *testing.T) {
	for _, tag := range []entityid.Tag{"user", "TODO"} {
		_, ok := entityid.Lookup(tag)
		assert.True(t, ok, "tag %s", tag)
	}
}
