package entityid_test

import (
	"testing"

	"github.com/DillonStreator/typedid/entityid"
	"github.com/stretchr/testify/assert"
)

func TestIdentified(t *testing.T) {
	id := entityid.MustParse[Customer](customerPublic)
	customer := entityid.NewIdentified(id, Customer{Name: "Alfred"})

	assert.Equal(t, id, customer.ID())
	assert.Equal(t, Customer{Name: "Alfred"}, customer.Entity())
	assert.Equal(t, customerPublic, customer.String())

	customer.Record().Name = "Bruce"
	assert.Equal(t, "Bruce", customer.Entity().Name)
	assert.Equal(t, Customer{Name: "Bruce"}, customer.Take())

	gotID, gotRecord := customer.Dismantle()
	assert.Equal(t, id, gotID)
	assert.Equal(t, "Bruce", gotRecord.Name)
}

func TestIdentifiedEqual(t *testing.T) {
	id := entityid.New[Customer]()
	a := entityid.NewIdentified(id, Customer{Name: "Alfred"})
	b := entityid.NewIdentified(id, Customer{Name: "Bruce"})
	c := entityid.NewIdentified(entityid.New[Customer](), Customer{Name: "Alfred"})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
