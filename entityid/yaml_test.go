package entityid_test

import (
	"testing"

	"github.com/DillonStreator/typedid/entityid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestIDYAML(t *testing.T) {
	id := entityid.MustParse[Customer](customerPublic)

	b, err := yaml.Marshal(map[string]entityid.ID[Customer]{"customer": id})
	require.NoError(t, err)
	assert.Equal(t, "customer: "+customerPublic+"\n", string(b))

	var got map[string]entityid.ID[Customer]
	require.NoError(t, yaml.Unmarshal([]byte("customer: CUST_EC2BA151-7ACF-43A9-BB98-6F5331992F42\n"), &got))
	assert.Equal(t, id, got["customer"])

	err = yaml.Unmarshal([]byte("customer: Plan_"+customerUUID+"\n"), &got)
	assert.ErrorIs(t, err, entityid.ErrPrefixMismatch)

	err = yaml.Unmarshal([]byte("customer: [1, 2]\n"), &got)
	assert.ErrorIs(t, err, entityid.ErrMalformedValue)
}

func TestIdentifiedYAML(t *testing.T) {
	customer := entityid.NewIdentified(entityid.MustParse[Customer](customerPublic), Customer{Name: "Alfred"})

	b, err := yaml.Marshal(customer)
	require.NoError(t, err)
	assert.Equal(t, "id: "+customerPublic+"\nname: Alfred\n", string(b))

	var got entityid.Identified[Customer]
	require.NoError(t, yaml.Unmarshal(b, &got))
	assert.Equal(t, customer, got)
}

func TestIdentifiedYAMLErrors(t *testing.T) {
	var got entityid.Identified[Customer]

	err := yaml.Unmarshal([]byte("name: Alfred\n"), &got)
	assert.ErrorIs(t, err, entityid.ErrMissingIdentifierField)

	err = yaml.Unmarshal([]byte("id: Plan_"+customerUUID+"\nname: Alfred\n"), &got)
	assert.ErrorIs(t, err, entityid.ErrPrefixMismatch)

	err = yaml.Unmarshal([]byte("- id\n"), &got)
	assert.Error(t, err)
}

func TestIdentifiedYAMLAliases(t *testing.T) {
	t.Run("aliased id", func(t *testing.T) {
		doc := "- id: &x " + customerPublic + "\n  name: A\n- id: *x\n  name: B\n"

		var got []entityid.Identified[Customer]
		require.NoError(t, yaml.Unmarshal([]byte(doc), &got))
		require.Len(t, got, 2)
		assert.Equal(t, customerPublic, got[1].ID().String())
		assert.Equal(t, "B", got[1].Entity().Name)
	})

	t.Run("id through a merge key", func(t *testing.T) {
		doc := "base: &base\n  id: " + customerPublic + "\n  name: A\n" +
			"customer:\n  <<: *base\n  name: B\n"

		var got struct {
			Customer entityid.Identified[Customer] `yaml:"customer"`
		}
		require.NoError(t, yaml.Unmarshal([]byte(doc), &got))
		assert.Equal(t, customerPublic, got.Customer.ID().String())
		assert.Equal(t, "B", got.Customer.Entity().Name)
	})
}
