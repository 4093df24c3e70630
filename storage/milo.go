package storage

import (
	"reflect"

	"github.com/DillonStreator/typedid/domain"
	"github.com/DillonStreator/typedid/entityid"
	"github.com/eleanorhealth/milo"
)

// MiloEntityModelMap is used by Milo to map identified entities to storage
// models. Users are only looked up by id, so no field columns are mapped.
var MiloEntityModelMap = milo.EntityModelMap{
	reflect.TypeOf(&entityid.Identified[domain.User]{}): milo.ModelConfig{
		Model: reflect.TypeOf(&user{}),
	},
}
