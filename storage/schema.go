package storage

import (
	"github.com/go-pg/pg/v10/orm"
)

// CreateSchema creates the users and todos tables when missing.
func CreateSchema(db orm.DB) error {
	models := []interface{}{
		(*user)(nil),
		(*todo)(nil),
	}

	for _, model := range models {
		err := db.Model(model).CreateTable(&orm.CreateTableOptions{
			IfNotExists: true,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
