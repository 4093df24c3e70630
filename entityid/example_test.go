package entityid_test

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/DillonStreator/typedid/entityid"
)

func ExampleParse() {
	// From the database, the kind is given by the column.
	customerID, _ := entityid.ParseRaw[Customer]("371c35ec-34d9-4315-ab31-7ea8889a419a")
	fmt.Println(customerID)

	// From the outside, it is checked.
	_, err := entityid.Parse[Contract](customerID.String())
	fmt.Println(errors.Is(err, entityid.ErrPrefixMismatch))

	parsed, _ := entityid.Parse[Customer]("CUST_371C35EC-34D9-4315-AB31-7EA8889A419A")
	fmt.Println(parsed == customerID)
	// Output:
	// Cust_371c35ec-34d9-4315-ab31-7ea8889a419a
	// true
	// true
}

func ExampleIdentified() {
	var customer entityid.Identified[Customer]
	_ = json.Unmarshal([]byte(`{"id":"Cust_371c35ec-34d9-4315-ab31-7ea8889a419a","name":"John"}`), &customer)
	fmt.Println(customer.Entity().Name)

	customer.Record().Name = "Johnny"
	b, _ := json.Marshal(customer)
	fmt.Println(string(b))
	// Output:
	// John
	// {"id":"Cust_371c35ec-34d9-4315-ab31-7ea8889a419a","name":"Johnny"}
}

func ExampleParseOneOf() {
	pet, _ := entityid.ParseOneOf[PetID]("Dog_453d6f99-ce09-4dd7-bde9-73c1d2dbc1d0")
	if dog, ok := entityid.As[Dog](pet); ok {
		fmt.Println("dog", dog.DBID())
	}
	// Output:
	// dog 453d6f99-ce09-4dd7-bde9-73c1d2dbc1d0
}
