// Package entityid provides identifiers typed by the kind of entity they
// identify.
//
// An ID[Customer] and an ID[Contract] are both a UUID at run time, but they
// are different types: passing one where the other is expected does not
// compile. Outside of the program, in JSON, URLs or logs, ids are prefixed
// with the tag of their kind, so that a customer id can not be mistaken for
// a contract id by a client either:
//
//	Cust_371c35ec-34d9-4315-ab31-7ea8889a419a
//
// A kind is any type with an EntityTag method:
//
//	type Customer struct {
//		Name string `json:"name"`
//	}
//
//	func (Customer) EntityTag() entityid.Tag { return "Cust" }
//
// Public ids are parsed, and their prefix checked, ignoring case:
//
//	id, err := entityid.Parse[Customer]("cust_371c35ec-34d9-4315-ab31-7ea8889a419a")
//
// In the database only the UUID is stored: ID implements the go-pg and
// database/sql column interfaces with the bare value, and ScanRow / ScanRows
// decode rows into Identified records.
//
// Records do not hold their own id. A record that has been given an id is an
// Identified[K], which encodes as the record with an extra "id" field:
//
//	{"id":"Cust_371c35ec-34d9-4315-ab31-7ea8889a419a","name":"John"}
package entityid
