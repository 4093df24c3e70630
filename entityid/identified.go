package entityid

// Identified pairs a record with its id.
//
// Records carry no id field of their own: a record not yet stored is a plain
// K, and becomes an Identified[K] once it has been given an id. There is no
// way to build an Identified without an id.
type Identified[K Kind] struct {
	id     ID[K]
	entity K
}

// NewIdentified returns entity identified by id.
func NewIdentified[K Kind](id ID[K], entity K) Identified[K] {
	return Identified[K]{id: id, entity: entity}
}

func (i Identified[K]) ID() ID[K] {
	return i.id
}

// Entity returns a copy of the record.
func (i Identified[K]) Entity() K {
	return i.entity
}

// Record gives access to the record in place.
func (i *Identified[K]) Record() *K {
	return &i.entity
}

// Take returns the record, dropping the id.
func (i Identified[K]) Take() K {
	return i.entity
}

func (i Identified[K]) Dismantle() (ID[K], K) {
	return i.id, i.entity
}

// Equal reports whether both values have the same id. Records are not
// compared.
func (i Identified[K]) Equal(other Identified[K]) bool {
	return i.id == other.id
}

func (i Identified[K]) String() string {
	return i.id.String()
}
