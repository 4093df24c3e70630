package entityid

import "github.com/google/uuid"

// New returns a random (version 4) id of kind K.
func New[K Kind]() ID[K] {
	return ID[K]{raw: uuid.New()}
}

// NewV7 returns a time ordered (version 7) id of kind K.
func NewV7[K Kind]() (ID[K], error) {
	raw, err := uuid.NewV7()
	if err != nil {
		return ID[K]{}, err
	}
	return ID[K]{raw: raw}, nil
}
