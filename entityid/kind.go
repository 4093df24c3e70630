package entityid

// Tag is the short, human readable class label of an entity kind, used as
// the prefix of the public form of its identifiers.
type Tag string

// Kind is implemented by every record type that can be identified.
//
// EntityTag is called on the zero value of the type, so it must be declared
// with a value receiver and return the same constant for the lifetime of the
// program:
//
//	func (Customer) EntityTag() entityid.Tag { return "Cust" }
type Kind interface {
	EntityTag() Tag
}

// TagOf returns the tag of the kind K.
func TagOf[K Kind]() Tag {
	var k K
	return k.EntityTag()
}

func (t Tag) String() string {
	return string(t)
}

// Validate reports whether t can be used as a prefix: it must be non empty
// and made of ASCII letters and digits only.
func (t Tag) Validate() error {
	if t == "" {
		return &TagError{Tag: t, Err: ErrInvalidTag}
	}
	for i := 0; i < len(t); i++ {
		if !isAlnum(t[i]) {
			return &TagError{Tag: t, Err: ErrInvalidTag}
		}
	}
	return nil
}

// Matches reports whether s equals t, ignoring ASCII case.
func (t Tag) Matches(s string) bool {
	if len(s) != len(t) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if lower(s[i]) != lower(t[i]) {
			return false
		}
	}
	return true
}

func isAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
