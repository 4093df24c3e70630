package entityid

import (
	"reflect"
	"strings"
	"sync"
)

// Registry records which type owns which tag. Registration is optional:
// ids never consult it. It exists to catch, at start up, tags that are not
// valid prefixes or that two kinds share.
type Registry struct {
	mu      sync.RWMutex
	byTag   map[string]reflect.Type // keyed by lower-cased tag
	entries []Entry
}

// Entry is one registered kind.
type Entry struct {
	Tag  Tag
	Type reflect.Type
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byTag: map[string]reflect.Type{}}
}

var defaultRegistry = NewRegistry()

// Register adds K to the process wide registry.
func Register[K Kind]() error {
	return RegisterIn[K](defaultRegistry)
}

// MustRegister is like Register but panics on error, for init functions.
func MustRegister[K Kind]() {
	if err := Register[K](); err != nil {
		panic(err)
	}
}

// RegisterIn adds K to r. Tags are compared ignoring case, as they are
// parsed. Registering the same type twice is a no-op.
func RegisterIn[K Kind](r *Registry) error {
	tag := TagOf[K]()
	if err := tag.Validate(); err != nil {
		return err
	}
	t := reflect.TypeOf((*K)(nil)).Elem()
	key := strings.ToLower(string(tag))

	r.mu.Lock()
	defer r.mu.Unlock()

	if owner, ok := r.byTag[key]; ok {
		if owner == t {
			return nil
		}
		return &TagError{Tag: tag, Other: owner.String(), Err: ErrDuplicateTag}
	}
	r.byTag[key] = t
	r.entries = append(r.entries, Entry{Tag: tag, Type: t})
	return nil
}

// Lookup returns the type registered for tag, ignoring case.
func Lookup(tag Tag) (reflect.Type, bool) {
	return defaultRegistry.Lookup(tag)
}

// Registered returns the process wide registrations.
func Registered() []Entry {
	return defaultRegistry.Entries()
}

func (r *Registry) Lookup(tag Tag) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byTag[strings.ToLower(string(tag))]
	return t, ok
}

// Entries returns the registrations in registration order.
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}
