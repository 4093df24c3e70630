package entityid

import (
	"encoding"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/invopop/jsonschema"
)

const defsPrefix = "#/$defs/"

var (
	hookType = reflect.TypeOf((*interface{ JSONSchema() *jsonschema.Schema })(nil)).Elem()
	nameType = reflect.TypeOf((*interface{ schemaName() string })(nil)).Elem()
	textType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	timeType = reflect.TypeOf(time.Time{})
	uuidType = reflect.TypeOf(uuid.UUID{})
)

var exampleUUID = uuid.MustParse("c40bea18-c0c9-44b1-bd0c-43f5283e1670")

// reflector follows encoding/json: json tags name the properties and fields
// without omitempty are required. Ids are published under "<Tag>_uuid".
var reflector = &jsonschema.Reflector{
	Anonymous:                 true,
	AllowAdditionalProperties: true,
	Namer:                     schemaTypeName,
	Mapper:                    mapType,
}

// SchemaName returns the name under which the id schema of K is published.
func SchemaName[K Kind]() string {
	return fmt.Sprintf("%s_uuid", TagOf[K]())
}

func (id ID[K]) schemaName() string {
	return SchemaName[K]()
}

// JSONSchema describes the id as an opaque string.
func (id ID[K]) JSONSchema() *jsonschema.Schema {
	tag := TagOf[K]()
	return &jsonschema.Schema{
		Title:       SchemaName[K](),
		Type:        "string",
		Description: fmt.Sprintf("Unique identifier of a %s. Consists of the %q prefix and a UUID", tag, tag),
		Pattern:     publicPattern(tag),
		Examples:    []any{formatPublic(tag, exampleUUID)},
	}
}

func (i Identified[K]) schemaName() string {
	return fmt.Sprintf("%s_ided", reflect.TypeOf((*K)(nil)).Elem().Name())
}

// JSONSchema describes the record as an object with an additional "id"
// property, the layout of Identified.MarshalJSON. The id and every named
// type the record uses are published under $defs.
func (i Identified[K]) JSONSchema() *jsonschema.Schema {
	t := reflect.TypeOf((*K)(nil)).Elem()

	doc := reflector.ReflectFromType(recordShape(t))
	defs := doc.Definitions
	if defs == nil {
		defs = jsonschema.Definitions{}
	}
	record := doc
	if name, ok := strings.CutPrefix(doc.Ref, defsPrefix); ok {
		record = defs[name]
	}

	idName := SchemaName[K]()
	defs[idName] = i.id.JSONSchema()

	properties := jsonschema.NewProperties()
	properties.Set("id", &jsonschema.Schema{Ref: defsPrefix + idName})
	if record.Properties != nil {
		for pair := record.Properties.Oldest(); pair != nil; pair = pair.Next() {
			properties.Set(pair.Key, pair.Value)
		}
	}

	return &jsonschema.Schema{
		Title:       i.schemaName(),
		Type:        "object",
		Description: fmt.Sprintf("Identified version of %s", t.Name()),
		Properties:  properties,
		Required:    append([]string{"id"}, record.Required...),
		Definitions: defs,
	}
}

func schemaTypeName(t reflect.Type) string {
	if t.Kind() != reflect.Interface && t.Implements(nameType) {
		return reflect.Zero(t).Interface().(interface{ schemaName() string }).schemaName()
	}
	return ""
}

func mapType(t reflect.Type) *jsonschema.Schema {
	switch {
	case t.Implements(hookType), t == timeType:
		return nil
	case t == uuidType:
		return &jsonschema.Schema{Type: "string", Format: "uuid"}
	case t.Implements(textType) || reflect.PointerTo(t).Implements(textType):
		return &jsonschema.Schema{Type: "string"}
	case embedsItself(t, map[reflect.Type]bool{}):
		return &jsonschema.Schema{Type: "object"}
	}
	return nil
}

func publicPattern(tag Tag) string {
	var b strings.Builder
	b.WriteByte('^')
	for i := 0; i < len(tag); i++ {
		c := tag[i]
		switch {
		case 'a' <= lower(c) && lower(c) <= 'z':
			fmt.Fprintf(&b, "[%c%c]", lower(c)-'a'+'A', lower(c))
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}
	b.WriteByte(Separator)
	b.WriteString(`[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	return b.String()
}

// The reflector follows embedded structs without a cycle check, so a record
// embedding itself is flattened here first, the way encoding/json promotes
// fields: each embedded type once, shallower names win.
func recordShape(t reflect.Type) reflect.Type {
	if !embedsItself(t, map[reflect.Type]bool{}) {
		return t
	}
	var fields []reflect.StructField
	promoteFields(t, map[reflect.Type]bool{}, map[string]bool{}, &fields)
	return reflect.StructOf(fields)
}

func embedded(f reflect.StructField) (reflect.Type, bool) {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if !f.Anonymous || name != "" || f.Tag.Get("json") == "-" {
		return nil, false
	}
	t := f.Type
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t, t.Kind() == reflect.Struct
}

func embedsItself(t reflect.Type, path map[reflect.Type]bool) bool {
	if t.Kind() != reflect.Struct {
		return false
	}
	if path[t] {
		return true
	}
	path[t] = true
	defer delete(path, t)
	for i := 0; i < t.NumField(); i++ {
		if et, ok := embedded(t.Field(i)); ok && embedsItself(et, path) {
			return true
		}
	}
	return false
}

func promoteFields(t reflect.Type, seen map[reflect.Type]bool, names map[string]bool, out *[]reflect.StructField) {
	if seen[t] {
		return
	}
	seen[t] = true

	var nested []reflect.Type
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if et, ok := embedded(f); ok {
			nested = append(nested, et)
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" || !f.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		if names[name] {
			continue
		}
		names[name] = true

		jsonTag := name
		if opts != "" {
			jsonTag += "," + opts
		}
		fieldTag := fmt.Sprintf("json:%q", jsonTag)
		for _, key := range []string{"jsonschema", "jsonschema_description", "jsonschema_extras"} {
			if v, ok := f.Tag.Lookup(key); ok {
				fieldTag += fmt.Sprintf(" %s:%q", key, v)
			}
		}
		*out = append(*out, reflect.StructField{
			Name: fmt.Sprintf("F%d", len(*out)),
			Type: f.Type,
			Tag:  reflect.StructTag(fieldTag),
		})
	}
	for _, et := range nested {
		promoteFields(et, seen, names, out)
	}
}
