package storage

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"

	"github.com/pixil98/go-errors"
)

var identifierPattern = regexp.MustCompile(`^[a-zA-Z0-9-]*$`)

type ValidatingSpec interface {
	Validate() error
}

// Asset is the on-disk envelope of every content file.
type Asset[T ValidatingSpec] struct {
	Version    uint   `json:"version"`
	Identifier string `json:"id"`
	Spec       T      `json:"spec"`
}

func (a *Asset[T]) Id() string {
	return a.Identifier
}

func (a *Asset[T]) Validate() error {
	el := errors.NewErrorList()

	if a.Version == 0 {
		el.Add(fmt.Errorf("version must be set"))
	}

	if a.Identifier == "" {
		el.Add(fmt.Errorf("id must be set"))
	}

	if !identifierPattern.MatchString(a.Identifier) {
		el.Add(fmt.Errorf("id must be alphanumeric"))
	}

	if v := reflect.ValueOf(a.Spec); !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		el.Add(fmt.Errorf("spec must be set"))
	} else {
		el.Add(a.Spec.Validate())
	}

	return el.Err()
}

// Ref names another asset by id. It marshals as the bare id and is bound to
// the asset itself with Resolve.
type Ref[T ValidatingSpec] struct {
	key string
	val T
}

func NewRef[T ValidatingSpec](key string) Ref[T] {
	return Ref[T]{key: key}
}

func (r *Ref[T]) UnmarshalJSON(b []byte) error {
	return json.Unmarshal(b, &r.key)
}

func (r Ref[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.key)
}

func (r Ref[T]) Validate() error {
	if r.key == "" {
		return fmt.Errorf("%s id is required", typeName[T]())
	}
	return nil
}

// Resolve looks the referenced asset up in st.
func (r *Ref[T]) Resolve(st Storer[T]) error {
	r.val = st.Get(r.key)
	if v := reflect.ValueOf(r.val); !v.IsValid() || v.IsNil() {
		return fmt.Errorf("%s %q not found", typeName[T](), r.key)
	}
	return nil
}

func (r Ref[T]) Key() string {
	return r.key
}

// Get returns the resolved asset, or the zero value before Resolve.
func (r Ref[T]) Get() T {
	return r.val
}

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
