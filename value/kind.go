package value

import (
	"strconv"
	"strings"

	"github.com/arr-ai/frozen"
	"github.com/iancoleman/strcase"
)

// Kind identifies one member of the closed set of value kinds a node may
// hold. A kind's index is also its tag in the serialized grammar.
type Kind int

// The registered kinds, in index order. EmptyKind is the reserved "no value"
// kind and always sits one past the last real kind.
const (
	IntKind Kind = iota
	FloatKind
	TextKind
	EmptyKind
)

// NumKinds is the number of kinds that carry a payload.
const NumKinds = int(EmptyKind)

func (k Kind) String() string {
	if !k.Valid() {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return registry[k].name
}

// Valid reports whether k is one of the registered kinds, Empty included.
func (k Kind) Valid() bool {
	return k >= 0 && k <= EmptyKind
}

// Kinds returns every registered kind in index order, ending with EmptyKind.
func Kinds() []Kind {
	out := make([]Kind, 0, len(registry))
	for k := range registry {
		out = append(out, Kind(k))
	}
	return out
}

//nolint:gochecknoglobals
var kindNames = func() frozen.Map[string, Kind] {
	mb := frozen.NewMapBuilder[string, Kind](len(registry))
	for k, info := range registry {
		mb.Put(info.name, Kind(k))
		for _, alias := range info.aliases {
			mb.Put(alias, Kind(k))
		}
	}
	return mb.Finish()
}()

// KindByName resolves a kind from its name or one of its aliases. Matching is
// insensitive to case and word separators, so "Int", "INT" and "int" agree.
func KindByName(name string) (Kind, bool) {
	if k, has := kindNames.Get(strcase.ToSnake(strings.TrimSpace(name))); has {
		return k, true
	}
	return EmptyKind, false
}
