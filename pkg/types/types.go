package types

import (
	"strconv"
	"strings"

	dberror "csvdb/pkg/error"
)

// Kind identifies the primitive shape of a column.
type Kind int

const (
	Bits8Kind Kind = iota
	Bits16Kind
	Bits32Kind
	Bits64Kind
	Int8Kind
	Int16Kind
	Int32Kind
	Int64Kind
	StringKind
	BoolKind
	FloatKind
	NaturalKind
	BigIntKind
	FinKind
)

// kindTokens maps every kind except FinKind to its schema token.
var kindTokens = map[Kind]string{
	Bits8Kind:   "b8",
	Bits16Kind:  "b16",
	Bits32Kind:  "b32",
	Bits64Kind:  "b64",
	Int8Kind:    "i8",
	Int16Kind:   "i16",
	Int32Kind:   "i32",
	Int64Kind:   "i64",
	StringKind:  "str",
	BoolKind:    "boolean",
	FloatKind:   "float",
	NaturalKind: "natural",
	BigIntKind:  "bigint",
}

var tokenKinds = func() map[string]Kind {
	m := make(map[string]Kind, len(kindTokens))
	for k, tok := range kindTokens {
		m[tok] = k
	}
	return m
}()

const finPrefix = "fin"

// Type is the column type of a schema position. It is a comparable value:
// two types are equal iff they describe the same column shape.
//
// An optional type wraps exactly one primitive type. Optional is idempotent,
// so an optional of an optional cannot be built.
type Type struct {
	kind     Kind
	bound    uint64 // only meaningful for FinKind
	optional bool
}

// Primitive column types.
var (
	Bits8Type   = Type{kind: Bits8Kind}
	Bits16Type  = Type{kind: Bits16Kind}
	Bits32Type  = Type{kind: Bits32Kind}
	Bits64Type  = Type{kind: Bits64Kind}
	Int8Type    = Type{kind: Int8Kind}
	Int16Type   = Type{kind: Int16Kind}
	Int32Type   = Type{kind: Int32Kind}
	Int64Type   = Type{kind: Int64Kind}
	StringType  = Type{kind: StringKind}
	BoolType    = Type{kind: BoolKind}
	FloatType   = Type{kind: FloatKind}
	NaturalType = Type{kind: NaturalKind}
	BigIntType  = Type{kind: BigIntKind}
)

// FinType returns the bounded index type whose values are 0 .. n-1.
func FinType(n uint64) Type {
	return Type{kind: FinKind, bound: n}
}

// Kind returns the primitive kind, ignoring optionality.
func (t Type) Kind() Kind {
	return t.kind
}

// Bound returns n for fin<n>, and 0 for every other kind.
func (t Type) Bound() uint64 {
	if t.kind != FinKind {
		return 0
	}
	return t.bound
}

// IsOptional reports whether empty cells are allowed.
func (t Type) IsOptional() bool {
	return t.optional
}

// Optional returns the optional form of t. It returns t unchanged if t is
// already optional.
func (t Type) Optional() Type {
	t.optional = true
	return t
}

// Inner returns the primitive type wrapped by an optional type, or t itself.
func (t Type) Inner() Type {
	t.optional = false
	return t
}

// String returns the schema token of the type, e.g. "b8", "fin5", "bigint?".
func (t Type) String() string {
	var s string
	if t.kind == FinKind {
		s = finPrefix + strconv.FormatUint(t.bound, 10)
	} else {
		s = kindTokens[t.kind]
	}
	if t.optional {
		s += "?"
	}
	return s
}

// ParseType parses a single schema token. pos is the token's 1-based
// position in the schema and is only used for error reporting.
func ParseType(pos int, text string) (Type, error) {
	if inner, ok := strings.CutSuffix(text, "?"); ok {
		t, ok := parsePrimitive(inner)
		if !ok {
			return Type{}, dberror.UnknownType(pos, text)
		}
		return t.Optional(), nil
	}

	t, ok := parsePrimitive(text)
	if !ok {
		return Type{}, dberror.UnknownType(pos, text)
	}
	return t, nil
}

func parsePrimitive(text string) (Type, bool) {
	if k, ok := tokenKinds[text]; ok {
		return Type{kind: k}, true
	}

	digits, ok := strings.CutPrefix(text, finPrefix)
	if !ok || !isDigits(digits) {
		return Type{}, false
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return Type{}, false
	}
	return FinType(n), true
}
