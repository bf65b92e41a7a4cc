// Package formdata models nested multipart form payloads and encodes them.
package formdata

type Kind uint8

const (
	KindNull Kind = iota
	KindScalar
	KindFile
	KindList
	KindObject
)

type File struct {
	Name        string
	ContentType string
	Content     []byte
}

// Member is a named entry of an object. Members keep insertion order.
type Member struct {
	Name  string
	Value Value
}

// Value is a node of a payload tree: null, a scalar string, a file,
// a list of values or an object of named members.
type Value struct {
	kind    Kind
	scalar  string
	file    File
	items   []Value
	members []Member
}

func Null() Value {
	return Value{kind: KindNull}
}

func Scalar(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

func Attachment(f File) Value {
	return Value{kind: KindFile, file: f}
}

func List(items ...Value) Value {
	return Value{kind: KindList, items: items}
}

func Object(members ...Member) Value {
	return Value{kind: KindObject, members: members}
}

func Field(name string, v Value) Member {
	return Member{Name: name, Value: v}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) Scalar() string {
	return v.scalar
}

func (v Value) File() File {
	return v.file
}

func (v Value) Items() []Value {
	return v.items
}

func (v Value) Members() []Member {
	return v.members
}

// Get returns the first member called name.
func (v Value) Get(name string) (Value, bool) {
	for _, m := range v.members {
		if m.Name == name {
			return m.Value, true
		}
	}

	return Value{}, false
}

// IsEmpty reports whether v is null or an empty string.
func (v Value) IsEmpty() bool {
	return v.kind == KindNull || (v.kind == KindScalar && v.scalar == "")
}

// Prune removes null and empty-string entries at every depth of objects and
// lists. Containers left empty by pruning are kept.
func Prune(v Value) Value {
	switch v.kind {
	case KindObject:
		members := make([]Member, 0, len(v.members))

		for _, m := range v.members {
			pruned := Prune(m.Value)
			if pruned.IsEmpty() {
				continue
			}

			members = append(members, Member{Name: m.Name, Value: pruned})
		}

		return Object(members...)
	case KindList:
		items := make([]Value, 0, len(v.items))

		for _, item := range v.items {
			pruned := Prune(item)
			if pruned.IsEmpty() {
				continue
			}

			items = append(items, pruned)
		}

		return List(items...)
	default:
		return v
	}
}
