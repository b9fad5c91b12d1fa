package core

// Tag names the capability a wrapper type presents. It is fixed per wrapper
// type and never derived from the wrapped value.
type Tag uint8

const (
	TagTrait1 Tag = iota
	TagTrait2

	tagCount = iota
)

// Tags lists every Tag in declaration order.
func Tags() []Tag { return []Tag{TagTrait1, TagTrait2} }

func (t Tag) String() string {
	switch t {
	case TagTrait1:
		return "trait1"
	case TagTrait2:
		return "trait2"
	default:
		return "unknown"
	}
}

// XorTag names the ordering of a pair that covers both capabilities once.
type XorTag uint8

const (
	Traits1And2 XorTag = iota
	Traits2And1

	xorTagCount = iota
)

// XorTags lists every XorTag in declaration order.
func XorTags() []XorTag { return []XorTag{Traits1And2, Traits2And1} }

func (t XorTag) String() string {
	switch t {
	case Traits1And2:
		return "trait1,trait2"
	case Traits2And1:
		return "trait2,trait1"
	default:
		return "unknown"
	}
}

// ParseTag maps the textual name of a capability back to its Tag.
func ParseTag(s string) (Tag, bool) {
	switch s {
	case "trait1", "1":
		return TagTrait1, true
	case "trait2", "2":
		return TagTrait2, true
	}
	return 0, false
}

// The dispatch switches in pkg/dispatch enumerate exactly these sets.
// Growing either enum breaks the build here so those switches get revisited.
var (
	_ = [1]struct{}{}[tagCount-2]
	_ = [1]struct{}{}[xorTagCount-2]
)
