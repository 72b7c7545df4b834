package relation

// Kind identifies the semantic type of a relation's elements.
type Kind uint8

const (
	// KindInvalid represents an unknown kind.
	KindInvalid Kind = iota
	// KindVector represents numeric vectors.
	KindVector
	// KindClassLabel represents class labels.
	KindClassLabel
	// KindLabelList represents free-text label lists.
	KindLabelList
	// KindString represents plain strings.
	KindString
	// KindObject represents any other object.
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindVector:
		return "vector"
	case KindClassLabel:
		return "classlabel"
	case KindLabelList:
		return "labellist"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}
