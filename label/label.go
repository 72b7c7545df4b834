// Package label defines the label value types stored in label relations.
package label

import (
	"cmp"
	"slices"
	"strings"
)

// ClassLabel is a class assignment of an object.
type ClassLabel interface {
	// String returns the display name of the class.
	String() string
	// Compare orders class labels; it returns -1, 0 or +1.
	Compare(other ClassLabel) int
}

// SimpleClassLabel is a class label identified by its name.
type SimpleClassLabel string

// NewClassLabel creates a SimpleClassLabel.
func NewClassLabel(name string) SimpleClassLabel {
	return SimpleClassLabel(name)
}

func (l SimpleClassLabel) String() string { return string(l) }

// Compare implements ClassLabel. Labels of other implementations are
// compared by their string form.
func (l SimpleClassLabel) Compare(other ClassLabel) int {
	if o, ok := other.(SimpleClassLabel); ok {
		return cmp.Compare(string(l), string(o))
	}
	return cmp.Compare(l.String(), other.String())
}

// HierarchicalClassLabel is a class label with a path of names, such as
// "animal.mammal.cat".
type HierarchicalClassLabel struct {
	Names     []string
	Separator string
}

// ParseHierarchicalClassLabel splits s on sep.
func ParseHierarchicalClassLabel(s, sep string) HierarchicalClassLabel {
	return HierarchicalClassLabel{Names: strings.Split(s, sep), Separator: sep}
}

// Depth returns the number of levels.
func (l HierarchicalClassLabel) Depth() int { return len(l.Names) }

func (l HierarchicalClassLabel) String() string {
	return strings.Join(l.Names, l.Separator)
}

// Compare implements ClassLabel. Levels are compared in order; a prefix
// sorts first.
func (l HierarchicalClassLabel) Compare(other ClassLabel) int {
	o, ok := other.(HierarchicalClassLabel)
	if !ok {
		return cmp.Compare(l.String(), other.String())
	}
	for i := 0; i < len(l.Names) && i < len(o.Names); i++ {
		if c := cmp.Compare(l.Names[i], o.Names[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(l.Names), len(o.Names))
}

// LabelList is the list of free-text labels attached to an object.
type LabelList []string

// String joins the labels with single spaces.
func (l LabelList) String() string {
	return strings.Join(l, " ")
}

// Contains reports whether name is one of the labels.
func (l LabelList) Contains(name string) bool {
	return slices.Contains(l, name)
}
