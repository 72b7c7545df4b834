package labels

import (
	"cmp"
	"regexp"
	"slices"

	"github.com/hupe1980/vecstat/ids"
	"github.com/hupe1980/vecstat/label"
	"github.com/hupe1980/vecstat/relation"
)

// ObjectsByLabelMatch returns the identifiers whose object label matches
// pattern in full, in the iteration order of the label relation. A nil
// pattern matches nothing. The pattern is re-anchored from its source text
// with the default syntax, so flags of regexp.CompilePOSIX are not kept.
func ObjectsByLabelMatch(db relation.Database, pattern *regexp.Regexp) (*ids.ArrayIDs, error) {
	view, err := GuessObjectLabelRepresentation(db)
	if err != nil {
		return nil, err
	}
	out := ids.NewArray()
	if pattern == nil {
		return out, nil
	}
	full, err := regexp.Compile(`^(?:` + pattern.String() + `)$`)
	if err != nil {
		return nil, err
	}
	for id := range view.IterIDs() {
		s, err := view.Get(id)
		if err != nil {
			return nil, err
		}
		if full.MatchString(s) {
			out.Add(id)
		}
	}
	return out, nil
}

// ClassLabels returns the distinct class labels of r in ascending order.
func ClassLabels(r relation.Relation[label.ClassLabel]) ([]label.ClassLabel, error) {
	all, err := relation.Collect(r)
	if err != nil {
		return nil, err
	}
	all = slices.DeleteFunc(all, func(l label.ClassLabel) bool { return l == nil })
	slices.SortStableFunc(all, compare)
	return slices.CompactFunc(all, func(a, b label.ClassLabel) bool {
		return compare(a, b) == 0
	}), nil
}

// ClassLabelsOf returns the distinct class labels of the class label relation
// of db.
func ClassLabelsOf(db relation.Database) ([]label.ClassLabel, error) {
	r, err := relation.RelationOf[label.ClassLabel](db, relation.KindClassLabel)
	if err != nil {
		return nil, err
	}
	return ClassLabels(r)
}

// ClassMembers groups the identifiers of a label view by label. Use
// GuessClassLabelRepresentation to obtain the view from a database.
func ClassMembers(view relation.Relation[string]) (map[string]*ids.BitmapIDs, error) {
	out := make(map[string]*ids.BitmapIDs)
	for id := range view.IterIDs() {
		s, err := view.Get(id)
		if err != nil {
			return nil, err
		}
		set, ok := out[s]
		if !ok {
			set = ids.NewBitmap()
			out[s] = set
		}
		set.Add(id)
	}
	return out, nil
}

func compare(a, b label.ClassLabel) int {
	if c := a.Compare(b); c != 0 {
		return c
	}
	return cmp.Compare(a.String(), b.String())
}
