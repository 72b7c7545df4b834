package labels

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vecstat/relation"
)

var (
	classLabelOrder  = []relation.Kind{relation.KindClassLabel, relation.KindLabelList, relation.KindString}
	objectLabelOrder = []relation.Kind{relation.KindLabelList, relation.KindString, relation.KindClassLabel}
)

// GuessClassLabelRepresentation returns the string view of the first label
// relation of db, probing class labels, then label lists, then strings.
func GuessClassLabelRepresentation(db relation.Database) (relation.Relation[string], error) {
	return guess(db, classLabelOrder)
}

// GuessObjectLabelRepresentation returns the string view of the first label
// relation of db, probing label lists, then strings, then class labels.
func GuessObjectLabelRepresentation(db relation.Database) (relation.Relation[string], error) {
	return guess(db, objectLabelOrder)
}

func guess(db relation.Database, order []relation.Kind) (relation.Relation[string], error) {
	for _, kind := range order {
		r, err := db.Relation(kind)
		if errors.Is(err, relation.ErrNoSupportedDataType) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("probe %s relation: %w", kind, err)
		}
		return relation.ConvertToStringView(r), nil
	}
	return nil, fmt.Errorf("%w: no label-like representation was found", relation.ErrNoSupportedDataType)
}
