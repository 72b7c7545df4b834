package datasource

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/vecstat/ids"
	"github.com/hupe1980/vecstat/label"
	"github.com/hupe1980/vecstat/relation"
	"github.com/hupe1980/vecstat/vector"
)

const maxLineSize = 16 << 20

// Parse reads objects from r into a database holding a vector relation of
// vector.Float64 and, when present, a label list relation and a class label
// relation over the same identifiers. Identifiers are assigned from 0 in line
// order.
func Parse(r io.Reader, optFns ...Option) (*relation.MemoryDatabase, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return parse(r, opts)
}

type record struct {
	values []float64
	labels label.LabelList
	class  string
}

func parse(r io.Reader, opts options) (*relation.MemoryDatabase, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		records   []record
		dim       = -1
		hasLabels bool
		lineNo    int
	)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		rec, err := parseLine(line, opts)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if dim < 0 {
			dim = len(rec.values)
		} else if len(rec.values) != dim {
			return nil, fmt.Errorf("line %d: %w", lineNo, &relation.ErrDimensionMismatch{Expected: dim, Actual: len(rec.values)})
		}
		hasLabels = hasLabels || len(rec.labels) > 0
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no vectors in input", relation.ErrInvalidArgument)
	}

	vr := relation.NewMemoryRelation[vector.Float64](relation.NewVectorFieldTypeInformation(dim, vector.NewFloat64))
	db := relation.NewMemoryDatabase(vr)

	var (
		lr *relation.MemoryRelation[label.LabelList]
		cr *relation.MemoryRelation[label.ClassLabel]
	)
	if hasLabels {
		lr = relation.NewMemoryRelation[label.LabelList](relation.TypeLabelList)
		db.Register(lr)
	}
	if opts.classLabelIndex >= 0 {
		cr = relation.NewMemoryRelation[label.ClassLabel](relation.TypeClassLabel)
		db.Register(cr)
	}

	for i, rec := range records {
		id := ids.ID(i)
		if err := vr.Add(id, vector.Float64(rec.values)); err != nil {
			return nil, err
		}
		if lr != nil {
			if err := lr.Add(id, rec.labels); err != nil {
				return nil, err
			}
		}
		if cr != nil {
			if err := cr.Add(id, label.NewClassLabel(rec.class)); err != nil {
				return nil, err
			}
		}
	}
	return db, nil
}

func parseLine(line string, opts options) (record, error) {
	var rec record

	fields := splitFields(line, opts.separator)
	if opts.classLabelIndex >= len(fields) {
		return rec, fmt.Errorf("%w: class label field %d missing, line has %d fields",
			relation.ErrInvalidArgument, opts.classLabelIndex, len(fields))
	}

	for i, f := range fields {
		if i == opts.classLabelIndex {
			rec.class = f
			continue
		}
		if v, err := strconv.ParseFloat(f, 64); err == nil {
			rec.values = append(rec.values, v)
		} else {
			rec.labels = append(rec.labels, f)
		}
	}
	if len(rec.values) == 0 {
		return rec, fmt.Errorf("%w: no numeric fields", relation.ErrInvalidArgument)
	}
	return rec, nil
}

func splitFields(line, sep string) []string {
	if sep == "" {
		return strings.Fields(line)
	}
	parts := strings.Split(line, sep)
	fields := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}
