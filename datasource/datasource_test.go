package datasource

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hupe1980/vecstat/blobstore"
	"github.com/hupe1980/vecstat/ids"
	"github.com/hupe1980/vecstat/label"
	"github.com/hupe1980/vecstat/relation"
	"github.com/hupe1980/vecstat/vector"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# x y class
1.0 2.0 red
// a comment

1.5 1.8 red
8.0 9.0 blue
`

func TestParse_LabelList(t *testing.T) {
	db, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, []relation.Kind{relation.KindVector, relation.KindLabelList}, db.Kinds())

	vr, err := relation.RelationOf[vector.Float64](db, relation.KindVector)
	require.NoError(t, err)
	assert.Equal(t, 3, vr.Size())

	vf, ok := vr.TypeInfo().(relation.VectorField)
	require.True(t, ok)
	assert.Equal(t, 2, vf.Dimensionality())

	v, err := vr.Get(2)
	require.NoError(t, err)
	assert.Equal(t, vector.Float64{8, 9}, v)

	lr, err := relation.RelationOf[label.LabelList](db, relation.KindLabelList)
	require.NoError(t, err)
	l, err := lr.Get(0)
	require.NoError(t, err)
	assert.Equal(t, label.LabelList{"red"}, l)
}

func TestParse_ClassLabelIndex(t *testing.T) {
	db, err := Parse(strings.NewReader(sample), WithClassLabelIndex(2))
	require.NoError(t, err)

	// the class field is consumed, so no label list remains
	assert.Equal(t, []relation.Kind{relation.KindVector, relation.KindClassLabel}, db.Kinds())

	cr, err := relation.RelationOf[label.ClassLabel](db, relation.KindClassLabel)
	require.NoError(t, err)
	c, err := cr.Get(2)
	require.NoError(t, err)
	assert.Equal(t, "blue", c.String())
}

func TestParse_ClassLabelNumericField(t *testing.T) {
	db, err := Parse(strings.NewReader("3 1.0 2.0\n4 5.0 6.0\n"), WithClassLabelIndex(0))
	require.NoError(t, err)

	vr, err := relation.RelationOf[vector.Float64](db, relation.KindVector)
	require.NoError(t, err)
	v, err := vr.Get(1)
	require.NoError(t, err)
	assert.Equal(t, vector.Float64{5, 6}, v)

	cr, err := relation.RelationOf[label.ClassLabel](db, relation.KindClassLabel)
	require.NoError(t, err)
	c, err := cr.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "3", c.String())
}

func TestParse_Separator(t *testing.T) {
	db, err := Parse(strings.NewReader("1.0, 2.0, a b\n3.0,4.0,c\n"), WithSeparator(","))
	require.NoError(t, err)

	lr, err := relation.RelationOf[label.LabelList](db, relation.KindLabelList)
	require.NoError(t, err)
	l, err := lr.Get(0)
	require.NoError(t, err)
	assert.Equal(t, label.LabelList{"a b"}, l)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  []Option
		check func(t *testing.T, err error)
	}{
		{
			name:  "dimension mismatch",
			input: "1 2\n1 2 3\n",
			check: func(t *testing.T, err error) {
				var dm *relation.ErrDimensionMismatch
				require.ErrorAs(t, err, &dm)
				assert.Equal(t, 2, dm.Expected)
				assert.Equal(t, 3, dm.Actual)
				assert.Contains(t, err.Error(), "line 2")
			},
		},
		{
			name:  "empty input",
			input: "# only comments\n\n",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, relation.ErrInvalidArgument)
			},
		},
		{
			name:  "no numeric fields",
			input: "a b\n",
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, relation.ErrInvalidArgument)
			},
		},
		{
			name:  "missing class field",
			input: "1 2 x\n1 2\n",
			opts:  []Option{WithClassLabelIndex(2)},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, relation.ErrInvalidArgument)
				assert.Contains(t, err.Error(), "line 2")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input), tt.opts...)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestParse_IDsFollowLineOrder(t *testing.T) {
	db, err := Parse(strings.NewReader("1\n2\n3\n"))
	require.NoError(t, err)

	vr, err := db.Relation(relation.KindVector)
	require.NoError(t, err)
	var got []ids.ID
	for id := range vr.IterIDs() {
		got = append(got, id)
	}
	assert.Equal(t, []ids.ID{0, 1, 2}, got)
}

func TestCompressionFor(t *testing.T) {
	assert.Equal(t, CompressionZSTD, CompressionFor("points.csv.zst"))
	assert.Equal(t, CompressionLZ4, CompressionFor("points.csv.lz4"))
	assert.Equal(t, CompressionNone, CompressionFor("points.csv"))
	assert.Equal(t, "zstd", CompressionZSTD.String())
}

func zstdBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

func lz4Bytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	_, err := w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestDecompress(t *testing.T) {
	data := []byte(sample)

	out, err := Decompress(zstdBytes(t, data), CompressionZSTD)
	require.NoError(t, err)
	assert.Equal(t, data, out)

	out, err = Decompress(lz4Bytes(t, data), CompressionLZ4)
	require.NoError(t, err)
	assert.Equal(t, data, out)

	_, err = Decompress([]byte("not zstd"), CompressionZSTD)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "plain.txt", []byte(sample)))
	require.NoError(t, store.Put(ctx, "points.txt.zst", zstdBytes(t, []byte(sample))))
	require.NoError(t, store.Put(ctx, "points.txt.lz4", lz4Bytes(t, []byte(sample))))
	require.NoError(t, store.Put(ctx, "forced", zstdBytes(t, []byte(sample))))

	for _, name := range []string{"plain.txt", "points.txt.zst", "points.txt.lz4"} {
		t.Run(name, func(t *testing.T) {
			db, err := Load(ctx, store, name, WithClassLabelIndex(2))
			require.NoError(t, err)
			cr, err := db.Relation(relation.KindClassLabel)
			require.NoError(t, err)
			assert.Equal(t, 3, cr.Size())
		})
	}

	t.Run("forced compression", func(t *testing.T) {
		db, err := Load(ctx, store, "forced", WithCompression(CompressionZSTD))
		require.NoError(t, err)
		vr, err := db.Relation(relation.KindVector)
		require.NoError(t, err)
		assert.Equal(t, 3, vr.Size())
	})

	t.Run("not found", func(t *testing.T) {
		_, err := Load(ctx, store, "missing.txt")
		assert.True(t, blobstore.IsNotFound(err))
	})

	t.Run("wrong compression", func(t *testing.T) {
		_, err := Load(ctx, store, "plain.txt", WithCompression(CompressionZSTD))
		require.Error(t, err)
		assert.False(t, errors.Is(err, relation.ErrInvalidArgument))
	})
}

func TestLoad_LocalStore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "points.txt"), []byte("0 0\n2 2\n"), 0o600))

	db, err := Load(context.Background(), blobstore.NewLocalStore(dir), "points.txt")
	require.NoError(t, err)

	vr, err := relation.RelationOf[vector.Float64](db, relation.KindVector)
	require.NoError(t, err)
	v, err := vr.Get(1)
	require.NoError(t, err)
	assert.Equal(t, vector.Float64{2, 2}, v)
}
