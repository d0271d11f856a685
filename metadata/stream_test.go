package metadata

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/e57/errs"
	"github.com/arloliu/e57/format"
	"github.com/arloliu/e57/internal/e57test"
)

func TestDocument_PointStreams(t *testing.T) {
	guid := "3f2504e0-4f89-11d3-9a0c-0305e82c3301"
	text := e57test.PointCloudXML(
		e57test.XMLStream{
			Name:        "Station 1",
			GUID:        "{" + guid + "}",
			FileOffset:  1024,
			RecordCount: 1000,
			Fields:      e57test.CartesianFields(),
		},
		e57test.XMLStream{
			Name:        "Station 2",
			GUID:        "not-a-uuid",
			FileOffset:  4096,
			RecordCount: 7,
			Fields: []e57test.XMLField{
				{Name: "cartesianX", Type: "Float", Precision: "single"},
				{Name: "cartesianY", Type: "Float"},
				{Name: "rowIndex", Type: "Integer"},
			},
		},
	)

	doc, err := Parse(text)
	require.NoError(t, err)

	streams, err := doc.PointStreams()
	require.NoError(t, err)
	require.Len(t, streams, 2)

	t.Run("Scaled integer stream", func(t *testing.T) {
		s := streams[0]
		require.Equal(t, uint64(1024), s.FileOffset)
		require.Equal(t, uint64(1000), s.RecordCount)
		require.Equal(t, "Station 1", s.Name)
		require.Equal(t, uuid.MustParse(guid), s.UUID)
		require.Equal(t, "/data3D/0/points", s.Path)

		names := make([]string, len(s.Fields))
		for i, f := range s.Fields {
			names[i] = f.Name
		}
		require.Equal(t, []string{"cartesianX", "cartesianY", "cartesianZ", "intensity"}, names)

		x, ok := s.Field("cartesianX")
		require.True(t, ok)
		require.Equal(t, format.ElementScaledInteger, x.Type)
		require.Equal(t, int64(-100000), x.Minimum)
		require.Equal(t, int64(100000), x.Maximum)
		require.InDelta(t, 0.001, x.Scale, 1e-12)

		width, err := x.BitWidth()
		require.NoError(t, err)
		require.Equal(t, 18, width)

		intensity, ok := s.Field("intensity")
		require.True(t, ok)
		width, err = intensity.BitWidth()
		require.NoError(t, err)
		require.Equal(t, 11, width)

		_, ok = s.Field("colorRed")
		require.False(t, ok)
	})

	t.Run("Float and default range stream", func(t *testing.T) {
		s := streams[1]
		require.Equal(t, "not-a-uuid", s.GUID)
		require.Equal(t, uuid.Nil, s.UUID)

		x, ok := s.Field("cartesianX")
		require.True(t, ok)
		require.Equal(t, format.PrecisionSingle, x.Precision)
		width, err := x.BitWidth()
		require.NoError(t, err)
		require.Equal(t, 32, width)

		y, ok := s.Field("cartesianY")
		require.True(t, ok)
		width, err = y.BitWidth()
		require.NoError(t, err)
		require.Equal(t, 64, width)

		row, ok := s.Field("rowIndex")
		require.True(t, ok)
		require.Equal(t, int64(math.MinInt64), row.Minimum)
		require.Equal(t, int64(math.MaxInt64), row.Maximum)
		width, err = row.BitWidth()
		require.NoError(t, err)
		require.Equal(t, 64, width)
	})
}

func TestDocument_PointStreams_None(t *testing.T) {
	doc, err := Parse(e57test.PointCloudXML())
	require.NoError(t, err)

	streams, err := doc.PointStreams()
	require.NoError(t, err)
	require.NotNil(t, streams)
	require.Empty(t, streams)
}

func TestDocument_PointStreams_Errors(t *testing.T) {
	wrap := func(points string) string {
		return `<e57Root type="Structure" xmlns="` + Namespace + `"><data3D type="Vector"><vectorChild type="Structure">` +
			points + `</vectorChild></data3D></e57Root>`
	}

	tests := []struct {
		name string
		text string
	}{
		{
			name: "Missing fileOffset",
			text: wrap(`<points type="CompressedVector" recordCount="1"><prototype type="Structure"/></points>`),
		},
		{
			name: "Missing recordCount",
			text: wrap(`<points type="CompressedVector" fileOffset="48"><prototype type="Structure"/></points>`),
		},
		{
			name: "Negative fileOffset",
			text: wrap(`<points type="CompressedVector" fileOffset="-1" recordCount="1"/>`),
		},
		{
			name: "Non numeric recordCount",
			text: wrap(`<points type="CompressedVector" fileOffset="48" recordCount="many"/>`),
		},
		{
			name: "Bad minimum",
			text: wrap(`<points type="CompressedVector" fileOffset="48" recordCount="1"><prototype type="Structure">` +
				`<x type="Integer" minimum="low" maximum="1"/></prototype></points>`),
		},
		{
			name: "Bad precision",
			text: wrap(`<points type="CompressedVector" fileOffset="48" recordCount="1"><prototype type="Structure">` +
				`<x type="Float" precision="half"/></prototype></points>`),
		},
		{
			name: "Unknown field type",
			text: wrap(`<points type="CompressedVector" fileOffset="48" recordCount="1"><prototype type="Structure">` +
				`<x type="Quaternion"/></prototype></points>`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(tt.text)
			require.NoError(t, err)

			_, err = doc.PointStreams()
			require.ErrorIs(t, err, errs.ErrMetadata)
		})
	}
}

func TestDocument_PointStreams_NestedPrototype(t *testing.T) {
	text := `<e57Root type="Structure" xmlns="` + Namespace + `">
  <data3D type="Vector">
    <vectorChild type="Structure">
      <points type="CompressedVector" fileOffset="48" recordCount="3">
        <prototype type="Structure">
          <normal type="Structure">
            <x type="Integer" minimum="-1" maximum="1"/>
            <y type="Integer" minimum="-1" maximum="1"/>
          </normal>
          <isValid type="Integer" minimum="0" maximum="1"/>
        </prototype>
      </points>
    </vectorChild>
  </data3D>
</e57Root>`

	doc, err := Parse(text)
	require.NoError(t, err)

	streams, err := doc.PointStreams()
	require.NoError(t, err)
	require.Len(t, streams, 1)
	require.Empty(t, streams[0].Name)
	require.Len(t, streams[0].Fields, 3)

	nx, ok := streams[0].Field("normal/x")
	require.True(t, ok)
	width, err := nx.BitWidth()
	require.NoError(t, err)
	require.Equal(t, 2, width)

	valid, ok := streams[0].Field("isValid")
	require.True(t, ok)
	width, err = valid.BitWidth()
	require.NoError(t, err)
	require.Equal(t, 1, width)
}

func TestField_BitWidth(t *testing.T) {
	t.Run("Inverted range", func(t *testing.T) {
		f := Field{Name: "x", Type: format.ElementInteger, Minimum: 10, Maximum: 5}
		_, err := f.BitWidth()
		require.ErrorIs(t, err, errs.ErrInvalidRange)
	})

	t.Run("Constant field", func(t *testing.T) {
		f := Field{Name: "x", Type: format.ElementInteger, Minimum: 7, Maximum: 7}
		width, err := f.BitWidth()
		require.NoError(t, err)
		require.Zero(t, width)
	})

	t.Run("Not packed", func(t *testing.T) {
		f := Field{Name: "label", Type: format.ElementString}
		_, err := f.BitWidth()
		require.ErrorIs(t, err, errs.ErrMetadata)
	})
}
