package e57test

import (
	"fmt"
	"strings"
)

// Namespace is the default namespace of E57 metadata documents.
const Namespace = "http://www.astm.org/COMMIT/E57/2010-e57-v1.0"

// XMLField describes one prototype child. Zero Minimum and Maximum are
// written as given; set Bounds to false to leave both attributes out.
type XMLField struct {
	Name      string
	Type      string // Integer, ScaledInteger or Float
	Minimum   int64
	Maximum   int64
	Bounds    bool
	Scale     float64
	Offset    float64
	Precision string
}

// XMLStream describes one data3D entry.
type XMLStream struct {
	Name        string
	GUID        string
	FileOffset  uint64
	RecordCount uint64
	Fields      []XMLField
}

// CartesianFields returns a typical prototype: scaled integer coordinates
// and an integer intensity.
func CartesianFields() []XMLField {
	return []XMLField{
		{Name: "cartesianX", Type: "ScaledInteger", Minimum: -100000, Maximum: 100000, Bounds: true, Scale: 0.001},
		{Name: "cartesianY", Type: "ScaledInteger", Minimum: -100000, Maximum: 100000, Bounds: true, Scale: 0.001},
		{Name: "cartesianZ", Type: "ScaledInteger", Minimum: -100000, Maximum: 100000, Bounds: true, Scale: 0.001},
		{Name: "intensity", Type: "Integer", Minimum: 0, Maximum: 2047, Bounds: true},
	}
}

// PointCloudXML renders a metadata document holding the given streams.
func PointCloudXML(streams ...XMLStream) string {
	var sb strings.Builder

	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&sb, `<e57Root type="Structure" xmlns="%s">`+"\n", Namespace)
	sb.WriteString(`  <formatName type="String"><![CDATA[ASTM E57 3D Imaging Data File]]></formatName>` + "\n")
	sb.WriteString(`  <versionMajor type="Integer">1</versionMajor>` + "\n")
	sb.WriteString(`  <versionMinor type="Integer">0</versionMinor>` + "\n")
	sb.WriteString(`  <data3D type="Vector" allowHeterogeneousChildren="1">` + "\n")

	for _, s := range streams {
		sb.WriteString(`    <vectorChild type="Structure">` + "\n")
		if s.GUID != "" {
			fmt.Fprintf(&sb, `      <guid type="String"><![CDATA[%s]]></guid>`+"\n", s.GUID)
		}
		if s.Name != "" {
			fmt.Fprintf(&sb, `      <name type="String"><![CDATA[%s]]></name>`+"\n", s.Name)
		}
		fmt.Fprintf(&sb, `      <points type="CompressedVector" fileOffset="%d" recordCount="%d">`+"\n",
			s.FileOffset, s.RecordCount)
		sb.WriteString(`        <prototype type="Structure">` + "\n")
		for _, f := range s.Fields {
			sb.WriteString("          " + fieldXML(f) + "\n")
		}
		sb.WriteString(`        </prototype>` + "\n")
		sb.WriteString(`        <codecs type="Vector" allowHeterogeneousChildren="1"/>` + "\n")
		sb.WriteString(`      </points>` + "\n")
		sb.WriteString(`    </vectorChild>` + "\n")
	}

	sb.WriteString(`  </data3D>` + "\n")
	sb.WriteString(`  <images2D type="Vector" allowHeterogeneousChildren="1"/>` + "\n")
	sb.WriteString(`</e57Root>` + "\n")

	return sb.String()
}

func fieldXML(f XMLField) string {
	var attrs strings.Builder
	fmt.Fprintf(&attrs, `type="%s"`, f.Type)
	if f.Bounds {
		fmt.Fprintf(&attrs, ` minimum="%d" maximum="%d"`, f.Minimum, f.Maximum)
	}
	if f.Scale != 0 {
		fmt.Fprintf(&attrs, ` scale="%g"`, f.Scale)
	}
	if f.Offset != 0 {
		fmt.Fprintf(&attrs, ` offset="%g"`, f.Offset)
	}
	if f.Precision != "" {
		fmt.Fprintf(&attrs, ` precision="%s"`, f.Precision)
	}

	return fmt.Sprintf("<%s %s/>", f.Name, attrs.String())
}
