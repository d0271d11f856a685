package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"
	"github.com/zeebo/blake3"

	"github.com/arloliu/e57"
	"github.com/arloliu/e57/format"
)

// InfoCmd prints the file header.
type InfoCmd struct {
	Path string `arg:"" help:"E57 file" type:"existingfile"`
}

func (c *InfoCmd) Run(ctx *kong.Context, g *Globals) error {
	ct, err := g.open(c.Path)
	if err != nil {
		return err
	}
	defer ct.Close()

	h := ct.Header()
	geo := ct.Geometry()

	text, err := ct.ReadMetadataText()
	if err != nil {
		return err
	}
	digest := blake3.Sum256([]byte(text))

	streams, err := ct.ListPointStreams()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(ctx.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "signature:\t%s\n", h.SignatureString())
	fmt.Fprintf(w, "version:\t%d.%d\n", h.MajorVersion, h.MinorVersion)
	fmt.Fprintf(w, "physical length:\t%d (%s)\n", h.FilePhysicalLength, humanize.IBytes(h.FilePhysicalLength))
	fmt.Fprintf(w, "page size:\t%d (%d payload + 4 checksum)\n", geo.PageSize, geo.PageContent)
	fmt.Fprintf(w, "pages:\t%s\n", humanize.Comma(int64(geo.PageCount(h.FilePhysicalLength)))) //nolint: gosec
	fmt.Fprintf(w, "metadata offset:\t%d\n", h.XMLPhysicalOffset)
	fmt.Fprintf(w, "metadata length:\t%d (%s)\n", h.XMLLogicalLength, humanize.IBytes(h.XMLLogicalLength))
	fmt.Fprintf(w, "metadata blake3:\t%s\n", hex.EncodeToString(digest[:]))
	fmt.Fprintf(w, "point streams:\t%d\n", len(streams))

	return w.Flush()
}

// XMLCmd dumps the metadata document.
type XMLCmd struct {
	Path     string `arg:"" help:"E57 file" type:"existingfile"`
	Out      string `short:"o" help:"Write to this file instead of stdout" type:"path"`
	Compress string `help:"Compression: ${enum}" enum:"none,zstd,s2,lz4" default:"none"`
}

func (c *XMLCmd) Run(ctx *kong.Context, g *Globals) error {
	compression, ok := format.ParseCompressionType(c.Compress)
	if !ok {
		return fmt.Errorf("unknown compression %q", c.Compress)
	}

	ct, err := g.open(c.Path)
	if err != nil {
		return err
	}
	defer ct.Close()

	var w io.Writer = ctx.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	stats, err := ct.ExportMetadata(w, compression)
	if err != nil {
		return err
	}

	if compression != format.CompressionNone {
		fmt.Fprintf(ctx.Stderr, "%s: %s -> %s (%.1f%% saved)\n", compression,
			humanize.IBytes(uint64(stats.OriginalSize)), humanize.IBytes(uint64(stats.CompressedSize)), //nolint: gosec
			stats.SpaceSavings())
	}

	return nil
}

// StreamsCmd lists point streams.
type StreamsCmd struct {
	Path    string `arg:"" help:"E57 file" type:"existingfile"`
	Headers bool   `default:"true" negatable:"" help:"Decode the section, data packet and index packet headers"`
}

func (c *StreamsCmd) Run(ctx *kong.Context, g *Globals) error {
	ct, err := g.open(c.Path)
	if err != nil {
		return err
	}
	defer ct.Close()

	streams, err := ct.ListPointStreams()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(ctx.Stdout, 0, 0, 2, ' ', 0)
	for i := range streams {
		s := &streams[i]
		fmt.Fprintf(w, "%s\tname=%q\tguid=%s\trecords=%s\toffset=%d\n",
			s.Path, s.Name, s.GUID, humanize.Comma(int64(s.RecordCount)), s.FileOffset) //nolint: gosec

		for _, f := range s.Fields {
			bits, err := f.BitWidth()
			if err != nil {
				fmt.Fprintf(w, "  %s\t%s\t-\t%v\n", f.Name, f.Type, err)
				continue
			}
			fmt.Fprintf(w, "  %s\t%s\t%d bits\t\n", f.Name, f.Type, bits)
		}

		if !c.Headers {
			continue
		}

		rs, err := ct.ResolveStream(*s)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "  section\tlength=%d\tdata=%d\tindex=%d\n",
			rs.Section.SectionLogicalLength, rs.Section.DataPhysicalOffset, rs.Section.IndexPhysicalOffset)
		fmt.Fprintf(w, "  data packet\tlength=%d\tbytestreams=%v\t\n",
			rs.DataPacket.Header.LogicalLength(), rs.DataPacket.BytestreamBufferLengths)
		fmt.Fprintf(w, "  index packet\toffset=%d\tentries=%d\tlevel=%d\n",
			rs.IndexPacketOffset, rs.IndexPacket.EntryCount, rs.IndexPacket.IndexLevel)
	}

	return w.Flush()
}

// BitwidthCmd computes a packed field width.
type BitwidthCmd struct {
	Minimum int64 `arg:"" help:"Declared minimum"`
	Maximum int64 `arg:"" help:"Declared maximum"`
}

func (c *BitwidthCmd) Run(ctx *kong.Context) error {
	bits, err := e57.ComputeBitWidth(c.Minimum, c.Maximum)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(ctx.Stdout, bits)

	return err
}
