package container

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arloliu/e57/metadata"
	"github.com/arloliu/e57/section"
)

// ResolvedStream is a point stream together with the binary headers it
// points to.
type ResolvedStream struct {
	Stream      metadata.PointStream
	Section     section.CompressedVectorSectionHeader
	DataPacket  section.DataPacket
	IndexPacket section.IndexPacketHeader
	// IndexPacketOffset is the physical offset the index packet was read
	// from: the first data packet's start advanced by its logical length.
	IndexPacketOffset uint64
}

// Resolve lists the point streams and decodes, for each, its section
// header, its first data packet and the index packet that follows it.
//
// Returns:
//   - []ResolvedStream: one entry per point stream in document order
//   - error: the first metadata, read or discriminant error; a stream whose
//     structures do not carry the expected tags fails the whole call
func (c *Container) Resolve() ([]ResolvedStream, error) {
	streams, err := c.ListPointStreams()
	if err != nil {
		return nil, err
	}

	out := make([]ResolvedStream, 0, len(streams))
	for i := range streams {
		rs, err := c.ResolveStream(streams[i])
		if err != nil {
			return nil, fmt.Errorf("point stream %s: %w", streams[i].Path, err)
		}
		out = append(out, rs)
	}

	return out, nil
}

// ResolveStream decodes the binary headers of one point stream.
func (c *Container) ResolveStream(stream metadata.PointStream) (ResolvedStream, error) {
	rs := ResolvedStream{Stream: stream}

	var err error
	if rs.Section, _, err = c.ReadSectionHeader(stream.FileOffset); err != nil {
		return ResolvedStream{}, err
	}

	dataOffset := rs.Section.DataPhysicalOffset
	if rs.DataPacket, _, err = c.ReadDataPacket(dataOffset); err != nil {
		return ResolvedStream{}, err
	}

	if rs.IndexPacketOffset, err = c.geometry.Advance(dataOffset, rs.DataPacket.Header.LogicalLength()); err != nil {
		return ResolvedStream{}, err
	}

	if rs.IndexPacket, _, err = c.ReadIndexPacketHeader(rs.IndexPacketOffset); err != nil {
		return ResolvedStream{}, err
	}

	c.logger.Debug("resolved point stream",
		zap.String("stream", stream.Path),
		zap.Uint64("records", stream.RecordCount),
		zap.Uint64("section_offset", stream.FileOffset),
		zap.Uint64("data_offset", dataOffset),
		zap.Uint64("data_length", rs.DataPacket.Header.LogicalLength()),
		zap.Uint16("bytestreams", rs.DataPacket.Header.BytestreamCount),
		zap.Uint64("index_offset", rs.IndexPacketOffset),
		zap.Uint64("declared_index_offset", rs.Section.IndexPhysicalOffset),
	)

	return rs, nil
}
