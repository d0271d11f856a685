// Package container opens E57 files and decodes their binary structures.
//
// A Container ties together the pieces a reader needs: the file header at
// offset 0, the page geometry it declares, a paging.Translator that skips
// page checksums, and the metadata document that locates point streams.
//
//	c, err := container.Open("scan.e57")
//	if err != nil {
//	    return err
//	}
//	defer c.Close()
//
//	streams, err := c.Resolve()
//	for _, rs := range streams {
//	    fmt.Println(rs.Stream.Name, rs.Stream.RecordCount, rs.Section.DataPhysicalOffset)
//	}
//
// Resolution walks one level of the binary layout per stream:
//
//	metadata fileOffset ─► CompressedVectorSectionHeader
//	                          │ DataPhysicalOffset
//	                          ▼
//	                       DataPacketHeader + bytestream lengths
//	                          │ + packet logical length, checksums skipped
//	                          ▼
//	                       IndexPacketHeader
//
// Nothing is decompressed: packet payloads stay bit-packed.
//
// A Container is safe for concurrent use. Every read is an independent
// positioned read of the underlying file.
package container
