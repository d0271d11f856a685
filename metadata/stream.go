package metadata

import (
	"github.com/google/uuid"

	"github.com/arloliu/e57/internal/hash"
)

// PointStream describes one CompressedVector element: where its binary
// section starts, how many records it holds and the layout of a record.
type PointStream struct {
	// FileOffset is the physical offset of the compressed vector section.
	FileOffset uint64
	// RecordCount is the number of point records in the stream.
	RecordCount uint64
	// Fields is the record prototype in document order.
	Fields []Field

	// Name and GUID come from the enclosing data3D entry when present.
	Name string
	GUID string
	// UUID is GUID parsed as a UUID, or uuid.Nil when GUID is not one.
	UUID uuid.UUID
	// Path is the E57 path of the CompressedVector element.
	Path string

	index map[uint64]int
}

// Field returns the prototype field with the given name.
func (s *PointStream) Field(name string) (Field, bool) {
	i, ok := s.index[hash.FieldID(name)]
	if !ok || s.Fields[i].Name != name {
		return Field{}, false
	}

	return s.Fields[i], true
}

// PointStreams returns a descriptor for every CompressedVector element in
// document order.
//
// Returns:
//   - []PointStream: one entry per CompressedVector, empty when there is none
//   - error: ErrMetadata when fileOffset or recordCount is missing or not a
//     non-negative integer, or a prototype field cannot be read
func (d *Document) PointStreams() ([]PointStream, error) {
	vectors, err := d.queryAll(d.root, compressedVectorQuery)
	if err != nil {
		return nil, err
	}

	streams := make([]PointStream, 0, len(vectors))
	for _, el := range vectors {
		s, err := d.newPointStream(el)
		if err != nil {
			return nil, err
		}
		streams = append(streams, s)
	}

	return streams, nil
}

// compressedVectorQuery selects E57 elements typed CompressedVector. A
// "e57:*" name test would compare against an empty local name once a
// namespace is bound, so the namespace is matched with namespace-uri().
const compressedVectorQuery = "descendant::*[namespace-uri()='" + Namespace + "'][@type='CompressedVector']"

func (d *Document) newPointStream(el *Element) (PointStream, error) {
	s := PointStream{Path: el.Path()}

	var err error
	if s.FileOffset, err = uintAttr(el, "fileOffset"); err != nil {
		return PointStream{}, err
	}
	if s.RecordCount, err = uintAttr(el, "recordCount"); err != nil {
		return PointStream{}, err
	}

	proto, err := d.FindChild(el, "prototype")
	if err != nil {
		return PointStream{}, err
	}
	// a stream without a prototype has no fields
	if proto != nil {
		if s.Fields, err = parseFields(proto, "", nil); err != nil {
			return PointStream{}, err
		}
	}

	s.index = make(map[uint64]int, len(s.Fields))
	for i, f := range s.Fields {
		s.index[hash.FieldID(f.Name)] = i
	}

	if owner := el.parent(); owner != nil {
		if err := d.describeOwner(&s, owner); err != nil {
			return PointStream{}, err
		}
	}

	return s, nil
}

// describeOwner copies name and guid from the element enclosing the stream.
func (d *Document) describeOwner(s *PointStream, owner *Element) error {
	name, err := d.FindChild(owner, "name")
	if err != nil {
		return err
	}
	if name != nil {
		s.Name = name.Text()
	}

	guid, err := d.FindChild(owner, "guid")
	if err != nil {
		return err
	}
	if guid != nil {
		s.GUID = guid.Text()
		if id, err := uuid.Parse(s.GUID); err == nil {
			s.UUID = id
		}
	}

	return nil
}
