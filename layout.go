package arkiv

import "github.com/rawbytedev/arkiv/internal/common"

// LayoutMode selects how a RecordLayout places its fields.
type LayoutMode uint8

const (
	// LayoutDefault aligns each field to its alignment and pads the record
	// size up to the widest alignment seen.
	LayoutDefault LayoutMode = iota
	// LayoutPacked places fields back to back with no padding.
	LayoutPacked
)

// Field declares one field of an archived record: a name for diagnostics,
// the byte size of its archived representation, and the alignment used
// under LayoutDefault. A zero Align means size-natural alignment (capped
// at 8); byte-array payloads should declare Align 1.
type Field struct {
	Name  string
	Size  int
	Align int
}

// RecordLayout is the per-type layout configuration archived definitions
// consume: an offset table plus total size, computed once at construction.
// It stands in for the declarative front-end; whatever generates archived
// types hands its layout mode and field list here and reads offsets back.
type RecordLayout struct {
	mode    LayoutMode
	fields  []Field
	offsets []int
	size    int
}

func NewRecordLayout(mode LayoutMode, fields ...Field) RecordLayout {
	l := RecordLayout{
		mode:    mode,
		fields:  fields,
		offsets: make([]int, len(fields)),
	}
	off := 0
	max := 1
	for i, f := range fields {
		a := 1
		if mode == LayoutDefault {
			a = f.Align
			if a <= 0 {
				a = f.Size
				if a > 8 {
					a = 8
				}
				if a < 1 {
					a = 1
				}
			}
		}
		off = common.Align(off, a)
		l.offsets[i] = off
		off += f.Size
		if a > max {
			max = a
		}
	}
	if mode == LayoutDefault {
		off = common.Align(off, max)
	}
	l.size = off
	return l
}

func (l RecordLayout) Mode() LayoutMode {
	return l.mode
}

// Size is the total byte size of the record, padding included.
func (l RecordLayout) Size() int {
	return l.size
}

// Offset returns the byte offset of field i within the record.
func (l RecordLayout) Offset(i int) int {
	return l.offsets[i]
}

// OffsetOf looks a field up by name. A miss is a construction-time defect
// in the layout declaration, not a runtime condition.
func (l RecordLayout) OffsetOf(name string) int {
	for i, f := range l.fields {
		if f.Name == name {
			return l.offsets[i]
		}
	}
	panic("arkiv: no field " + name + " in record layout")
}

func (l RecordLayout) NumFields() int {
	return len(l.fields)
}
