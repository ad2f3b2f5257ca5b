package arkiv

// Tagged unions archive as a single-byte discriminant followed by the
// selected variant's payload. Tag values are assigned in declaration order
// starting at zero and are a wire-format commitment: reordering variants
// breaks every existing archive.

// TagLen is the width of the discriminant cell.
const TagLen = 1

// VariantLayout is the (tag, payload) record of one union arm, sized and
// aligned for that arm's payload rather than for the union's widest
// member.
type VariantLayout struct {
	tag uint8
	rec RecordLayout
}

func NewVariantLayout(mode LayoutMode, tag uint8, payload Field) VariantLayout {
	return VariantLayout{
		tag: tag,
		rec: NewRecordLayout(mode, Field{Name: "tag", Size: TagLen}, payload),
	}
}

func (v VariantLayout) Tag() uint8 {
	return v.tag
}

// PayloadOffset is where the arm's payload begins within the union slot.
func (v VariantLayout) PayloadOffset() int {
	return v.rec.Offset(1)
}

// Size is the byte size of this arm's (tag, payload) record. The union
// slot itself spans the widest arm.
func (v VariantLayout) Size() int {
	return v.rec.Size()
}

// ResolveVariant writes one union arm into out, which spans the whole
// union slot: the discriminant into the tag cell, the payload resolved at
// its true absolute position, and zeroes over padding and any slack where
// the arm is narrower than the slot. Re-archiving a decoded value is
// therefore byte-identical.
func ResolveVariant(pos int, vl VariantLayout, payload Archiver, res Resolver, out []byte) {
	out[0] = vl.tag
	off := vl.PayloadOffset()
	for i := TagLen; i < off; i++ {
		out[i] = 0
	}
	n := payload.ArchivedLen()
	payload.Resolve(pos+off, res, out[off:off+n])
	for i := off + n; i < len(out); i++ {
		out[i] = 0
	}
}

// VariantTag reads the discriminant cell of an archived union slot.
func VariantTag(b []byte) uint8 {
	return b[0]
}
