package cursor

// OffsetEdit is an edit resolved to rune offsets in the pre-edit document.
type OffsetEdit struct {
	Start   int
	End     int
	TextLen int
}

// TransformOffset maps an offset from the pre-edit document to the
// post-edit document. All edits must refer to the same pre-edit revision
// and must not overlap.
//
// Transformation rules:
//   - Edits entirely before the offset shift it by their delta
//   - Edits starting at or after the offset leave it alone
//   - An edit spanning the offset moves it to the end of the new text
func TransformOffset(offset int, edits []OffsetEdit) int {
	shift := 0
	for _, e := range edits {
		switch {
		case e.End <= offset && e.Start < offset:
			shift += e.TextLen - (e.End - e.Start)
		case e.Start < offset && offset < e.End:
			shift += e.Start + e.TextLen - offset
		}
	}
	return offset + shift
}
