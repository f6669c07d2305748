package skiff

// FilterF64 produces a new series containing, in original order, the elements
// of h whose mask entry is nonzero. The mask is one boolean byte per element.
// Returns InvalidHandle if the source is absent or empty, or if the mask
// length does not match the source length.
func (e *Engine) FilterF64(h Handle, mask []byte) Handle {
	src, err := e.lookupF64(h)
	if err != nil || len(src) == 0 || len(mask) != len(src) {
		return InvalidHandle
	}
	out := make([]float64, 0, len(src))
	for i, v := range src {
		if mask[i] != 0 {
			out = append(out, v)
		}
	}
	return e.registerF64(out)
}

// FilterValuesF64 is the direct variant of FilterF64: it filters a
// caller-provided slice with no registry involvement. A mask length mismatch
// yields an empty slice.
func FilterValuesF64(data []float64, mask []byte) []float64 {
	if len(data) != len(mask) {
		return []float64{}
	}
	out := make([]float64, 0, len(data))
	for i, v := range data {
		if mask[i] != 0 {
			out = append(out, v)
		}
	}
	return out
}
