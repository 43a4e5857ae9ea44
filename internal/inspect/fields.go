package inspect

// Field is one row of the inspector panel: a label and the decoded value
// at the current cursor.
type Field struct {
	Name  string
	Value string
}

// fieldSpecs is the fixed inspector panel layout, top to bottom
var fieldSpecs = []struct {
	name string
	spec Spec
}{
	{"uint8", Spec{Kind: KindUint, Width: 1}},
	{"int8", Spec{Kind: KindInt, Width: 1}},
	{"uint16", Spec{Kind: KindUint, Width: 2}},
	{"int16", Spec{Kind: KindInt, Width: 2}},
	{"uint32", Spec{Kind: KindUint, Width: 4}},
	{"int32", Spec{Kind: KindInt, Width: 4}},
	{"uint64", Spec{Kind: KindUint, Width: 8}},
	{"int64", Spec{Kind: KindInt, Width: 8}},
	{"float32", Spec{Kind: KindFloat, Width: 4}},
	{"float64", Spec{Kind: KindFloat, Width: 8}},
	{"string", Spec{Kind: KindCString}},
	{"binary", Spec{Kind: KindBits, Width: 1}},
}

// Fields decodes every inspector row at off with the given byte order.
// Rows that cannot decode carry the sentinel, so the panel shape is
// stable regardless of cursor position.
func Fields(data []byte, off int, e Endian) []Field {
	out := make([]Field, 0, len(fieldSpecs))
	for _, fs := range fieldSpecs {
		spec := fs.spec
		spec.Endian = e
		out = append(out, Field{Name: fs.name, Value: Decode(data, off, spec)})
	}
	return out
}
