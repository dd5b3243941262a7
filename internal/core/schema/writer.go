package schema

import "fmt"

// Writer fills a wire document by internal field name.
type Writer struct {
	desc   Descriptor
	wireOf map[string]string
	doc    Document
}

func (w *Writer) key(field string) string {
	wire, ok := w.wireOf[field]
	if !ok {
		panic(fmt.Sprintf("schema: %s has no field %q", w.desc, field))
	}
	return wire
}

// Put sets a present field.
func (w *Writer) Put(field string, v any) {
	w.doc[w.key(field)] = v
}

// PutString sets field when v is not nil.
func (w *Writer) PutString(field string, v *string) {
	if v != nil {
		w.doc[w.key(field)] = *v
	}
}

// PutInt sets field when v is not nil.
func (w *Writer) PutInt(field string, v *int64) {
	if v != nil {
		w.doc[w.key(field)] = *v
	}
}
