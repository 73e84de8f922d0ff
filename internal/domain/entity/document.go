package entity

import "strings"

// Document es un blob adjunto: nombre original y payload inline
// autodescriptivo (data URI, ej. "data:application/pdf;base64,...").
type Document struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

// MediaType extrae el media type del data URI. Cadena vacía si el payload
// no es un data URI.
func (d *Document) MediaType() string {
	if d == nil || !strings.HasPrefix(d.Data, "data:") {
		return ""
	}
	rest := d.Data[len("data:"):]
	if i := strings.IndexAny(rest, ";,"); i >= 0 {
		return rest[:i]
	}
	return ""
}

// IsPDF indica si el documento declara media type PDF.
func (d *Document) IsPDF() bool {
	return d.MediaType() == "application/pdf"
}
