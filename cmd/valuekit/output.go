package main

import (
	"fmt"
	"io"

	"github.com/comalice/valuekit/internal/production"
)

// texter is implemented by reports that have a human-readable form.
type texter interface {
	Text() string
}

// render writes v in the configured format. Structured formats go through
// the persister codecs so CLI output matches persisted files.
func render(w io.Writer, format string, v texter) error {
	if format == "text" {
		_, err := io.WriteString(w, v.Text())
		return err
	}
	codec, ok := production.CodecFor(format)
	if !ok {
		return fmt.Errorf("unsupported output format %q", format)
	}
	data, err := codec.Marshal(v)
	if err != nil {
		return fmt.Errorf("%s marshal: %w", format, err)
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		_, err = io.WriteString(w, "\n")
	}
	return err
}
