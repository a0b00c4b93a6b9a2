package codec

import (
	"bytes"
	"encoding"
	"fmt"
	"reflect"

	"github.com/fuinorg/objects4go/errors"
)

// TextCodec writes values as plain text lines: a TextMarshaler, Stringer
// or string becomes one line, a slice one line per element. Decoding
// requires a TextUnmarshaler target and strips the trailing newline.
type TextCodec struct{}

// NewTextCodec creates a new text codec.
func NewTextCodec() *TextCodec {
	return &TextCodec{}
}

// Encode encodes value to text.
func (c *TextCodec) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeLines(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeLines(buf *bytes.Buffer, v any) error {
	if line, ok, err := textOf(v); ok || err != nil {
		if err != nil {
			return err
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return errors.InvalidArgument("value", fmt.Sprintf("%T", v), "has no text form")
	}
	for i := 0; i < rv.Len(); i++ {
		if err := writeLines(buf, rv.Index(i).Interface()); err != nil {
			return err
		}
	}
	return nil
}

func textOf(v any) (string, bool, error) {
	switch t := v.(type) {
	case encoding.TextMarshaler:
		text, err := t.MarshalText()
		return string(text), true, err
	case fmt.Stringer:
		return t.String(), true, nil
	case string:
		return t, true, nil
	case bool:
		return fmt.Sprint(t), true, nil
	}
	return "", false, nil
}

// Decode decodes text to value.
func (c *TextCodec) Decode(data []byte, v any) error {
	u, ok := v.(encoding.TextUnmarshaler)
	if !ok {
		return errors.InvalidArgument("value", fmt.Sprintf("%T", v), "is not a TextUnmarshaler")
	}
	return u.UnmarshalText(bytes.TrimSuffix(data, []byte("\n")))
}
