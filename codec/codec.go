// Package codec provides unified encoding/decoding with multiple formats.
// Value types that implement encoding.TextMarshaler and
// encoding.TextUnmarshaler are written as their text form in every format.
package codec

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/fuinorg/objects4go/errors"
)

// Codec provides encoding/decoding operations.
type Codec interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// TypedCodec provides generic type-safe encoding/decoding operations.
type TypedCodec[T any] interface {
	Encode(T) ([]byte, error)
	Decode([]byte) (T, error)
}

// Format names a wire format.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXML  Format = "xml"
)

// Formats returns the names of all supported formats.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML), string(FormatXML)}
}

// ParseFormat parses a format name, ignoring case. "yml" is an alias for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xml":
		return FormatXML, nil
	}
	return "", errors.InvalidArgument("format", s, "expected one of "+strings.Join(Formats(), ", "))
}

// New returns a codec for format with pretty printing enabled.
func New(format Format) (Codec, error) {
	switch format {
	case FormatText:
		return NewTextCodec(), nil
	case FormatJSON:
		return NewJSONCodec().WithPretty(), nil
	case FormatYAML:
		return NewYAMLCodec(), nil
	case FormatXML:
		return NewXMLCodec().WithPretty(), nil
	}
	return nil, errors.InvalidArgument("format", string(format), "unsupported format")
}

// JSONCodec encodes/decodes using JSON.
type JSONCodec struct {
	Pretty bool
	Indent string
}

// NewJSONCodec creates a new JSON codec with default options.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{Indent: "  "}
}

// Encode encodes value to JSON.
func (c *JSONCodec) Encode(v any) ([]byte, error) {
	if c.Pretty {
		return json.MarshalIndent(v, "", c.Indent)
	}
	return json.Marshal(v)
}

// Decode decodes JSON to value.
func (c *JSONCodec) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// WithPretty enables pretty printing.
func (c *JSONCodec) WithPretty() *JSONCodec {
	c.Pretty = true
	return c
}

// WithIndent sets the indentation string.
func (c *JSONCodec) WithIndent(indent string) *JSONCodec {
	c.Indent = indent
	return c
}

// TypedJSONCodec provides type-safe JSON encoding/decoding.
type TypedJSONCodec[T any] struct {
	JSONCodec
}

// NewTypedJSONCodec creates a new type-safe JSON codec.
func NewTypedJSONCodec[T any]() *TypedJSONCodec[T] {
	return &TypedJSONCodec[T]{JSONCodec: JSONCodec{Indent: "  "}}
}

// Encode encodes value to JSON.
func (c *TypedJSONCodec[T]) Encode(v T) ([]byte, error) {
	return c.JSONCodec.Encode(v)
}

// Decode decodes JSON to value.
func (c *TypedJSONCodec[T]) Decode(data []byte) (T, error) {
	var v T
	err := c.JSONCodec.Decode(data, &v)
	return v, err
}

// YAMLCodec encodes/decodes using YAML.
type YAMLCodec struct {
	Indent int
}

// NewYAMLCodec creates a new YAML codec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{Indent: 2}
}

// Encode encodes value to YAML.
func (c *YAMLCodec) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(c.Indent)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode decodes YAML to value.
func (c *YAMLCodec) Decode(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}

// WithIndent sets the indentation level.
func (c *YAMLCodec) WithIndent(indent int) *YAMLCodec {
	c.Indent = indent
	return c
}

// TypedYAMLCodec provides type-safe YAML encoding/decoding.
type TypedYAMLCodec[T any] struct {
	YAMLCodec
}

// NewTypedYAMLCodec creates a new type-safe YAML codec.
func NewTypedYAMLCodec[T any]() *TypedYAMLCodec[T] {
	return &TypedYAMLCodec[T]{YAMLCodec: YAMLCodec{Indent: 2}}
}

// Encode encodes value to YAML.
func (c *TypedYAMLCodec[T]) Encode(v T) ([]byte, error) {
	return c.YAMLCodec.Encode(v)
}

// Decode decodes YAML to value.
func (c *TypedYAMLCodec[T]) Decode(data []byte) (T, error) {
	var v T
	err := c.YAMLCodec.Decode(data, &v)
	return v, err
}

// XMLCodec encodes/decodes using XML.
type XMLCodec struct {
	Pretty bool
	Indent string
}

// NewXMLCodec creates a new XML codec.
func NewXMLCodec() *XMLCodec {
	return &XMLCodec{Indent: "  "}
}

// Encode encodes value to XML.
func (c *XMLCodec) Encode(v any) ([]byte, error) {
	if c.Pretty {
		return xml.MarshalIndent(v, "", c.Indent)
	}
	return xml.Marshal(v)
}

// Decode decodes XML to value.
func (c *XMLCodec) Decode(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}

// WithPretty enables pretty printing.
func (c *XMLCodec) WithPretty() *XMLCodec {
	c.Pretty = true
	return c
}

// Convenience functions

// EncodeJSON is a convenience function for JSON encoding.
func EncodeJSON(v any) ([]byte, error) {
	return NewJSONCodec().Encode(v)
}

// DecodeJSON is a convenience function for JSON decoding.
func DecodeJSON[T any](data []byte) (T, error) {
	return NewTypedJSONCodec[T]().Decode(data)
}

// EncodeYAML is a convenience function for YAML encoding.
func EncodeYAML(v any) ([]byte, error) {
	return NewYAMLCodec().Encode(v)
}

// DecodeYAML is a convenience function for YAML decoding.
func DecodeYAML[T any](data []byte) (T, error) {
	return NewTypedYAMLCodec[T]().Decode(data)
}

// MustEncode encodes or panics.
func MustEncode(codec Codec, v any) []byte {
	data, err := codec.Encode(v)
	if err != nil {
		panic(err)
	}
	return data
}

// MustDecode decodes or panics.
func MustDecode[T any](codec Codec, data []byte) T {
	var v T
	if err := codec.Decode(data, &v); err != nil {
		panic(fmt.Errorf("decode %T: %w", v, err))
	}
	return v
}
