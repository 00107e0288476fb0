package list

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the list as a JSON array. The empty list is encoded as
// "[]" when the method is called directly, and so is an empty list nested as an
// element; note that encoding/json encodes a nil pointer as "null" without
// calling it, so an empty list elsewhere in a value passed to json.Marshal
// becomes "null".
func (l *List[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	index := 0
	for p := l; p != nil; p = p.rest {
		if index > 0 {
			buf.WriteByte(',')
		}
		var elemBytes []byte
		var err error
		if nested, ok := any(p.first).(nestedList); ok {
			elemBytes, err = nested.MarshalJSON()
		} else {
			elemBytes, err = json.Marshal(p.first)
		}
		if err != nil {
			return nil, &MarshalError{index, err}
		}
		buf.Write(elemBytes)
		index++
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// Implemented by *List[T] for every T, including the nil pointer.
type nestedList interface {
	MarshalJSON() ([]byte, error)
	yamlValue() []any
}

// MarshalError is returned when a list element fails to marshal.
type MarshalError struct {
	Index int
	Cause error
}

func (err *MarshalError) Error() string {
	return fmt.Sprintf("element %d: %s", err.Index, err.Cause)
}

func (err *MarshalError) Unwrap() error { return err.Cause }

// FromJSON decodes a JSON array into a list.
func FromJSON[T any](data []byte) (*List[T], error) {
	var s []T
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return FromSlice(s), nil
}

// MarshalYAML implements yaml.Marshaler, encoding the list as a sequence.
// Like with MarshalJSON, nested empty lists are encoded as empty sequences.
func (l *List[T]) MarshalYAML() (any, error) {
	return l.yamlValue(), nil
}

func (l *List[T]) yamlValue() []any {
	s := make([]any, 0, l.Len())
	for p := l; p != nil; p = p.rest {
		if nested, ok := any(p.first).(nestedList); ok {
			s = append(s, nested.yamlValue())
		} else {
			s = append(s, p.first)
		}
	}
	return s
}

// FromYAML decodes a YAML sequence into a list.
func FromYAML[T any](data []byte) (*List[T], error) {
	var s []T
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return FromSlice(s), nil
}
