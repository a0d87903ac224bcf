package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Text is a string field that also accepts JSON numbers and booleans,
// stored in their literal form (123 -> "123"). null decodes to "".
type Text string

func (t *Text) UnmarshalJSON(b []byte) error {
	s, err := castString(b)
	if err != nil {
		return err
	}
	*t = Text(s)
	return nil
}

// TextList is a string array field. A single scalar is wrapped into a
// one-element list and every element is cast like Text.
type TextList []string

func (l *TextList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*l = nil
		return nil
	}
	if b[0] != '[' {
		s, err := castString(b)
		if err != nil {
			return err
		}
		*l = TextList{s}
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(b, &items); err != nil {
		return err
	}
	out := make(TextList, 0, len(items))
	for i, item := range items {
		s, err := castString(item)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, s)
	}
	*l = out
	return nil
}

// Number is an optional numeric field. It accepts JSON numbers, numeric
// strings and booleans (true=1, false=0). null and blank strings leave it
// unset; anything else is an error.
type Number struct {
	Value *float64
}

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0, bytes.Equal(b, []byte("null")):
		n.Value = nil
		return nil
	case bytes.Equal(b, []byte("true")):
		return n.set(1)
	case bytes.Equal(b, []byte("false")):
		return n.set(0)
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		return n.UnmarshalParam(s)
	case b[0] == '{', b[0] == '[':
		return fmt.Errorf("cannot cast %s to a number", b)
	}

	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("cannot cast %s to a number", b)
	}
	return n.set(f)
}

// UnmarshalParam lets gin bind the field from form values.
func (n *Number) UnmarshalParam(param string) error {
	param = strings.TrimSpace(param)
	if param == "" {
		n.Value = nil
		return nil
	}
	f, err := strconv.ParseFloat(param, 64)
	if err != nil {
		return fmt.Errorf("cannot cast %q to a number", param)
	}
	return n.set(f)
}

func (n *Number) set(f float64) error {
	n.Value = &f
	return nil
}

func castString(b []byte) (string, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return "", nil
	}
	switch b[0] {
	case '"':
		var s string
		err := json.Unmarshal(b, &s)
		return s, err
	case '{', '[':
		return "", fmt.Errorf("cannot cast %s to a string", b)
	}
	// numbers and booleans keep their literal spelling
	if bytes.Equal(b, []byte("true")) || bytes.Equal(b, []byte("false")) {
		return string(b), nil
	}
	if _, err := strconv.ParseFloat(string(b), 64); err != nil {
		return "", fmt.Errorf("cannot cast %s to a string", b)
	}
	return string(b), nil
}
