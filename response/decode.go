package response

import (
	"bytes"
	"encoding/json"

	"github.com/kbukum/apiruntime/errors"
)

const (
	embeddedKey = "_embedded"
	linksKey    = "_links"
)

// Decode parses a JSON body. An empty body or null decodes to an empty map.
func Decode(raw []byte) (any, error) {
	if isBlank(raw) {
		return map[string]any{}, nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, errors.DecodeFailed(err)
	}
	if v == nil {
		return map[string]any{}, nil
	}
	return v, nil
}

// UnwrapHAL decodes a JSON body and removes its HAL envelope. When the body
// is an object with "_embedded", the first value inside "_embedded" becomes
// the body. "_links" is then removed from the body, or from each element
// when the body is an array. A null "_embedded" is dropped and the body
// kept. Other bodies decode as with Decode.
func UnwrapHAL(raw []byte) (any, error) {
	if isBlank(raw) {
		return map[string]any{}, nil
	}

	body := json.RawMessage(raw)
	if embedded, ok, err := embeddedOf(raw); err != nil {
		return nil, errors.DecodeFailed(err)
	} else if ok {
		first, err := firstEntry(embedded)
		if err != nil {
			return nil, errors.DecodeFailed(err)
		}
		body = first
	}

	v, err := Decode(body)
	if err != nil {
		return nil, err
	}
	return stripLinks(v), nil
}

// embeddedOf returns the raw "_embedded" value of a JSON object. A null
// "_embedded" counts as absent.
func embeddedOf(raw []byte) (json.RawMessage, bool, error) {
	if firstByte(raw) != '{' {
		return nil, false, nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, false, err
	}
	embedded, ok := fields[embeddedKey]
	if !ok || isBlank(embedded) {
		return nil, false, nil
	}
	return embedded, true, nil
}

// firstEntry returns the first member value of an object, or the first
// element of an array, in document order. An empty container yields nil,
// which decodes to an empty map. Scalars are returned unchanged.
func firstEntry(raw json.RawMessage) (json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return raw, nil
	}
	if !dec.More() {
		return nil, nil
	}
	if delim == '{' {
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
	}
	var first json.RawMessage
	if err := dec.Decode(&first); err != nil {
		return nil, err
	}
	return first, nil
}

func stripLinks(v any) any {
	switch t := v.(type) {
	case map[string]any:
		delete(t, linksKey)
		if e, ok := t[embeddedKey]; ok && e == nil {
			delete(t, embeddedKey)
		}
	case []any:
		for _, item := range t {
			if m, ok := item.(map[string]any); ok {
				delete(m, linksKey)
			}
		}
	}
	return v
}

func isBlank(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func firstByte(raw []byte) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
