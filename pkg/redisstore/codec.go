package redisstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/docshape/docshape/pkg/document"
)

// Wire format: JSON, with envelopes for the kinds JSON cannot represent
// losslessly. Longs travel as {"$long": "<digits>"} to dodge float64
// precision loss, floats as {"$float": n} so integral floats keep their
// kind, datetimes as {"$time": "<RFC 3339>"}. A bare JSON number is
// therefore always an int. Keys starting with "$" are reserved for these
// envelopes.

func encode(doc document.Document) ([]byte, error) {
	return json.Marshal(encodeValue(doc))
}

func encodeValue(v any) any {
	switch val := v.(type) {
	case int32:
		return int(val)
	case int64:
		return map[string]any{"$long": strconv.FormatInt(val, 10)}
	case float32:
		return map[string]any{"$float": float64(val)}
	case float64:
		return map[string]any{"$float": val}
	case time.Time:
		return map[string]any{"$time": val.UTC().Format(time.RFC3339Nano)}
	case document.Document:
		return encodeDoc(val)
	case map[string]any:
		return encodeDoc(val)
	case []any:
		out := make([]any, len(val))
		for i, el := range val {
			out[i] = encodeValue(el)
		}
		return out
	default:
		return val
	}
}

func encodeDoc(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = encodeValue(v)
	}
	return out
}

func decode(data []byte) (document.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	v, err := decodeValue(raw)
	if err != nil {
		return nil, err
	}
	doc, ok := v.(document.Document)
	if !ok {
		return nil, errors.New("payload is not a document")
	}
	return doc, nil
}

func decodeValue(v any) (any, error) {
	switch val := v.(type) {
	case json.Number:
		n, err := val.Int64()
		if err != nil {
			return nil, fmt.Errorf("unexpected non-integer number %q", val)
		}
		return int(n), nil
	case map[string]any:
		if len(val) == 1 {
			if env, ok := decodeEnvelope(val); ok {
				return env, nil
			}
		}
		out := make(document.Document, len(val))
		for k, el := range val {
			dv, err := decodeValue(el)
			if err != nil {
				return nil, err
			}
			out[k] = dv
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, el := range val {
			dv, err := decodeValue(el)
			if err != nil {
				return nil, err
			}
			out[i] = dv
		}
		return out, nil
	default:
		return val, nil
	}
}

func decodeEnvelope(m map[string]any) (any, bool) {
	if raw, ok := m["$long"]; ok {
		if s, ok := raw.(string); ok {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return n, true
			}
		}
	}
	if raw, ok := m["$float"]; ok {
		if num, ok := raw.(json.Number); ok {
			if f, err := num.Float64(); err == nil {
				return f, true
			}
		}
	}
	if raw, ok := m["$time"]; ok {
		if s, ok := raw.(string); ok {
			if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
				return ts, true
			}
		}
	}
	return nil, false
}
