package escape

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/k0kubun/pgqb/internal/util"
)

// KV is one key/value pair of an ordered plain mapping. Object preserves
// the insertion order spec.md requires; a bare map[string]any is also
// accepted by Value but, since Go maps have no stable order, its keys are
// sorted for determinism.
type KV struct {
	Key   string
	Value any
}

// Object is a plain mapping with caller-controlled key order.
type Object []KV

// Value converts a host value into its PostgreSQL textual form.
//
//	nil                      -> NULL
//	bool                     -> TRUE / FALSE
//	finite number            -> decimal textual form
//	NaN / +Inf / -Inf        -> 'NaN' / 'Infinity' / '-Infinity'
//	string                   -> 'plain' or E'escaped'
//	empty array              -> '{}'
//	non-empty array          -> ARRAY[e1, e2, ...]
//	empty plain object       -> '{}'
//	non-empty plain object   -> '<json>'
func Value(v any) (string, error) {
	if v == nil {
		return "NULL", nil
	}

	switch val := v.(type) {
	case bool:
		if val {
			return "TRUE", nil
		}
		return "FALSE", nil
	case string:
		return stringLiteral(val)
	case Object:
		return objectLiteral(val)
	case map[string]any:
		return objectLiteral(orderedFromMap(val))
	case []any:
		return arrayLiteral(val, 0)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32, reflect.Float64:
		return floatLiteral(rv.Float())
	case reflect.Slice, reflect.Array:
		elems, ok := sliceElems(v)
		if !ok {
			return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
		}
		return arrayLiteral(elems, 0)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
		}
		m := make(map[string]any, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			m[it.Key().String()] = it.Value().Interface()
		}
		return objectLiteral(orderedFromMap(m))
	}

	return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

// JSON always serializes v as a JSON literal ('<json>'), even when v is a
// scalar or array that Value would otherwise render as ARRAY[...] or a
// bare keyword. Used by JsonValue nodes, which force JSON encoding.
func JSON(v any) (string, error) {
	text, err := jsonEncodeValue(v)
	if err != nil {
		return "", err
	}
	return "'" + strings.Replace(text, "'", "''", -1) + "'", nil
}

func orderedFromMap(m map[string]any) Object {
	obj := make(Object, 0, len(m))
	for k, v := range util.CanonicalMapIter(m) {
		obj = append(obj, KV{Key: k, Value: v})
	}
	return obj
}

func sliceElems(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		// []byte: no binary encoder is configured in this spec's scope.
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// arrayLiteral renders elems as a PostgreSQL ARRAY literal. depth == 0 is
// the outermost call and emits the ARRAY[...] constructor; deeper calls
// (nested arrays) emit a bare [...] per spec.md's recursive encoding rule.
func arrayLiteral(elems []any, depth int) (string, error) {
	if len(elems) == 0 {
		if depth == 0 {
			return "'{}'", nil
		}
		return "[]", nil
	}

	parts := make([]string, len(elems))
	for i, e := range elems {
		if nested, ok := sliceElems(e); ok {
			s, err := arrayLiteral(nested, depth+1)
			if err != nil {
				return "", err
			}
			parts[i] = s
			continue
		}
		s, err := Value(e)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}

	if depth == 0 {
		return "ARRAY[" + strings.Join(parts, ", ") + "]", nil
	}
	return "[" + strings.Join(parts, ", ") + "]", nil
}

func objectLiteral(obj Object) (string, error) {
	if len(obj) == 0 {
		return "'{}'", nil
	}
	text, err := jsonEncodeObject(obj)
	if err != nil {
		return "", err
	}
	return "'" + strings.Replace(text, "'", "''", -1) + "'", nil
}

func jsonEncodeValue(v any) (string, error) {
	if v == nil {
		return "null", nil
	}
	switch val := v.(type) {
	case Object:
		return jsonEncodeObject(val)
	case map[string]any:
		return jsonEncodeObject(orderedFromMap(val))
	case []any:
		return jsonEncodeArray(val)
	case string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		b, err := json.Marshal(val)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
		}
		return string(b), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		elems, ok := sliceElems(v)
		if !ok {
			return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
		}
		return jsonEncodeArray(elems)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
		}
		m := make(map[string]any, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			m[it.Key().String()] = it.Value().Interface()
		}
		return jsonEncodeObject(orderedFromMap(m))
	}
	return "", fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
}

func jsonEncodeObject(obj Object) (string, error) {
	parts := make([]string, len(obj))
	for i, kv := range obj {
		keyJSON, err := json.Marshal(kv.Key)
		if err != nil {
			return "", err
		}
		valJSON, err := jsonEncodeValue(kv.Value)
		if err != nil {
			return "", err
		}
		parts[i] = string(keyJSON) + ":" + valJSON
	}
	return "{" + strings.Join(parts, ",") + "}", nil
}

func jsonEncodeArray(elems []any) (string, error) {
	parts := make([]string, len(elems))
	for i, e := range elems {
		s, err := jsonEncodeValue(e)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return "[" + strings.Join(parts, ",") + "]", nil
}

func floatLiteral(f float64) (string, error) {
	if math.IsNaN(f) {
		return "'NaN'", nil
	}
	if math.IsInf(f, 1) {
		return "'Infinity'", nil
	}
	if math.IsInf(f, -1) {
		return "'-Infinity'", nil
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

const specialStringChars = "'\\\b\f\n\r\t"

func stringLiteral(s string) (string, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return "", fmt.Errorf("%w: NUL byte in string", ErrInvalidString)
	}
	if !strings.ContainsAny(s, specialStringChars) {
		return "'" + s + "'", nil
	}

	var b strings.Builder
	b.WriteString("E'")
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\'':
			b.WriteString(`\'`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteString("'")
	return b.String(), nil
}
