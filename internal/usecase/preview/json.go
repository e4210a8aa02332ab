package preview

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/futig/contract-workbench/internal/entity"
)

const (
	emptyJSON  = "{}"
	jsonIndent = "  "
)

// member is one key of a decoded object. Objects keep first-seen key order.
type member struct {
	key   string
	value any
}

type object []member

// FormattedJSON renders the preview subset with two-space indentation, matching
// JSON.stringify(v, null, 2) in the browser: numbers are printed the way
// JavaScript prints them, strings are re-quoted, and a repeated key keeps its
// first position with its last value.
func FormattedJSON(q *entity.StructuredQuery) (string, error) {
	if q == nil {
		return emptyJSON, nil
	}

	fields := object{
		{key: "template", value: string(q.Template)},
		{key: "operation", value: nil},
	}
	if q.Operation != nil {
		fields[1].value = *q.Operation
	}

	raws := []struct {
		key string
		raw json.RawMessage
	}{
		{"target", q.Target},
		{"filters", q.Filters},
		{"displayNames", q.DisplayNames},
		{"options", q.Options},
	}
	for _, r := range raws {
		v, err := decodeOrdered(r.raw)
		if err != nil {
			return "", fmt.Errorf("decode %s: %w", r.key, err)
		}
		fields = append(fields, member{key: r.key, value: v})
	}

	var buf bytes.Buffer
	writeValue(&buf, fields, 0)
	return buf.String(), nil
}

// decodeOrdered decodes raw keeping object key order. Empty input is null.
func decodeOrdered(raw json.RawMessage) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	default:
		return t, nil
	}
}

func decodeObject(dec *json.Decoder) (object, error) {
	obj := object{}
	index := map[string]int{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T", tok)
		}

		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}

		if i, seen := index[key]; seen {
			obj[i].value = v
			continue
		}
		index[key] = len(obj)
		obj = append(obj, member{key: key, value: v})
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	arr := []any{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}

	// closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

func writeValue(buf *bytes.Buffer, v any, depth int) {
	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		buf.WriteString(strconv.FormatBool(t))
	case json.Number:
		buf.WriteString(jsNumber(t))
	case string:
		writeString(buf, t)
	case object:
		if len(t) == 0 {
			buf.WriteString("{}")
			return
		}
		buf.WriteString("{\n")
		for i, m := range t {
			buf.WriteString(strings.Repeat(jsonIndent, depth+1))
			writeString(buf, m.key)
			buf.WriteString(": ")
			writeValue(buf, m.value, depth+1)
			if i < len(t)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(strings.Repeat(jsonIndent, depth))
		buf.WriteByte('}')
	case []any:
		if len(t) == 0 {
			buf.WriteString("[]")
			return
		}
		buf.WriteString("[\n")
		for i, e := range t {
			buf.WriteString(strings.Repeat(jsonIndent, depth+1))
			writeValue(buf, e, depth+1)
			if i < len(t)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		buf.WriteString(strings.Repeat(jsonIndent, depth))
		buf.WriteByte(']')
	}
}

// jsNumber formats n like JavaScript's Number#toString. Values outside the
// float64 range become null, as JSON.stringify does for Infinity.
func jsNumber(n json.Number) string {
	// range errors still yield ±Inf or 0, which is what JavaScript sees
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return string(n)
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "null"
	}
	if f == 0 {
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	// 'e' gives 1.5e-07; JavaScript prints 1.5e-7
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}

// writeString quotes s the way JSON.stringify does
func writeString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
				continue
			}
			buf.WriteRune(r)
		}
	}
	buf.WriteByte('"')
}
