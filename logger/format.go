package logger

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

const (
	verbFlags = "+-#0123456789."
	verbs     = "sdifvqxXtegjoO"
)

// Sprintf interpolates args into a single line.
//
// When the first argument is a string its verbs consume the following
// arguments. Besides the usual fmt verbs, %i is an alias of %d and %j, %o
// and %O render their argument as JSON. Arguments left over are appended
// separated by spaces; maps, structs, slices and arrays are rendered as JSON.
// A JSON encoding failure is returned as-is.
func Sprintf(args ...any) (string, error) {
	if len(args) == 0 {
		return "", nil
	}

	var b strings.Builder
	rest := args
	sep := false
	if format, ok := args[0].(string); ok {
		var err error
		rest, err = interpolate(&b, format, args[1:])
		if err != nil {
			return "", err
		}
		sep = true
	}

	for _, arg := range rest {
		if sep {
			b.WriteByte(' ')
		}
		s, err := valueString(arg)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
		sep = true
	}
	return b.String(), nil
}

// interpolate writes format to b, substituting verbs with args, and returns
// the arguments no verb consumed.
func interpolate(b *strings.Builder, format string, args []any) ([]any, error) {
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || i+1 >= len(format) {
			b.WriteByte(c)
			continue
		}

		j := i + 1
		for j < len(format) && strings.IndexByte(verbFlags, format[j]) >= 0 {
			j++
		}
		if j >= len(format) {
			b.WriteString(format[i:])
			break
		}

		verb := format[j]
		spec := format[i:j]
		switch {
		case verb == '%' && spec == "%":
			b.WriteByte('%')
			i = j
			continue
		case strings.IndexByte(verbs, verb) < 0, len(args) == 0:
			b.WriteString(format[i : j+1])
			i = j
			continue
		}

		arg := args[0]
		args = args[1:]
		switch {
		case verb == 'j' || verb == 'o' || verb == 'O':
			s, err := toJSON(arg)
			if err != nil {
				return nil, err
			}
			b.WriteString(s)
		case verb == 'i':
			fmt.Fprintf(b, spec+"d", arg)
		case verb == 's' && spec == "%":
			s, err := valueString(arg)
			if err != nil {
				return nil, err
			}
			b.WriteString(s)
		default:
			fmt.Fprintf(b, spec+string(verb), arg)
		}
		i = j
	}
	return args, nil
}

// valueString renders a single argument for output.
func valueString(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "null", nil
	case string:
		return x, nil
	case []byte:
		return string(x), nil
	case json.RawMessage:
		return string(x), nil
	case error:
		return callMethod(v, x.Error), nil
	case fmt.Stringer:
		return callMethod(v, x.String), nil
	}
	if isComposite(v) {
		return toJSON(v)
	}
	return fmt.Sprint(v), nil
}

// callMethod runs an Error or String method. A nil pointer receiver that
// panics renders as <nil>, the same as fmt.
func callMethod(v any, method func() string) (s string) {
	defer func() {
		if r := recover(); r != nil {
			if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
				s = "<nil>"
				return
			}
			panic(r)
		}
	}()
	return method()
}

func toJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func isComposite(v any) bool {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Struct, reflect.Slice, reflect.Array:
		return true
	}
	return false
}
