package module

import (
	"gopkg.in/yaml.v3"

	"github.com/koto-lang/koto/internal/value"
)

// DumpExports renders a module's exports map as YAML for debug/introspection
// tooling (e.g. inspecting what `koto.exports()` currently holds). This is
// strictly a debug aid: no YAML syntax is part of the language itself,
// grounded on the teacher's builtins_yaml.go using gopkg.in/yaml.v3 purely
// as a data-marshalling library rather than a language feature.
func DumpExports(m *value.Map) (string, error) {
	out, err := yaml.Marshal(toPlain(m))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// toPlain lowers a Value tree into plain Go data yaml.Marshal understands.
// Kinds with no natural YAML shape (Function/Generator/Iterator/Object)
// fall back to their cycle-safe Show() text.
func toPlain(v value.Value) interface{} {
	switch x := v.(type) {
	case value.Empty:
		return nil
	case value.Bool:
		return x.Value
	case value.Number:
		if x.IsFloat() {
			return x.AsFloat()
		}
		return x.AsInt()
	case value.String:
		return x.Value
	case *value.List:
		items := x.ToSlice()
		out := make([]interface{}, len(items))
		for i, el := range items {
			out[i] = toPlain(el)
		}
		return out
	case value.Tuple:
		out := make([]interface{}, len(x.Elements))
		for i, el := range x.Elements {
			out[i] = toPlain(el)
		}
		return out
	case *value.Map:
		out := make(map[string]interface{}, x.Len())
		for _, item := range x.Items() {
			key := item.Elements[0]
			if s, ok := key.(value.String); ok {
				out[s.Value] = toPlain(item.Elements[1])
			} else {
				out[value.Show(key)] = toPlain(item.Elements[1])
			}
		}
		return out
	default:
		return value.Show(v)
	}
}
