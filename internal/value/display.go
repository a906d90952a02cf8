package value

import "strings"

// Show is the cycle-safe display entry point used by to_string()/terminals
// and Object's default field printing. A List or Map containing itself
// would otherwise recurse forever through Display(), so it carries its own
// visited-set guard — Equals has its own (equality.go), this is display's.
func Show(v Value) string {
	return show(v, map[interface{}]bool{})
}

func show(v Value, visited map[interface{}]bool) string {
	switch x := v.(type) {
	case *List:
		if visited[x] {
			return "[...]"
		}
		visited[x] = true
		parts := make([]string, 0, x.Len())
		for _, el := range x.ToSlice() {
			parts = append(parts, show(el, visited))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *Map:
		if visited[x] {
			return "{...}"
		}
		visited[x] = true
		var sb strings.Builder
		sb.WriteString("{")
		for i, it := range x.Items() {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(show(it.Elements[0], visited))
			sb.WriteString(": ")
			sb.WriteString(show(it.Elements[1], visited))
		}
		sb.WriteString("}")
		return sb.String()
	case Tuple:
		parts := make([]string, len(x.Elements))
		for i, el := range x.Elements {
			parts[i] = show(el, visited)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return v.Display()
	}
}
