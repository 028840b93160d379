// Package attrs reads values back out of slog-style key/value argument lists.
package attrs

import "log/slog"

// ExtractString returns the string value logged under key. list holds
// alternating keys and values, optionally mixed with slog.Attr entries, as
// accepted by slog.Logger.Info. Missing keys and non-string values yield "".
func ExtractString(list []any, key string) string {
	for i := 0; i < len(list); i++ {
		if a, ok := list[i].(slog.Attr); ok {
			if a.Key == key && a.Value.Kind() == slog.KindString {
				return a.Value.String()
			}
			continue
		}
		if i+1 >= len(list) {
			break
		}
		k, ok := list[i].(string)
		i++
		if !ok || k != key {
			continue
		}
		if v, ok := list[i].(string); ok {
			return v
		}
	}
	return ""
}
