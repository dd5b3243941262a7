// Package naming converts between wire-case field names (GNodeId) and the
// internal case used in memory (g_node_id).
package naming

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Separator joins words of an internal-case name.
const Separator = "_"

// ToWireCase converts an internal name to wire case. Every word is capitalized
// and the rest of the word lowercased; an empty word becomes the separator.
func ToWireCase(name string) string {
	words := strings.Split(name, Separator)
	var b strings.Builder
	b.Grow(len(name))
	for _, w := range words {
		if w == "" {
			b.WriteString(Separator)
			continue
		}
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}

// ToInternalCase inserts the separator before every capital except the first
// character and lowercases the result.
func ToInternalCase(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteString(Separator)
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// IsWireCase reports whether key matches ^[A-Z][a-zA-Z0-9]*$.
func IsWireCase(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'A' && c <= 'Z':
		case i > 0 && c >= 'a' && c <= 'z':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}

// IsFullyWireCase walks maps and slices and reports whether every map key is wire case.
func IsFullyWireCase(doc any) bool {
	_, bad := FindNonWireCase(doc)
	return !bad
}

// FindNonWireCase returns the path of the first key that is not wire case.
// Keys are visited in sorted order so the result is deterministic.
func FindNonWireCase(doc any) (string, bool) {
	return walk(doc, "")
}

func walk(node any, path string) (string, bool) {
	switch n := node.(type) {
	case map[string]any:
		keys := make([]string, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			p := path + "/" + k
			if !IsWireCase(k) {
				return p, true
			}
			if bad, found := walk(n[k], p); found {
				return bad, true
			}
		}
	case []any:
		for i, item := range n {
			if bad, found := walk(item, fmt.Sprintf("%s/%d", path, i)); found {
				return bad, true
			}
		}
	case []map[string]any:
		for i, item := range n {
			if bad, found := walk(item, fmt.Sprintf("%s/%d", path, i)); found {
				return bad, true
			}
		}
	}
	return "", false
}
