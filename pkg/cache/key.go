package cache

import (
	"strings"
)

type Key string
type Namespace string

// DefaultNamespace prefixes every key the dashboard stores, keeping cache
// entries apart from unrelated data a shared store may hold.
const DefaultNamespace = Namespace("mydash-cache")

func (n Namespace) Key(key string) Key {
	var sb strings.Builder
	sb.WriteString(string(n))
	sb.WriteString(":")
	sb.WriteString(key)
	return Key(sb.String())
}

func (k Key) Namespace() Namespace {
	split := strings.SplitN(string(k), ":", 2)
	if len(split) == 2 {
		return Namespace(split[0])
	}
	return ""
}
