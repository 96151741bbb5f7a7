package registry

import (
	"os"
	"regexp"
)

// Resolver supplies values for ${VAR} placeholders in model config fields.
// Passing the resolver explicitly keeps the loader free of ambient
// environment lookups.
type Resolver interface {
	Lookup(name string) (string, bool)
}

// MapResolver resolves placeholders from a fixed map. Primarily useful in
// tests and for callers that pre-compute the allowed variables.
type MapResolver map[string]string

// Lookup returns the value for name when present.
func (m MapResolver) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

type envResolver struct{}

func (envResolver) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// EnvResolver returns a Resolver backed by the process environment.
func EnvResolver() Resolver {
	return envResolver{}
}

var placeholderPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// substitute replaces every ${VAR} placeholder in s with the resolver's
// value. Placeholders the resolver cannot answer are left as literal text
// and reported in the second return value.
func substitute(s string, r Resolver) (string, []string) {
	var unresolved []string

	out := placeholderPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := placeholderPattern.FindStringSubmatch(match)[1]
		if value, ok := r.Lookup(name); ok {
			return value
		}
		unresolved = append(unresolved, name)
		return match
	})

	return out, unresolved
}
