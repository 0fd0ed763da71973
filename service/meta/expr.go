package meta

import (
	"strings"
	"unicode"
)

const envPrefix = "${env."

// expandEnvExpr replaces every ${env.KEY} in value with lookup(KEY).  Keys
// must consist of letters, digits or '_'; anything else leaves the prefix
// untouched and scanning resumes right after it.
func expandEnvExpr(value string, lookup func(string) string) string {
	if !strings.Contains(value, envPrefix) {
		return value
	}
	var b strings.Builder
	rest := value
	for {
		idx := strings.Index(rest, envPrefix)
		if idx < 0 {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:idx])
		afterPrefix := rest[idx+len(envPrefix):]
		end := strings.IndexByte(afterPrefix, '}')
		if end < 0 {
			b.WriteString(rest[idx:])
			return b.String()
		}
		key := afterPrefix[:end]
		if !isEnvKey(key) {
			b.WriteString(envPrefix)
			rest = afterPrefix
			continue
		}
		b.WriteString(lookup(key))
		rest = afterPrefix[end+1:]
	}
}

func isEnvKey(key string) bool {
	for _, r := range key {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return false
		}
	}
	return true
}
