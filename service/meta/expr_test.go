package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnvExpr(t *testing.T) {
	testCases := []struct {
		name   string
		env    map[string]string
		input  string
		expect string
	}{
		{name: "no expressions", input: "just a plain string", expect: "just a plain string"},
		{name: "single expression", env: map[string]string{"FOO": "bar"}, input: "value is ${env.FOO}", expect: "value is bar"},
		{name: "multiple expressions", env: map[string]string{"A": "1", "B": "2"}, input: "${env.A}-${env.B}-${env.A}", expect: "1-2-1"},
		{name: "unset variable becomes empty", input: "unset=${env.NOTSET}-end", expect: "unset=-end"},
		{name: "missing closing brace", env: map[string]string{"X": "x"}, input: "start ${env.X and ${env.Y} end", expect: "start ${env.X and  end"},
		{name: "empty key", input: "oops ${env.} done", expect: "oops  done"},
		{name: "invalid key keeps prefix", env: map[string]string{"B": "b"}, input: "${env.a-b}${env.B}", expect: "${env.a-b}b"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lookup := func(key string) string { return tc.env[key] }
			assert.Equal(t, tc.expect, expandEnvExpr(tc.input, lookup))
		})
	}
}
