package meta

import (
	"context"
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	_ "github.com/viant/afs/embed"
)

//go:embed testdata/*
var embedFS embed.FS

type settings struct {
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
}

func TestService_Load(t *testing.T) {
	srv := New(afs.New(), "embed:///testdata", &embedFS).Configure(WithLookup(func(key string) string {
		if key == "DOCFLOW_TITLE" {
			return "Reference"
		}
		return ""
	}))

	ctx := context.Background()
	actual := &settings{}
	require.NoError(t, srv.Load(ctx, "settings.yaml", actual))
	assert.Equal(t, &settings{Title: "Reference", Tags: []string{"api", "reference"}}, actual)

	err := srv.Load(ctx, "missing.yaml", &settings{})
	assert.Error(t, err)
}

func TestService_URL(t *testing.T) {
	srv := New(nil, "embed:///testdata/")
	assert.Equal(t, "embed:///testdata/a.yaml", srv.URL("a.yaml"))
	assert.Equal(t, "mem://localhost/a.yaml", srv.URL("mem://localhost/a.yaml"))
	assert.Equal(t, "/tmp/a.yaml", srv.URL("/tmp/a.yaml"))
	assert.Equal(t, "a.yaml", New(nil, "").URL("a.yaml"))
}
