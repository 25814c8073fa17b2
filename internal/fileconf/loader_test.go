package fileconf

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_HCL(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "app.hcl", `
Application {
  log_level = 10
}

Server {
  host = "example.com"
  port = 9000
  tags = ["a", "b"]
}
`)

	cfg, err := NewLoader(path).Load(context.Background())
	require.NoError(t, err)

	level, ok := cfg.Attr("Application.log_level")
	require.True(t, ok)
	require.True(t, level.RawEquals(cty.NumberIntVal(10)))

	host, _ := cfg.Attr("Server.host")
	require.True(t, host.RawEquals(cty.StringVal("example.com")))

	tags, _ := cfg.Attr("Server.tags")
	require.True(t, tags.RawEquals(cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")})))
}

func TestLoad_HCL_NestedBlocks(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "app.hcl", `
Server {
  tls {
    enabled = true
  }
}
`)

	cfg, err := NewLoader(path).Load(context.Background())
	require.NoError(t, err)

	enabled, ok := cfg.Attr("Server.tls.enabled")
	require.True(t, ok)
	require.True(t, enabled.RawEquals(cty.True))
}

func TestLoad_HCL_SyntaxError(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "app.hcl", `Server {`)

	_, err := NewLoader(path).Load(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse")
}

func TestLoad_HCL_RejectsVariables(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "app.hcl", `
Server {
  host = some_variable
}
`)

	_, err := NewLoader(path).Load(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to evaluate")
}

func TestLoad_YAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "app.yaml", `
Application:
  log_level: 10
Server:
  host: example.com
  debug: true
  tags: [a, b]
`)

	cfg, err := NewLoader(path).Load(context.Background())
	require.NoError(t, err)

	level, ok := cfg.Attr("Application.log_level")
	require.True(t, ok)
	require.True(t, level.RawEquals(cty.NumberIntVal(10)))

	debug, _ := cfg.Attr("Server.debug")
	require.True(t, debug.RawEquals(cty.True))

	tags, _ := cfg.Attr("Server.tags")
	require.True(t, tags.RawEquals(cty.TupleVal([]cty.Value{cty.StringVal("a"), cty.StringVal("b")})))
}

func TestLoad_SearchPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.hcl"), []byte(`Application { log_level = 20 }`), 0o600))

	cfg, err := NewLoader("app.hcl", dir).Load(context.Background())
	require.NoError(t, err)

	level, ok := cfg.Attr("Application.log_level")
	require.True(t, ok)
	require.True(t, level.RawEquals(cty.NumberIntVal(20)))
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewLoader("does_not_exist.hcl", t.TempDir()).Load(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "app.toml", `x = 1`)

	_, err := NewLoader(path).Load(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported config file extension")
}
