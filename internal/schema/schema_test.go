package schema

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func serverClass() *Class {
	return &Class{
		Name:        "Server",
		Description: "A network server.",
		Traits: []Trait{
			{Name: "host", Type: cty.String, Help: "Hostname to bind to.", Default: cty.StringVal("localhost")},
			{Name: "port", Type: cty.Number, Help: "Port to listen on.", Default: cty.NumberIntVal(8080)},
			{Name: "debug", Type: cty.Bool},
		},
	}
}

func TestRegistry_PushFrontKeepsOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry(serverClass())
	app := &Class{Name: "Application"}
	r.PushFront(app)

	require.Equal(t, 2, r.Len())
	require.Same(t, app, r.Classes()[0])
	require.Equal(t, "Server", r.Classes()[1].Name)
}

func TestRegistry_ReplacesDuplicateName(t *testing.T) {
	t.Parallel()

	r := NewRegistry(serverClass())
	replacement := &Class{Name: "Server", Description: "Replaced."}
	r.Append(replacement)

	require.Equal(t, 1, r.Len())
	got, ok := r.ByName("Server")
	require.True(t, ok)
	require.Same(t, replacement, got)
}

func TestClass_TraitLookup(t *testing.T) {
	t.Parallel()

	cls := serverClass()

	trait, ok := cls.Trait("port")
	require.True(t, ok)
	require.Equal(t, cty.Number, trait.Type)

	_, ok = cls.Trait("missing")
	require.False(t, ok)
}

func TestClass_WriteHelp(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	serverClass().WriteHelp(out)

	text := out.String()
	require.Contains(t, text, "Server options")
	require.Contains(t, text, "Server.host : string")
	require.Contains(t, text, "Server.port : number")
	require.Contains(t, text, "    Hostname to bind to.")
	require.Contains(t, text, `    Default: "localhost"`)
	require.Contains(t, text, "    Default: 8080")
	// A trait without help or default renders just its signature line.
	require.Contains(t, text, "Server.debug : bool")
}
