package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

// ctyComparer lets go-cmp compare cty values held inside Config trees.
var ctyComparer = cmp.Comparer(func(a, b cty.Value) bool {
	return a.RawEquals(b)
})

func TestMerge_AddsAndOverwrites(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	base := New()
	base.SetAttr("Server.host", cty.StringVal("localhost"))
	base.SetAttr("Server.port", cty.NumberIntVal(8080))

	incoming := New()
	incoming.SetAttr("Server.port", cty.NumberIntVal(9000))
	incoming.SetAttr("Application.log_level", cty.NumberIntVal(10))

	// --- Act ---
	base.Merge(incoming)

	// --- Assert ---
	want := New()
	want.SetAttr("Server.host", cty.StringVal("localhost"))
	want.SetAttr("Server.port", cty.NumberIntVal(9000))
	want.SetAttr("Application.log_level", cty.NumberIntVal(10))
	if diff := cmp.Diff(want, base, ctyComparer); diff != "" {
		t.Fatalf("merged config mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge_PreservesSiblingSections(t *testing.T) {
	t.Parallel()

	base := New()
	base.SetAttr("A.B.x", cty.NumberIntVal(1))
	base.SetAttr("A.B.y", cty.NumberIntVal(2))

	incoming := New()
	incoming.SetAttr("A.B.y", cty.NumberIntVal(3))
	incoming.SetAttr("A.C.z", cty.True)

	base.Merge(incoming)

	x, ok := base.Attr("A.B.x")
	require.True(t, ok, "untouched nested key should survive the merge")
	require.True(t, x.RawEquals(cty.NumberIntVal(1)))

	y, _ := base.Attr("A.B.y")
	require.True(t, y.RawEquals(cty.NumberIntVal(3)))

	z, ok := base.Attr("A.C.z")
	require.True(t, ok)
	require.True(t, z.RawEquals(cty.True))
}

func TestMerge_SectionReplacesLeaf(t *testing.T) {
	t.Parallel()

	base := Config{"A": cty.StringVal("leaf")}
	incoming := New()
	incoming.SetAttr("A.b", cty.NumberIntVal(1))

	base.Merge(incoming)

	v, ok := base.Attr("A.b")
	require.True(t, ok)
	require.True(t, v.RawEquals(cty.NumberIntVal(1)))
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()

	original := New()
	original.SetAttr("Server.host", cty.StringVal("localhost"))

	clone := original.Clone()
	clone.SetAttr("Server.host", cty.StringVal("example.com"))
	clone.SetAttr("Server.port", cty.NumberIntVal(80))

	host, _ := original.Attr("Server.host")
	require.True(t, host.RawEquals(cty.StringVal("localhost")), "mutating a clone must not leak into the original")
	_, ok := original.Attr("Server.port")
	require.False(t, ok)
}

func TestAttr_MissingPaths(t *testing.T) {
	t.Parallel()

	cfg := New()
	cfg.SetAttr("Server.host", cty.StringVal("localhost"))

	_, ok := cfg.Attr("Server.missing")
	require.False(t, ok)

	_, ok = cfg.Attr("Missing.host")
	require.False(t, ok)

	// A section is not an attribute.
	_, ok = cfg.Attr("Server")
	require.False(t, ok)
}
