package catalog

import (
	"testing"

	"github.com/litescript/ls-starfield/internal/astro"
)

func TestNearestN(t *testing.T) {
	cat := Catalog{Records: []Record{
		{Name: "far", Pos: astro.Vec3{X: 100}},
		{Name: "near", Pos: astro.Vec3{X: 1}},
		{Name: "mid", Pos: astro.Vec3{X: 50}},
		{Name: "origin", Pos: astro.Vec3{}},
	}}

	got := cat.NearestN(3)
	want := []string{"origin", "near", "mid"}
	if len(got) != 3 {
		t.Fatalf("NearestN(3) returned %d records", len(got))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("NearestN[%d] = %q, want %q", i, got[i].Name, name)
		}
	}

	// The catalog itself stays in input order.
	if cat.Records[0].Name != "far" {
		t.Errorf("NearestN reordered the catalog: first record %q", cat.Records[0].Name)
	}
}

func TestNearestN_TiesKeepInputOrder(t *testing.T) {
	cat := Catalog{Records: []Record{
		{Name: "a", Pos: astro.Vec3{X: 5}},
		{Name: "b", Pos: astro.Vec3{Y: 5}},
		{Name: "c", Pos: astro.Vec3{Z: 5}},
	}}

	got := cat.NearestN(3)
	for i, name := range []string{"a", "b", "c"} {
		if got[i].Name != name {
			t.Errorf("tied record %d = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestNearestN_CapBeyondSize(t *testing.T) {
	cat := Catalog{Records: []Record{{Name: "only"}}}
	if got := cat.NearestN(250); len(got) != 1 {
		t.Errorf("NearestN(250) on 1 record returned %d", len(got))
	}
	empty := Catalog{}
	if got := empty.NearestN(10); len(got) != 0 {
		t.Errorf("NearestN on empty catalog returned %d", len(got))
	}
}
