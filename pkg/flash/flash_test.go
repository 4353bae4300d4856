package flash_test

import (
	"testing"

	"github.com/dmitrymomot/toastkit/pkg/flash"
)

func TestMap_Clone(t *testing.T) {
	original := flash.Map{"info": "Welcome", "error": "Nope"}

	clone := original.Clone()
	clone["info"] = "changed"
	clone["success"] = "new"

	if original["info"] != "Welcome" {
		t.Errorf("Clone() did not copy: original mutated to %q", original["info"])
	}
	if _, ok := original["success"]; ok {
		t.Error("Clone() shares storage with the original")
	}
}

func TestMap_CloneNil(t *testing.T) {
	var m flash.Map
	if m.Clone() != nil {
		t.Error("Clone() of nil map should be nil")
	}
}

func TestStaticSource_Snapshot(t *testing.T) {
	src := flash.StaticSource{"info": "Welcome"}

	snap := src.Snapshot()
	snap["info"] = "changed"

	if got := src.Snapshot()["info"]; got != "Welcome" {
		t.Errorf("Snapshot() must return a copy, source mutated to %q", got)
	}
}
