package registry

import (
	"reflect"
	"testing"

	"github.com/echolytics/persona-engine/core"
)

func TestRegisterAndLookup(t *testing.T) {
	stub := func(*core.ActivityRecord) []core.Characteristic {
		return []core.Characteristic{{Name: "stub", Value: "v"}}
	}
	Register(core.CategoryInterests, stub)

	fn, ok := ExtractorFor(core.CategoryInterests)
	if !ok {
		t.Fatal("extractor not found after Register")
	}
	got := fn(nil)
	if len(got) != 1 || got[0].Name != "stub" {
		t.Errorf("unexpected extractor output: %+v", got)
	}

	if _, ok := ExtractorFor(core.CategoryBehavior); ok {
		t.Error("unregistered category should not resolve")
	}
}

func TestRegisteredOrder(t *testing.T) {
	stub := func(*core.ActivityRecord) []core.Characteristic { return nil }
	Register(core.CategoryCommunication, stub)
	Register(core.CategoryDemographics, stub)

	cats := Registered()

	// Whatever subset is registered, it comes back in presentation order.
	var want []core.Category
	for _, cat := range core.Categories() {
		if _, ok := ExtractorFor(cat); ok {
			want = append(want, cat)
		}
	}
	if !reflect.DeepEqual(cats, want) {
		t.Errorf("Registered() = %v, want %v", cats, want)
	}
}
