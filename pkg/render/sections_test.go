package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-cardform/pkg/model"
)

func TestSplitSidesPartitionsInOrder(t *testing.T) {
	form := model.FormModel{
		Fields: []model.SmartField{
			{ID: "name", Side: model.SideFront},
			{ID: "photo", Side: model.SideFront},
			{ID: "emergency_contact", Side: model.SideBack},
			{ID: "issue_date", Side: model.SideFront},
		},
	}

	sections := SplitSides(form)

	wantFront := []string{"name", "photo", "issue_date"}
	gotFront := fieldIDs(sections.Front)
	if diff := cmp.Diff(wantFront, gotFront); diff != "" {
		t.Fatalf("front mismatch (-want +got):\n%s", diff)
	}

	wantBack := []string{"emergency_contact"}
	if diff := cmp.Diff(wantBack, fieldIDs(sections.Back)); diff != "" {
		t.Fatalf("back mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitSidesUnknownSideFallsToFront(t *testing.T) {
	form := model.FormModel{
		Fields: []model.SmartField{
			{ID: "mystery", Side: model.Side("sideways")},
		},
	}

	sections := SplitSides(form)
	if len(sections.Front) != 1 || sections.Front[0].ID != "mystery" {
		t.Fatalf("unknown side should land on front, got %+v", sections)
	}
}

func TestSectionsEmpty(t *testing.T) {
	if !(Sections{}).Empty() {
		t.Fatalf("zero sections should report empty")
	}
	populated := SplitSides(model.FormModel{Fields: []model.SmartField{{ID: "name"}}})
	if populated.Empty() {
		t.Fatalf("populated sections should not report empty")
	}
}

func fieldIDs(fields []model.SmartField) []string {
	ids := make([]string, 0, len(fields))
	for _, field := range fields {
		ids = append(ids, field.ID)
	}
	return ids
}
