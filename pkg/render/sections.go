package render

import "github.com/goliatone/go-cardform/pkg/model"

// Sections groups a form model's fields by the card side they were discovered
// on. Slice order inside each section preserves extraction order.
type Sections struct {
	Front []model.SmartField
	Back  []model.SmartField
}

// Empty reports whether neither side carries any field.
func (s Sections) Empty() bool {
	return len(s.Front) == 0 && len(s.Back) == 0
}

// SplitSides partitions the form model into front and back sections. Fields
// with an unknown side value are appended to the front section so no field is
// silently dropped from the rendered form.
func SplitSides(form model.FormModel) Sections {
	sections := Sections{}
	for _, field := range form.Fields {
		if field.Side == model.SideBack {
			sections.Back = append(sections.Back, field)
			continue
		}
		sections.Front = append(sections.Front, field)
	}
	return sections
}
