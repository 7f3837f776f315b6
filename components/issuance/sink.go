package issuance

import "context"

// IssueRequest carries a submission to the Sink exactly as collected: values
// keyed by smart field identifier, untouched by the component.
type IssueRequest struct {
	TemplateID string
	Values     map[string]any
}

// Attachment is the uploaded payload for a file-typed smart field. The
// handler forwards it inside IssueRequest.Values; where the bytes land is the
// sink's concern.
type Attachment struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

// Sink receives completed submissions. Implementations typically queue a card
// print job or persist the record.
type Sink interface {
	Issue(ctx context.Context, req IssueRequest) error
}

// SinkFunc adapts a function into a Sink.
type SinkFunc func(ctx context.Context, req IssueRequest) error

// Issue calls the underlying function.
func (fn SinkFunc) Issue(ctx context.Context, req IssueRequest) error {
	return fn(ctx, req)
}
