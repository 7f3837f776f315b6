package issuance

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/goliatone/go-cardform/pkg/model"
	"github.com/goliatone/go-cardform/pkg/orchestrator"
	"github.com/goliatone/go-cardform/pkg/render"
	pkgtemplate "github.com/goliatone/go-cardform/pkg/template"
	"github.com/goliatone/go-cardform/pkg/values"
)

// maxSubmissionBytes caps multipart submissions; uploaded photos and
// signatures are small images.
const maxSubmissionBytes = 16 << 20

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Handler builds a net/http handler with default options plus any overrides.
func Handler(fns ...OptionFn) http.Handler {
	return NewHandler(fns...)
}

func NewHandler(fns ...OptionFn) http.Handler {
	opts := NewOptions(fns...)
	return HandlerWithOptions(opts)
}

// HandlerWithOptions builds a net/http handler from a pre-constructed Options
// value. Callers are expected to pass an Options value produced by NewOptions
// (or equivalent) so defaults apply.
func HandlerWithOptions(opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r == nil {
			http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				writeHTTPError(w, err)
				return
			}
		}

		switch r.Method {
		case http.MethodGet, http.MethodHead:
			serveForm(w, r, opts)
		case http.MethodPost:
			acceptSubmission(w, r, opts)
		default:
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead+", "+http.MethodPost)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		}
	})
}

func serveForm(w http.ResponseWriter, r *http.Request, opts Options) {
	if !allowed(opts, CapabilityView) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	if opts.Source == nil {
		opts.Logger.Error().Msg("issuance: no template source configured")
		http.Error(w, "could not load template", http.StatusBadGateway)
		return
	}

	output, err := opts.Orchestrator.Generate(r.Context(), orchestrator.Request{
		Source:     opts.Source,
		TemplateID: opts.TemplateID,
		RenderOptions: render.RenderOptions{
			Action: r.URL.Path,
		},
	})
	if err != nil {
		opts.Logger.Error().Err(err).Str("source", opts.Source.Location()).Msg("issuance: load template")
		http.Error(w, "could not load template", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(output)
}

func acceptSubmission(w http.ResponseWriter, r *http.Request, opts Options) {
	if !allowed(opts, CapabilityIssue) {
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}
	if opts.Sink == nil {
		http.Error(w, http.StatusText(http.StatusNotImplemented), http.StatusNotImplemented)
		return
	}
	if opts.Source == nil {
		http.Error(w, "could not load template", http.StatusBadGateway)
		return
	}

	doc, err := opts.Loader.Load(r.Context(), opts.Source)
	if err != nil {
		opts.Logger.Error().Err(err).Str("source", opts.Source.Location()).Msg("issuance: load template")
		http.Error(w, "could not load template", http.StatusBadGateway)
		return
	}

	form, err := opts.Extractor.Extract(pkgtemplate.DecodeDocument(doc))
	if err != nil {
		opts.Logger.Error().Err(err).Msg("issuance: extract fields")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	updates, err := collectSubmission(r, form.Fields)
	if err != nil {
		opts.Logger.Error().Err(err).Msg("issuance: parse submission")
		writeHTTPError(w, err)
		return
	}

	record := values.NewRecord(form.Fields)
	record.Set(updates)

	req := IssueRequest{
		TemplateID: templateID(opts, doc),
		Values:     record.Snapshot(),
	}
	if err := opts.Sink.Issue(r.Context(), req); err != nil {
		opts.Logger.Error().Err(err).Str("template", req.TemplateID).Msg("issuance: sink rejected submission")
		writeHTTPError(w, err)
		return
	}

	opts.Logger.Info().Str("template", req.TemplateID).Int("fields", len(form.Fields)).Msg("issuance: submission accepted")
	w.WriteHeader(http.StatusAccepted)
}

// collectSubmission normalises the request body into the flat field→value
// map the record merge expects. JSON bodies carry the record directly; form
// encodings are walked per field so multipart file parts surface as
// Attachment values. Unknown identifiers pass through here and are dropped by
// the record merge.
func collectSubmission(r *http.Request, fields []model.SmartField) (map[string]any, error) {
	contentType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch contentType {
	case "application/json":
		return decodeJSONSubmission(r.Body)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxSubmissionBytes); err != nil {
			return nil, StatusError{Code: http.StatusBadRequest, Err: err}
		}
		return formSubmission(r, fields)
	case "application/x-www-form-urlencoded", "":
		if err := r.ParseForm(); err != nil {
			return nil, StatusError{Code: http.StatusBadRequest, Err: err}
		}
		return formSubmission(r, fields)
	default:
		return nil, StatusError{
			Code: http.StatusUnsupportedMediaType,
			Err:  fmt.Errorf("issuance: unsupported content type %q", contentType),
		}
	}
}

func decodeJSONSubmission(body io.Reader) (map[string]any, error) {
	updates := map[string]any{}
	decoder := json.NewDecoder(io.LimitReader(body, maxSubmissionBytes))
	if err := decoder.Decode(&updates); err != nil {
		return nil, StatusError{
			Code: http.StatusBadRequest,
			Err:  fmt.Errorf("issuance: decode submission: %w", err),
		}
	}
	return updates, nil
}

func formSubmission(r *http.Request, fields []model.SmartField) (map[string]any, error) {
	updates := make(map[string]any, len(fields))
	for _, field := range fields {
		if field.Type == model.FieldTypeFile {
			attachment, err := readAttachment(r, field.ID)
			if err != nil {
				return nil, err
			}
			if attachment != nil {
				updates[field.ID] = attachment
			}
			continue
		}
		if value := r.PostFormValue(field.ID); value != "" {
			updates[field.ID] = value
		}
	}
	return updates, nil
}

// readAttachment pulls the uploaded part for a file-typed field. Urlencoded
// submissions may reference a previously stored attachment by handle, so the
// plain form value is the fallback; a missing part leaves the record's nil
// default in place.
func readAttachment(r *http.Request, id string) (any, error) {
	if r.MultipartForm != nil && len(r.MultipartForm.File[id]) > 0 {
		header := r.MultipartForm.File[id][0]
		file, err := header.Open()
		if err != nil {
			return nil, StatusError{
				Code: http.StatusBadRequest,
				Err:  fmt.Errorf("issuance: open upload %q: %w", id, err),
			}
		}
		defer func() {
			_ = file.Close()
		}()

		data, err := io.ReadAll(file)
		if err != nil {
			return nil, StatusError{
				Code: http.StatusBadRequest,
				Err:  fmt.Errorf("issuance: read upload %q: %w", id, err),
			}
		}
		return Attachment{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Data:        data,
		}, nil
	}
	if value := r.PostFormValue(id); value != "" {
		return value, nil
	}
	return nil, nil
}

func templateID(opts Options, doc pkgtemplate.Document) string {
	if opts.TemplateID != "" {
		return opts.TemplateID
	}
	return doc.Location()
}

func allowed(opts Options, capability string) bool {
	if opts.Capability == nil {
		return true
	}
	return opts.Capability(capability)
}

func writeHTTPError(w http.ResponseWriter, err error) {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		http.Error(w, httpErr.Error(), httpErr.StatusCode())
		return
	}
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
