package issuance

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	internalLoader "github.com/goliatone/go-cardform/internal/template/loader"
	"github.com/goliatone/go-cardform/pkg/orchestrator"
	pkgtemplate "github.com/goliatone/go-cardform/pkg/template"
)

const badgeTemplate = `{
  "front": {"objects": [
    {"type": "text", "text": "Full Name:", "isSmartField": true, "smartFieldType": "name"},
    {"type": "text", "text": "DOB:", "isSmartField": true, "smartFieldType": "dob", "dataType": "date"},
    {"type": "image", "isSmartField": true, "smartFieldType": "photo"}
  ]},
  "back": {"objects": [
    {"type": "text", "text": "Notes:", "isSmartField": true, "smartFieldType": "back_text"}
  ]}
}`

func testOptions(t *testing.T, templates fstest.MapFS, fns ...OptionFn) []OptionFn {
	t.Helper()

	loader := internalLoader.New(pkgtemplate.NewLoaderOptions(pkgtemplate.WithFileSystem(templates)))
	base := []OptionFn{
		WithSource(pkgtemplate.SourceFromFS("badge.json")),
		WithTemplateID("employee-badge"),
		WithLoader(loader),
		WithOrchestrator(orchestrator.New(orchestrator.WithLoader(loader))),
	}
	return append(base, fns...)
}

func badgeFS() fstest.MapFS {
	return fstest.MapFS{
		"badge.json": &fstest.MapFile{Data: []byte(badgeTemplate)},
	}
}

func TestGetServesRenderedForm(t *testing.T) {
	handler := NewHandler(testOptions(t, badgeFS())...)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cards/issue", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, `data-field-id="name"`) || !strings.Contains(body, "cf-side--back") {
		t.Fatalf("form markup missing:\n%s", body)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Fatalf("content type = %q", ct)
	}
}

func TestGetMissingTemplateIsBadGateway(t *testing.T) {
	handler := NewHandler(testOptions(t, fstest.MapFS{})...)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cards/issue", nil))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "could not load template") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestGetMalformedTemplateRendersEmptyState(t *testing.T) {
	broken := fstest.MapFS{
		"badge.json": &fstest.MapFile{Data: []byte("not a template")},
	}
	handler := NewHandler(testOptions(t, broken)...)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cards/issue", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "no smart fields") {
		t.Fatalf("expected empty state:\n%s", rec.Body.String())
	}
}

func TestPostForwardsValuesToSink(t *testing.T) {
	var got IssueRequest
	sink := SinkFunc(func(_ context.Context, req IssueRequest) error {
		got = req
		return nil
	})

	handler := NewHandler(testOptions(t, badgeFS(), WithSink(sink))...)

	form := url.Values{
		"name":        {"Ada Lovelace"},
		"dob":         {"1990-04-02"},
		"back_text":   {"carry at all times"},
		"badge_color": {"blue"},
	}
	req := httptest.NewRequest(http.MethodPost, "/cards/issue", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if got.TemplateID != "employee-badge" {
		t.Fatalf("template id = %q", got.TemplateID)
	}
	if got.Values["name"] != "Ada Lovelace" || got.Values["dob"] != "1990-04-02" {
		t.Fatalf("values not forwarded verbatim: %v", got.Values)
	}
	if _, ok := got.Values["badge_color"]; ok {
		t.Fatalf("unknown field leaked into sink payload: %v", got.Values)
	}
}

func TestPostAcceptsJSONRecord(t *testing.T) {
	var got IssueRequest
	sink := SinkFunc(func(_ context.Context, req IssueRequest) error {
		got = req
		return nil
	})
	handler := NewHandler(testOptions(t, badgeFS(), WithSink(sink))...)

	payload := `{"name": "Ada Lovelace", "dob": "1990-04-02", "back_text": "carry at all times", "badge_color": "blue"}`
	req := httptest.NewRequest(http.MethodPost, "/cards/issue", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if got.Values["name"] != "Ada Lovelace" || got.Values["dob"] != "1990-04-02" {
		t.Fatalf("submitted values lost: %v", got.Values)
	}
	if got.Values["back_text"] != "carry at all times" {
		t.Fatalf("back_text not forwarded: %v", got.Values)
	}
	if _, ok := got.Values["badge_color"]; ok {
		t.Fatalf("unknown field leaked into sink payload: %v", got.Values)
	}
}

func TestPostMalformedJSONIsBadRequest(t *testing.T) {
	called := false
	sink := SinkFunc(func(context.Context, IssueRequest) error {
		called = true
		return nil
	})
	handler := NewHandler(testOptions(t, badgeFS(), WithSink(sink))...)

	req := httptest.NewRequest(http.MethodPost, "/cards/issue", strings.NewReader(`{"name": `))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if called {
		t.Fatalf("sink must not run for malformed submissions")
	}
}

func TestPostMultipartForwardsUploadedFile(t *testing.T) {
	var got IssueRequest
	sink := SinkFunc(func(_ context.Context, req IssueRequest) error {
		got = req
		return nil
	})
	handler := NewHandler(testOptions(t, badgeFS(), WithSink(sink))...)

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writer.WriteField("name", "Ada Lovelace"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	part, err := writer.CreateFormFile("photo", "photo.png")
	if err != nil {
		t.Fatalf("create file part: %v", err)
	}
	if _, err := part.Write([]byte("png-bytes")); err != nil {
		t.Fatalf("write file part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/cards/issue", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if got.Values["name"] != "Ada Lovelace" {
		t.Fatalf("text field lost in multipart submission: %v", got.Values)
	}
	attachment, ok := got.Values["photo"].(Attachment)
	if !ok {
		t.Fatalf("photo value = %T (%v), want Attachment", got.Values["photo"], got.Values["photo"])
	}
	if attachment.Filename != "photo.png" || string(attachment.Data) != "png-bytes" {
		t.Fatalf("attachment mismatch: %+v", attachment)
	}
	if attachment.Size != int64(len("png-bytes")) {
		t.Fatalf("attachment size = %d", attachment.Size)
	}
}

func TestPostRejectsUnsupportedContentType(t *testing.T) {
	called := false
	sink := SinkFunc(func(context.Context, IssueRequest) error {
		called = true
		return nil
	})
	handler := NewHandler(testOptions(t, badgeFS(), WithSink(sink))...)

	req := httptest.NewRequest(http.MethodPost, "/cards/issue", strings.NewReader("name,dob\nAda,1990-04-02"))
	req.Header.Set("Content-Type", "text/csv")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status = %d", rec.Code)
	}
	if called {
		t.Fatalf("sink must not run for unsupported content types")
	}
}

func TestPostWithoutSinkIsNotImplemented(t *testing.T) {
	handler := NewHandler(testOptions(t, badgeFS())...)

	req := httptest.NewRequest(http.MethodPost, "/cards/issue", strings.NewReader("name=Ada"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotImplemented {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestCapabilityGate(t *testing.T) {
	deny := func(string) bool { return false }
	handler := NewHandler(testOptions(t, badgeFS(), WithCapability(deny))...)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cards/issue", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("GET status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cards/issue", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("POST status = %d", rec.Code)
	}
}

func TestCapabilityGateGrantsNamedCapabilities(t *testing.T) {
	var asked []string
	grant := func(capability string) bool {
		asked = append(asked, capability)
		return capability == CapabilityView
	}
	handler := NewHandler(testOptions(t, badgeFS(), WithCapability(grant))...)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cards/issue", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cards/issue", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("POST status = %d", rec.Code)
	}

	if len(asked) != 2 || asked[0] != CapabilityView || asked[1] != CapabilityIssue {
		t.Fatalf("unexpected capability checks %v", asked)
	}
}

func TestGuardErrorsMapToStatusCodes(t *testing.T) {
	guard := func(*http.Request) error {
		return StatusError{Code: http.StatusUnauthorized, Err: errors.New("no session")}
	}
	handler := NewHandler(testOptions(t, badgeFS(), WithGuard(guard))...)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cards/issue", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "no session") {
		t.Fatalf("guard message lost: %q", rec.Body.String())
	}
}

func TestMethodNotAllowed(t *testing.T) {
	handler := NewHandler(testOptions(t, badgeFS())...)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/cards/issue", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); !strings.Contains(allow, http.MethodPost) {
		t.Fatalf("Allow header = %q", allow)
	}
}

func TestRegisterRoutesMountPath(t *testing.T) {
	mux := http.NewServeMux()
	pattern, err := RegisterRoutes(mux, "/admin", testOptions(t, badgeFS())...)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if pattern != "/admin/cards/issue" {
		t.Fatalf("pattern = %q", pattern)
	}

	if got := MountPath("", WithRoutePath("/kiosk")); got != "/kiosk" {
		t.Fatalf("mount path = %q", got)
	}
}

func TestRegisterRoutesRequiresMux(t *testing.T) {
	if _, err := RegisterRoutes(nil, "/admin"); err == nil {
		t.Fatalf("expected error for nil mux")
	}
}
