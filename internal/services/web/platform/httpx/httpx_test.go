package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestChainAppliesMiddlewareInDeclarationOrder(t *testing.T) {
	t.Parallel()

	var order []string
	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
		w.WriteHeader(http.StatusNoContent)
	}), tag("first"), nil, tag("second"))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	if recorder.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, recorder.Code)
	}
	want := []string{"first", "second", "handler"}
	if len(order) != len(want) {
		t.Fatalf("expected order %v, got %v", want, order)
	}
	for idx := range want {
		if order[idx] != want[idx] {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}
}

func TestRequestIDGeneratesAndEchoesIdentifier(t *testing.T) {
	t.Parallel()

	var seen string
	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("X-Request-ID")
		w.WriteHeader(http.StatusOK)
	}), RequestID())

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	if seen == "" {
		t.Fatal("expected generated request id")
	}
	if got := recorder.Header().Get("X-Request-ID"); got != seen {
		t.Fatalf("expected echoed request id %q, got %q", seen, got)
	}
}

func TestRequestIDPreservesInboundIdentifier(t *testing.T) {
	t.Parallel()

	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), RequestID())

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Request-ID", "req-123")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	if got := recorder.Header().Get("X-Request-ID"); got != "req-123" {
		t.Fatalf("expected request id %q, got %q", "req-123", got)
	}
}

func TestRecoverPanicReturnsInternalServerError(t *testing.T) {
	t.Parallel()

	handler := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}), RecoverPanic())

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, recorder.Code)
	}
}

func TestIsHTMXRequest(t *testing.T) {
	t.Parallel()

	plain := httptest.NewRequest(http.MethodGet, "/", nil)
	if IsHTMXRequest(plain) {
		t.Fatal("expected plain request to not be htmx")
	}

	htmx := httptest.NewRequest(http.MethodGet, "/", nil)
	htmx.Header.Set("HX-Request", "true")
	if !IsHTMXRequest(htmx) {
		t.Fatal("expected htmx request to be detected")
	}
	if IsHTMXRequest(nil) {
		t.Fatal("expected nil request to not be htmx")
	}
}

func TestWriteRedirectUsesHXRedirectForHTMX(t *testing.T) {
	t.Parallel()

	request := httptest.NewRequest(http.MethodPost, "/app/recipes/r1/save", nil)
	request.Header.Set("HX-Request", "true")
	recorder := httptest.NewRecorder()

	WriteRedirect(recorder, request, "/app/recipes")

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, recorder.Code)
	}
	if got := recorder.Header().Get("HX-Redirect"); got != "/app/recipes" {
		t.Fatalf("expected HX-Redirect %q, got %q", "/app/recipes", got)
	}
}

func TestWriteRedirectFallsBackToHTTPRedirect(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	WriteRedirect(recorder, httptest.NewRequest(http.MethodGet, "/", nil), "/app/recipes")

	if recorder.Code != http.StatusFound {
		t.Fatalf("expected status %d, got %d", http.StatusFound, recorder.Code)
	}
	if got := recorder.Header().Get("Location"); got != "/app/recipes" {
		t.Fatalf("expected location %q, got %q", "/app/recipes", got)
	}
}

func TestWriteHTMLSetsContentType(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	if err := WriteHTML(recorder, http.StatusOK, "<p>hi</p>"); err != nil {
		t.Fatalf("write html: %v", err)
	}
	if got := recorder.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Fatalf("expected html content type, got %q", got)
	}
	if recorder.Body.String() != "<p>hi</p>" {
		t.Fatalf("expected body %q, got %q", "<p>hi</p>", recorder.Body.String())
	}
}
