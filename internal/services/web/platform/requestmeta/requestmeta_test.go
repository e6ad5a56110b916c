package requestmeta

import (
	"crypto/tls"
	"net/http/httptest"
	"testing"
)

func TestIsHTTPS(t *testing.T) {
	t.Parallel()

	plain := httptest.NewRequest("GET", "http://kitchen.example/app/recipes", nil)
	if IsHTTPS(plain) {
		t.Fatal("expected plain request to not be https")
	}

	// Server-side requests carry no URL scheme; only r.TLS marks the
	// connection as encrypted.
	secure := httptest.NewRequest("GET", "http://kitchen.example/app/recipes", nil)
	secure.URL.Scheme = ""
	secure.TLS = &tls.ConnectionState{}
	if !IsHTTPS(secure) {
		t.Fatal("expected TLS request to be https")
	}
}

func TestIsHTTPSWithPolicyTrustsForwardedProtoOnlyWhenEnabled(t *testing.T) {
	t.Parallel()

	request := httptest.NewRequest("GET", "http://kitchen.example/app/recipes", nil)
	request.Header.Set("X-Forwarded-Proto", "https")

	if IsHTTPSWithPolicy(request, SchemePolicy{}) {
		t.Fatal("expected forwarded proto to be ignored by default")
	}
	if !IsHTTPSWithPolicy(request, SchemePolicy{TrustForwardedProto: true}) {
		t.Fatal("expected forwarded proto to be trusted with explicit policy")
	}
}

func TestHasSameOriginProof(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		origin  string
		referer string
		want    bool
	}{
		{name: "no proof headers", want: false},
		{name: "matching origin", origin: "http://kitchen.example", want: true},
		{name: "matching referer", referer: "http://kitchen.example/app/recipes", want: true},
		{name: "foreign origin", origin: "http://evil.example", want: false},
		{name: "scheme mismatch", origin: "https://kitchen.example", want: false},
		{name: "port mismatch", origin: "http://kitchen.example:8443", want: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			request := httptest.NewRequest("POST", "http://kitchen.example/app/recipes/r1/save", nil)
			if test.origin != "" {
				request.Header.Set("Origin", test.origin)
			}
			if test.referer != "" {
				request.Header.Set("Referer", test.referer)
			}
			if got := HasSameOriginProof(request); got != test.want {
				t.Fatalf("expected same-origin proof %v, got %v", test.want, got)
			}
		})
	}
}

func TestHasSameOriginProofNilRequest(t *testing.T) {
	t.Parallel()

	if HasSameOriginProof(nil) {
		t.Fatal("expected nil request to have no same-origin proof")
	}
}
