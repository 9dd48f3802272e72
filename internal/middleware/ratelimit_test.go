package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(handler http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	handler.ServeHTTP(rr, req)
	return rr
}

func TestRateLimitDeniesAfterBurst(t *testing.T) {
	handler := RateLimit(1, 2)(okHandler())

	for i := 0; i < 2; i++ {
		if rr := doRequest(handler, "10.0.0.1:1234"); rr.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rr.Code)
		}
	}

	if rr := doRequest(handler, "10.0.0.1:1234"); rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst exhausted, got %d", rr.Code)
	}
}

func TestRateLimitTracksClientsSeparately(t *testing.T) {
	handler := RateLimit(1, 1)(okHandler())

	if rr := doRequest(handler, "10.0.0.1:1234"); rr.Code != http.StatusOK {
		t.Fatalf("first client: expected 200, got %d", rr.Code)
	}
	if rr := doRequest(handler, "10.0.0.1:1234"); rr.Code != http.StatusTooManyRequests {
		t.Fatalf("first client: expected 429 after burst, got %d", rr.Code)
	}

	if rr := doRequest(handler, "10.0.0.2:1234"); rr.Code != http.StatusOK {
		t.Fatalf("second client: expected 200, got %d", rr.Code)
	}
}
