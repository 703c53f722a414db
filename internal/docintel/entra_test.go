package docintel

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestEntraTokenSourceAuthorizesAzureCalls(t *testing.T) {
	quietLogs(t)

	var tokenRequests int
	login := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenRequests++
		if r.URL.Path != "/tenant-1/oauth2/v2.0/token" {
			t.Errorf("unexpected token path %s", r.URL.Path)
		}
		_ = r.ParseForm()
		if got := r.Form.Get("scope"); got != CognitiveServicesScope {
			t.Errorf("unexpected scope %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"entra-token","token_type":"Bearer","expires_in":3600}`)
	}))
	defer login.Close()

	var gotAuth, gotKey string
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get("Ocp-Apim-Subscription-Key")
		if strings.HasSuffix(r.URL.Path, ":analyze") {
			w.Header().Set("Operation-Location", server.URL+"/operations/1")
			w.WriteHeader(http.StatusAccepted)
			return
		}
		_, _ = io.WriteString(w, `{"status":"succeeded","analyzeResult":{"content":"entra text"}}`)
	}))
	defer server.Close()

	ext, err := New(context.Background(), Config{
		Endpoint:     server.URL,
		Key:          "ignored",
		AuthMode:     AuthModeEntra,
		PollInterval: time.Millisecond,
		Entra: EntraCredentials{
			TenantID:     "tenant-1",
			ClientID:     "client-1",
			ClientSecret: "secret-1",
			AuthorityURL: login.URL,
		},
	})
	if err != nil {
		t.Fatalf("new extractor: %v", err)
	}

	text, err := ext.Extract(context.Background(), Document{Data: []byte("%PDF-1.7")})
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if text != "entra text" {
		t.Fatalf("unexpected text %q", text)
	}
	if gotAuth != "Bearer entra-token" {
		t.Fatalf("unexpected authorization header %q", gotAuth)
	}
	if gotKey != "" {
		t.Fatalf("expected no subscription key with entra auth, got %q", gotKey)
	}
	if tokenRequests != 1 {
		t.Fatalf("expected cached token, got %d token requests", tokenRequests)
	}
}
