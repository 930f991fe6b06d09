package restclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tr4cking/admin-api/pkg/apperror"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	session, err := NewSession(5 * time.Second)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return session
}

func TestResourcePathsCarryTrailingSlash(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	resource := NewFactory(server.URL, 5*time.Second).Resource("encomiendas")
	ctx := context.Background()

	var out map[string]any
	if err := resource.List(ctx, &out); err != nil {
		t.Fatalf("list: %v", err)
	}
	if err := resource.Get(ctx, 7, &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if err := resource.GetPath(ctx, "current", &out); err != nil {
		t.Fatalf("get path: %v", err)
	}

	want := []string{"/api/encomiendas/", "/api/encomiendas/7/", "/api/encomiendas/current/"}
	for i, p := range want {
		if paths[i] != p {
			t.Errorf("path %d: got %q, want %q", i, paths[i], p)
		}
	}
}

func TestMutatingRequestsCarryCSRFToken(t *testing.T) {
	var gotToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "tok123", Path: "/"})
			w.Write([]byte(`{}`))
			return
		}
		gotToken = r.Header.Get("X-CSRFToken")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	session := newTestSession(t)
	ctx := WithSession(context.Background(), session)
	resource := NewFactory(server.URL, 5*time.Second).Resource("auth")

	// Prime: the GET response sets the csrftoken cookie into the jar.
	var out map[string]any
	if err := resource.GetPath(ctx, "probe", &out); err != nil {
		t.Fatalf("prime: %v", err)
	}
	if token := session.CSRFToken(server.URL); token != "tok123" {
		t.Fatalf("jar token: got %q", token)
	}

	if err := resource.Create(ctx, map[string]string{"a": "b"}, nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	if gotToken != "tok123" {
		t.Errorf("X-CSRFToken: got %q, want tok123", gotToken)
	}
}

func TestWithoutSessionNoCSRFHeader(t *testing.T) {
	var hadToken bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hadToken = r.Header.Get("X-CSRFToken") != ""
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	resource := NewFactory(server.URL, 5*time.Second).Resource("cajas")
	if err := resource.Create(context.Background(), map[string]string{"a": "b"}, nil); err != nil {
		t.Fatalf("create: %v", err)
	}
	if hadToken {
		t.Error("plain requests must not carry a CSRF header")
	}
}

func TestDecodeErrorDetailBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail": "Authentication credentials were not provided."}`))
	}))
	defer server.Close()

	resource := NewFactory(server.URL, 5*time.Second).Resource("clientes")
	err := resource.List(context.Background(), &[]any{})
	appErr := apperror.GetAppError(err)
	if appErr.Code != http.StatusForbidden {
		t.Errorf("code: got %d", appErr.Code)
	}
	if appErr.Message != "Authentication credentials were not provided." {
		t.Errorf("message: got %q", appErr.Message)
	}
}

func TestDecodeErrorFieldMap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"remitente": ["This field is required."], "cliente": ["Invalid pk."]}`))
	}))
	defer server.Close()

	resource := NewFactory(server.URL, 5*time.Second).Resource("encomiendas")
	err := resource.Create(context.Background(), map[string]string{}, nil)
	appErr := apperror.GetAppError(err)

	if len(appErr.Errors) != 2 {
		t.Fatalf("field errors: %+v", appErr.Errors)
	}
	// Field names sorted, one line per message.
	if appErr.Errors[0].Field != "cliente" || appErr.Errors[1].Field != "remitente" {
		t.Errorf("order: %+v", appErr.Errors)
	}
	want := "cliente: Invalid pk.\nremitente: This field is required."
	if appErr.Message != want {
		t.Errorf("message: got %q, want %q", appErr.Message, want)
	}
}

func TestTransportErrorBecomesBadGateway(t *testing.T) {
	resource := NewFactory("http://127.0.0.1:1", 500*time.Millisecond).Resource("clientes")
	err := resource.List(context.Background(), &[]any{})
	if apperror.GetAppError(err).Code != http.StatusBadGateway {
		t.Errorf("got %v, want 502", err)
	}
}
