package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticTokens struct {
	token string
}

func (s staticTokens) Token() (string, bool) {
	return s.token, s.token != ""
}

func testPolicy() Policy {
	return Policy{MaxRetries: 2, BaseDelay: time.Millisecond, Retryable: IsAbortedTransaction}
}

func TestDo_AttachesBasicAuth(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, Tokens: staticTokens{"dG9rZW4="}, Retry: testPolicy()})
	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/all", nil, &out))
	assert.Equal(t, "Basic dG9rZW4=", gotAuth)
	assert.True(t, out.OK)
}

func TestDo_NoCredentialNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, Tokens: staticTokens{}, Retry: testPolicy()})
	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/all", nil, nil))
	assert.Empty(t, gotAuth)
}

func TestDo_UnauthorizedClearsCredential(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"bad credentials"}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	cleared := false
	c := NewClient(Options{
		BaseURL:        srv.URL,
		Tokens:         staticTokens{"dG9rZW4="},
		OnUnauthorized: func() { cleared = true },
		Retry:          testPolicy(),
	})

	err := c.Do(context.Background(), http.MethodGet, "/all", nil, nil)
	require.Error(t, err)
	assert.True(t, IsAuthError(err))
	assert.True(t, cleared, "401 must clear the persisted credential")
}

func TestDo_ConflictAndNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/register":
			http.Error(w, `{"message":"username taken"}`, http.StatusConflict)
		default:
			http.Error(w, `{"message":"no such record"}`, http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, Retry: testPolicy()})

	err := c.Do(context.Background(), http.MethodPost, "/register", map[string]string{}, nil)
	assert.True(t, IsConflictError(err))

	err = c.Do(context.Background(), http.MethodDelete, "/delete/99", nil, nil)
	assert.True(t, IsNotFoundError(err))
}

func TestDo_RetriesAbortedTransaction(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			http.Error(w, `{"message":"current transaction is aborted"}`, http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, Retry: testPolicy()})
	var out []any
	require.NoError(t, c.Do(context.Background(), http.MethodGet, "/all", nil, &out))
	assert.Equal(t, 3, attempts)
}

func TestDo_RetryGivesUp(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, `{"message":"transaction is aborted"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, Retry: testPolicy()})
	err := c.Do(context.Background(), http.MethodGet, "/all", nil, nil)
	require.Error(t, err)
	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, 3, attempts, "initial attempt plus two retries")
}

func TestDo_OtherServerErrorsNotRetried(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		http.Error(w, `{"message":"out of disk"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, Retry: testPolicy()})
	err := c.Do(context.Background(), http.MethodGet, "/all", nil, nil)
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestDo_TextResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Expense deleted successfully\n"))
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, Retry: testPolicy()})
	var confirmation string
	require.NoError(t, c.Do(context.Background(), http.MethodDelete, "/delete/1", nil, &confirmation))
	assert.Equal(t, "Expense deleted successfully", confirmation)
}

func TestDo_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately, so the address refuses connections

	c := NewClient(Options{BaseURL: srv.URL, Retry: testPolicy()})
	err := c.Do(context.Background(), http.MethodGet, "/all", nil, nil)
	assert.True(t, IsNetworkError(err))
}

func TestDo_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(Options{BaseURL: srv.URL, Timeout: 20 * time.Millisecond, Retry: testPolicy()})
	err := c.Do(context.Background(), http.MethodGet, "/all", nil, nil)
	assert.True(t, IsNetworkError(err))
}
