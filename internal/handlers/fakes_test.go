package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/joblane/joblane-backend/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeIdentity stands in for the auth provider. Calls are counted so tests
// can prove the provider was never contacted on short-circuit paths.
type fakeIdentity struct {
	user    *models.User
	session *models.Session
	err     error

	signUpCalls int
	signInCalls int
	verifyCalls int
	lastToken   string
}

func (f *fakeIdentity) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	f.signUpCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

func (f *fakeIdentity) SignIn(ctx context.Context, email, password string) (*models.User, *models.Session, error) {
	f.signInCalls++
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.user, f.session, nil
}

func (f *fakeIdentity) VerifyToken(ctx context.Context, token string) (*models.User, error) {
	f.verifyCalls++
	f.lastToken = token
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type storeCall struct {
	op      string
	table   string
	columns string
	filters map[string]string
	limit   int
	row     any
}

// fakeStore records every call and pops one queued (rows, err) pair per
// call, in order.
type fakeStore struct {
	calls   []storeCall
	results [][]json.RawMessage
	errs    []error
}

func (f *fakeStore) next() ([]json.RawMessage, error) {
	var rows []json.RawMessage
	if len(f.results) > 0 {
		rows = f.results[0]
		f.results = f.results[1:]
	}
	var err error
	if len(f.errs) > 0 {
		err = f.errs[0]
		f.errs = f.errs[1:]
	}
	return rows, err
}

func (f *fakeStore) Select(ctx context.Context, table, columns string, filters map[string]string, limit int) ([]json.RawMessage, error) {
	f.calls = append(f.calls, storeCall{op: "select", table: table, columns: columns, filters: filters, limit: limit})
	return f.next()
}

func (f *fakeStore) Insert(ctx context.Context, table string, row any) ([]json.RawMessage, error) {
	f.calls = append(f.calls, storeCall{op: "insert", table: table, row: row})
	return f.next()
}

func (f *fakeStore) Delete(ctx context.Context, table string, filters map[string]string) ([]json.RawMessage, error) {
	f.calls = append(f.calls, storeCall{op: "delete", table: table, filters: filters})
	return f.next()
}

func rawRows(rows ...string) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(rows))
	for _, r := range rows {
		out = append(out, json.RawMessage(r))
	}
	return out
}

func perform(t *testing.T, r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not a JSON object: %v (%s)", err, w.Body.String())
	}
	return out
}

// performBasicAuth sends a malformed Authorization header instead of none,
// to cover the missing-Bearer-prefix rejection.
func performBasicAuth(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
