package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/d60-Lab/yatube/internal/model"
)

func jsonReq(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func bearer(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestAPIPostLifecycle(t *testing.T) {
	e := newTestEnv(t)
	author := e.user(t, "author")
	e.group(t, "golang")
	tok := e.token(t, author)

	// create
	w := e.do(bearer(jsonReq(http.MethodPost, "/api/posts/", `{"text":"hello","group":"golang"}`), tok))
	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	require.Equal(t, "hello", created["text"])
	require.Equal(t, "author", created["author"])
	require.Equal(t, "golang", created["group"])
	require.Nil(t, created["image"])
	id := int(created["id"].(float64))

	// list
	w = e.do(httptest.NewRequest(http.MethodGet, "/api/posts/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 1)

	// retrieve
	w = e.do(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/posts/%d/", id), nil))
	require.Equal(t, http.StatusOK, w.Code)

	// replace
	w = e.do(bearer(jsonReq(http.MethodPut, fmt.Sprintf("/api/posts/%d/", id), `{"text":"replaced"}`), tok))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "replaced", decodeBody(t, w)["text"])

	// partial update keeps the rest
	w = e.do(bearer(jsonReq(http.MethodPatch, fmt.Sprintf("/api/posts/%d/", id), `{"group":"golang"}`), tok))
	require.Equal(t, http.StatusOK, w.Code)
	patched := decodeBody(t, w)
	require.Equal(t, "replaced", patched["text"])
	require.Equal(t, "golang", patched["group"])

	// delete
	w = e.do(bearer(httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/posts/%d/", id), nil), tok))
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.String())

	w = e.do(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/posts/%d/", id), nil))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "detail")
}

func TestAPIMissingIDReturnsStructured404(t *testing.T) {
	e := newTestEnv(t)
	w := e.do(httptest.NewRequest(http.MethodGet, "/api/posts/9999/", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"detail":"not found"}`, w.Body.String())
}

func TestAPIValidationErrors(t *testing.T) {
	e := newTestEnv(t)
	tok := e.token(t, e.user(t, "author"))

	w := e.do(bearer(jsonReq(http.MethodPost, "/api/posts/", `{}`), tok))
	require.Equal(t, http.StatusBadRequest, w.Code)
	var fields map[string][]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fields))
	require.NotEmpty(t, fields["text"])

	w = e.do(bearer(jsonReq(http.MethodPost, "/api/posts/", `{"text":"x","group":"nope"}`), tok))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "group")
}

func TestAPIMutationRequiresToken(t *testing.T) {
	e := newTestEnv(t)
	author := e.user(t, "author")
	p := e.post(t, author, nil, "keep", time.Now())

	w := e.do(jsonReq(http.MethodPost, "/api/posts/", `{"text":"anon"}`))
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = e.do(httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/posts/%d/", p.ID), nil))
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.EqualValues(t, 1, e.postCount(t))
}

func TestAPIMutationRequiresAuthorship(t *testing.T) {
	e := newTestEnv(t)
	author := e.user(t, "author")
	intruder := e.user(t, "intruder")
	p := e.post(t, author, nil, "keep", time.Now())
	tok := e.token(t, intruder)

	w := e.do(bearer(jsonReq(http.MethodPut, fmt.Sprintf("/api/posts/%d/", p.ID), `{"text":"mine now"}`), tok))
	require.Equal(t, http.StatusForbidden, w.Code)

	w = e.do(bearer(httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/posts/%d/", p.ID), nil), tok))
	require.Equal(t, http.StatusForbidden, w.Code)

	var got model.Post
	require.NoError(t, e.db.First(&got, p.ID).Error)
	require.Equal(t, "keep", got.Text)
}

func TestAPIGroups(t *testing.T) {
	e := newTestEnv(t)
	g := e.group(t, "golang")
	e.group(t, "random")

	w := e.do(httptest.NewRequest(http.MethodGet, "/api/groups/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)

	w = e.do(httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/groups/%d/", g.ID), nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "golang", decodeBody(t, w)["slug"])

	w = e.do(httptest.NewRequest(http.MethodGet, "/api/groups/999/", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSignupAndLogin(t *testing.T) {
	e := newTestEnv(t)

	req := jsonReq(http.MethodPost, "/auth/signup/", `{"username":"newbie","email":"n@example.com","password":"password123"}`)
	asUser(req, "")
	w := e.do(req)
	require.Equal(t, http.StatusOK, w.Code)

	req = jsonReq(http.MethodPost, "/auth/login/", `{"username":"newbie","password":"password123"}`)
	asUser(req, "")
	w = e.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "token")

	req = jsonReq(http.MethodPost, "/auth/login/", `{"username":"newbie","password":"wrong"}`)
	asUser(req, "")
	w = e.do(req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCSRFRejectedWithCustomBody(t *testing.T) {
	e := newTestEnv(t)
	author := e.user(t, "author")
	tok := e.token(t, author)

	// cookie-authenticated POST without a CSRF token
	req := jsonReq(http.MethodPost, "/auth/login/", `{"username":"author","password":"x"}`)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: tok})
	w := e.do(req)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "CSRF verification failed")
}
