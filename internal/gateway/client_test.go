package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhinav6284/Planora/internal/model"
	"github.com/Abhinav6284/Planora/internal/store"
)

func TestLogin_StoresTokenForLaterRequests(t *testing.T) {
	var sawAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			json.NewEncoder(w).Encode(map[string]any{
				"token": "tok-123",
				"user":  map[string]string{"name": "Demo User", "email": "demo@planora.com"},
			})
		case "/api/auth/me":
			sawAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(map[string]string{"name": "Demo User", "email": "demo@planora.com"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	res, err := c.Login(context.Background(), "demo@planora.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", res.Token)
	assert.Equal(t, "Demo User", res.User.Name)

	_, err = c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", sawAuth)
}

func TestErrorMessage_PrefersMessageKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "title is required"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).CreateTask(context.Background(), model.Task{})

	var rerr *RequestError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "title is required", rerr.Message)
}

func TestErrorMessage_FallsBackToErrorKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "bad credentials"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Me(context.Background())

	var rerr *RequestError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "bad credentials", rerr.Message)
}

func TestErrorMessage_StatusFallbackForNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := New(srv.URL).DeleteTask(context.Background(), 1)

	var rerr *RequestError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "HTTP 502", rerr.Message)
}

func TestTransportFailureIsRequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	_, err := New(srv.URL).ListTasks(context.Background())

	var rerr *RequestError
	require.ErrorAs(t, err, &rerr)
	assert.NotEmpty(t, rerr.Message)
}

func TestUpdateTask_SendsPatchOmittingUnsetFields(t *testing.T) {
	var body map[string]json.RawMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/tasks/42", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		json.NewEncoder(w).Encode(model.Task{ID: 42, Title: "renamed"})
	}))
	defer srv.Close()

	title := "renamed"
	updated, err := New(srv.URL).UpdateTask(context.Background(), 42, store.TaskPatch{Title: &title})
	require.NoError(t, err)

	assert.Equal(t, "renamed", updated.Title)
	assert.Contains(t, body, "title")
	assert.NotContains(t, body, "status")
	assert.NotContains(t, body, "due_date")
}

func TestDueDateWireFormat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var in map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.JSONEq(t, `"2026-09-15"`, string(in["due_date"]))
		w.Write([]byte(`{"id":1,"title":"dated","due_date":"2026-09-15"}`))
	}))
	defer srv.Close()

	d := model.NewDate(2026, 9, 15)
	created, err := New(srv.URL).CreateTask(context.Background(), model.Task{Title: "dated", DueDate: &d})
	require.NoError(t, err)
	require.NotNil(t, created.DueDate)
	assert.Equal(t, d, *created.DueDate)
}

func TestChat_UnwrapsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "break it into milestones"})
	}))
	defer srv.Close()

	reply, err := New(srv.URL).Chat(context.Background(), "how do I plan this?")
	require.NoError(t, err)
	assert.Equal(t, "break it into milestones", reply)
}
