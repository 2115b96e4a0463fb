package serverapp

import (
	"context"
	"io"
	"log"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abhinav6284/Planora/internal/config"
	"github.com/Abhinav6284/Planora/internal/gateway"
	"github.com/Abhinav6284/Planora/internal/model"
	"github.com/Abhinav6284/Planora/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Default()
	cfg.JWTSecret = "test-secret"
	cfg.AssistantSeed = 1

	handler := NewHandler(Options{
		Config: cfg,
		Logger: log.New(io.Discard, "", 0),
	})
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestEndToEnd_LoginThenWorkWithTasks(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	client := gateway.New(srv.URL)
	res, err := client.Login(ctx, "demo@planora.com", "anything")
	require.NoError(t, err)
	assert.Equal(t, "Demo User", res.User.Name)

	// demo fixtures are preloaded
	tasks, err := client.ListTasks(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, tasks)

	created, err := client.CreateTask(ctx, model.Task{Title: "integration task"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	status := model.StatusCompleted
	updated, err := client.UpdateTask(ctx, created.ID, store.TaskPatch{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, updated.Status)

	require.NoError(t, client.DeleteTask(ctx, created.ID))

	after, err := client.ListTasks(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(tasks))
}

func TestEndToEnd_RemoteStoreMirrorsServer(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	client := gateway.New(srv.URL)
	_, err := client.Login(ctx, "demo@planora.com", "pw")
	require.NoError(t, err)

	st := store.New(store.Options{Remote: client})
	require.NoError(t, st.Refresh(ctx))
	assert.NotEmpty(t, st.Tasks())
	assert.NotEmpty(t, st.Projects())
	assert.NotEmpty(t, st.Notes())

	created, err := st.CreateTask(ctx, model.Task{Title: "written through"})
	require.NoError(t, err)

	onServer, err := client.ListTasks(ctx)
	require.NoError(t, err)
	assert.Equal(t, created.ID, onServer[0].ID)
	assert.Equal(t, st.Tasks()[0].ID, onServer[0].ID)
}

func TestRequestsWithoutTokenAreRejected(t *testing.T) {
	srv := newTestServer(t)

	_, err := gateway.New(srv.URL).ListTasks(context.Background())

	var rerr *gateway.RequestError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "missing token", rerr.Message)
}

func TestRegisterFlow(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	client := gateway.New(srv.URL)
	res, err := client.Register(ctx, "Ada", "ada@example.com", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "Ada", res.User.Name)

	me, err := client.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", me.Email)
}

func TestHealthz_IsOpen(t *testing.T) {
	srv := newTestServer(t)

	res, err := srv.Client().Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, 200, res.StatusCode)
}

func TestAssistantEndpoints(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	client := gateway.New(srv.URL)
	_, err := client.Login(ctx, "demo@planora.com", "pw")
	require.NoError(t, err)

	gen, err := client.GenerateProject(ctx, "a mobile app for plant care")
	require.NoError(t, err)
	assert.NotEmpty(t, gen.Name)
	assert.NotEmpty(t, gen.Description)

	reply, err := client.Chat(ctx, "where do I start?")
	require.NoError(t, err)
	assert.NotEmpty(t, reply)
}
