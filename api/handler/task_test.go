package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/valyala/fasthttp"

	"github.com/taskdeck/backend/api/transport"
	"github.com/taskdeck/backend/repository/inmemory"
	taskUC "github.com/taskdeck/backend/usecase/task"
)

func newHandler() *TaskHandler {
	uc := taskUC.New(inmemory.NewTaskRepository(), inmemory.NewActionHistory(0), nil)
	return NewTaskHandler(uc, nil, nil)
}

func decodeEnvelope(t *testing.T, ctx *fasthttp.RequestCtx) transport.Envelope {
	t.Helper()
	var env transport.Envelope
	if err := json.Unmarshal(ctx.Response.Body(), &env); err != nil {
		t.Fatalf("invalid response body %q: %v", ctx.Response.Body(), err)
	}
	return env
}

func postJSON(body string) *fasthttp.RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(fasthttp.MethodPost)
	ctx.Request.SetBody([]byte(body))
	return ctx
}

func TestCreateTask(t *testing.T) {
	h := newHandler()

	ctx := postJSON(`{"description":"Buy milk"}`)
	h.CreateTask(ctx)

	if ctx.Response.StatusCode() != http.StatusCreated {
		t.Fatalf("expected 201, got %d", ctx.Response.StatusCode())
	}
	env := decodeEnvelope(t, ctx)
	if env.Status != "success" {
		t.Errorf("unexpected envelope: %+v", env)
	}
	if !strings.Contains(string(ctx.Response.Body()), `"id":1`) {
		t.Errorf("expected task id 1 in body: %s", ctx.Response.Body())
	}
}

func TestCreateTaskInvalidPayload(t *testing.T) {
	h := newHandler()

	for name, body := range map[string]string{
		"malformed json":    `{not json`,
		"empty description": `{"description":""}`,
	} {
		t.Run(name, func(t *testing.T) {
			ctx := postJSON(body)
			h.CreateTask(ctx)
			if ctx.Response.StatusCode() != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", ctx.Response.StatusCode())
			}
		})
	}
}

func TestGetTasks(t *testing.T) {
	h := newHandler()

	h.CreateTask(postJSON(`{"description":"a"}`))
	h.CreateTask(postJSON(`{"description":"b"}`))

	ctx := &fasthttp.RequestCtx{}
	h.GetTasks(ctx)

	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
	}
	env := decodeEnvelope(t, ctx)
	data, ok := env.Data.([]interface{})
	if !ok || len(data) != 2 {
		t.Errorf("expected 2 tasks, got %+v", env.Data)
	}
}

func TestCompleteTask(t *testing.T) {
	h := newHandler()
	h.CreateTask(postJSON(`{"description":"a"}`))

	t.Run("success", func(t *testing.T) {
		ctx := &fasthttp.RequestCtx{}
		ctx.SetUserValue("id", "1")
		h.CompleteTask(ctx)
		if ctx.Response.StatusCode() != http.StatusOK {
			t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
		}
	})

	t.Run("already completed", func(t *testing.T) {
		ctx := &fasthttp.RequestCtx{}
		ctx.SetUserValue("id", "1")
		h.CompleteTask(ctx)
		if ctx.Response.StatusCode() != http.StatusConflict {
			t.Fatalf("expected 409, got %d", ctx.Response.StatusCode())
		}
		if env := decodeEnvelope(t, ctx); env.Code != "CONFLICT" {
			t.Errorf("unexpected code %q", env.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctx := &fasthttp.RequestCtx{}
		ctx.SetUserValue("id", "99")
		h.CompleteTask(ctx)
		if ctx.Response.StatusCode() != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", ctx.Response.StatusCode())
		}
	})

	t.Run("bad id", func(t *testing.T) {
		ctx := &fasthttp.RequestCtx{}
		ctx.SetUserValue("id", "abc")
		h.CompleteTask(ctx)
		if ctx.Response.StatusCode() != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", ctx.Response.StatusCode())
		}
	})
}

func TestDeleteTask(t *testing.T) {
	h := newHandler()
	h.CreateTask(postJSON(`{"description":"a"}`))

	ctx := &fasthttp.RequestCtx{}
	ctx.SetUserValue("id", "1")
	h.DeleteTask(ctx)
	if ctx.Response.StatusCode() != http.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
	}

	ctx = &fasthttp.RequestCtx{}
	ctx.SetUserValue("id", "1")
	h.DeleteTask(ctx)
	if ctx.Response.StatusCode() != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", ctx.Response.StatusCode())
	}
}

func TestUndo(t *testing.T) {
	h := newHandler()

	t.Run("empty history", func(t *testing.T) {
		ctx := &fasthttp.RequestCtx{}
		h.Undo(ctx)
		if ctx.Response.StatusCode() != http.StatusConflict {
			t.Fatalf("expected 409, got %d", ctx.Response.StatusCode())
		}
		if env := decodeEnvelope(t, ctx); env.Code != "NOTHING_TO_UNDO" {
			t.Errorf("unexpected code %q", env.Code)
		}
	})

	t.Run("undoes last add", func(t *testing.T) {
		h.CreateTask(postJSON(`{"description":"a"}`))

		ctx := &fasthttp.RequestCtx{}
		h.Undo(ctx)
		if ctx.Response.StatusCode() != http.StatusOK {
			t.Fatalf("expected 200, got %d", ctx.Response.StatusCode())
		}

		listCtx := &fasthttp.RequestCtx{}
		h.GetTasks(listCtx)
		env := decodeEnvelope(t, listCtx)
		if data, ok := env.Data.([]interface{}); ok && len(data) != 0 {
			t.Errorf("expected no tasks after undo, got %+v", env.Data)
		}
	})
}
