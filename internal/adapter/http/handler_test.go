package httpadapter

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	mocksource "redscope/internal/adapter/memory/mock"
	memoryrepo "redscope/internal/adapter/repo/memory"
	"redscope/internal/app/extract"
	"redscope/internal/app/ports"
	"redscope/internal/app/query"
	"redscope/internal/app/replay"
	"redscope/internal/domain/gamestate"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// sceneMemory is a minimal stable overworld frame.
func sceneMemory() *mocksource.Source {
	src := mocksource.New().
		Set(0xD35E, 3).                                  // current map
		Set(0xD361, 9).                                  // player y
		Set(0xD362, 10).                                 // player x
		Set(0xD36A, 16).                                 // stable load status
		SetRange(0xD530, []byte{0x00, 0xD6}).            // collision pointer
		SetRange(0xD600, []byte{0x00, 0xFF}).            // walkable list
		SetRange(0xD158, []byte{0x91, 0x84, 0x83, 0x50}) // "RED"
	return src
}

func testHandler() Handler {
	extractUC := extract.UseCase{
		Memory:    sceneMemory(),
		Snapshots: memoryrepo.NewSnapshotRepo(),
		Now:       func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) },
	}
	return Handler{
		ExtractUC: extractUC,
		QueryUC:   query.UseCase{Extract: extractUC},
		ReplayUC:  replay.UseCase{Snapshots: extractUC.Snapshots},
	}
}

func post(h func(context.Context, *app.RequestContext), body string) *app.RequestContext {
	ctx := &app.RequestContext{}
	ctx.Request.SetBody([]byte(body))
	h(context.Background(), ctx)
	return ctx
}

func TestHandleSnapshot(t *testing.T) {
	h := testHandler()
	ctx := post(h.snapshot, `{"step_counter": 7}`)

	if ctx.Response.StatusCode() != consts.StatusOK {
		t.Fatalf("status = %d, body = %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	var snap gamestate.Snapshot
	if err := json.Unmarshal(ctx.Response.Body(), &snap); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if snap.StepCounter != 7 || snap.PlayerName != "RED" || snap.CurrentMap != 3 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestHandleSnapshot_BadJSON(t *testing.T) {
	h := testHandler()
	ctx := post(h.snapshot, `{`)
	if ctx.Response.StatusCode() != consts.StatusBadRequest {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
}

func TestHandleSnapshot_NegativeStep(t *testing.T) {
	h := testHandler()
	ctx := post(h.snapshot, `{"step_counter": -1}`)
	if ctx.Response.StatusCode() != consts.StatusBadRequest {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
}

func TestHandleSnapshotText(t *testing.T) {
	h := testHandler()
	ctx := post(h.snapshotText, `{"step_counter": 7}`)

	if ctx.Response.StatusCode() != consts.StatusOK {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
	body := string(ctx.Response.Body())
	if !strings.HasPrefix(body, "=== POKEMON RED - STEP 7 ===") {
		t.Fatalf("unexpected text body:\n%s", body)
	}
}

func TestHandleNearest_UnknownType(t *testing.T) {
	h := testHandler()
	ctx := post(h.nearestTiles, `{"step_counter": 1, "tile_type": "swamp"}`)
	if ctx.Response.StatusCode() != consts.StatusBadRequest {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
}

func TestHandleCategorize(t *testing.T) {
	h := testHandler()
	ctx := post(h.categorizeTiles, `{"step_counter": 1}`)
	if ctx.Response.StatusCode() != consts.StatusOK {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
	var cat query.Categories
	if err := json.Unmarshal(ctx.Response.Body(), &cat); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !cat.Metadata.AnalysisSuccessful || cat.Metadata.TotalTiles != 360 {
		t.Fatalf("unexpected categories metadata: %+v", cat.Metadata)
	}
}

func TestHandleReplay_UnknownStep(t *testing.T) {
	h := testHandler()
	ctx := &app.RequestContext{}
	ctx.Request.SetRequestURI("/api/agent/replay?step=99")
	h.replay(context.Background(), ctx)
	if ctx.Response.StatusCode() != consts.StatusNotFound {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
}

func TestHandleReplay_AfterSnapshot(t *testing.T) {
	h := testHandler()
	post(h.snapshot, `{"step_counter": 7}`)

	ctx := &app.RequestContext{}
	ctx.Request.SetRequestURI("/api/agent/replay?step=7")
	h.replay(context.Background(), ctx)
	if ctx.Response.StatusCode() != consts.StatusOK {
		t.Fatalf("status = %d, body = %s", ctx.Response.StatusCode(), ctx.Response.Body())
	}
	var resp replay.Response
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Snapshots) != 1 || resp.Snapshots[0].StepCounter != 7 {
		t.Fatalf("unexpected replay payload: %+v", resp.Snapshots)
	}
}

func TestHandleReplay_BadQueryParams(t *testing.T) {
	h := testHandler()
	for _, uri := range []string{
		"/api/agent/replay?limit=abc",
		"/api/agent/replay?step=abc",
	} {
		ctx := &app.RequestContext{}
		ctx.Request.SetRequestURI(uri)
		h.replay(context.Background(), ctx)
		if ctx.Response.StatusCode() != consts.StatusBadRequest {
			t.Fatalf("%s: status = %d", uri, ctx.Response.StatusCode())
		}
	}
}

func TestWriteError_Mapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{extract.ErrInvalidRequest, consts.StatusBadRequest},
		{query.ErrInvalidRequest, consts.StatusBadRequest},
		{replay.ErrInvalidRequest, consts.StatusBadRequest},
		{ports.ErrNotFound, consts.StatusNotFound},
		{ports.ErrConflict, consts.StatusConflict},
		{ports.ErrMemoryRead, consts.StatusServiceUnavailable},
		{context.DeadlineExceeded, consts.StatusInternalServerError},
	}
	for _, tc := range cases {
		ctx := &app.RequestContext{}
		writeError(ctx, tc.err)
		if ctx.Response.StatusCode() != tc.want {
			t.Errorf("writeError(%v) = %d, want %d", tc.err, ctx.Response.StatusCode(), tc.want)
		}
	}
}
