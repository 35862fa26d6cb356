package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/geonote/app/api/handlers"
	"github.com/ribgsilva/geonote/business/v1/editor"
	"github.com/ribgsilva/geonote/business/v1/mapview"
	"github.com/ribgsilva/geonote/business/v1/note"
	"github.com/ribgsilva/geonote/business/v1/selection"
	"github.com/ribgsilva/geonote/persistence/v1/storage"
	env2 "github.com/ribgsilva/geonote/platform/env"
	"github.com/ribgsilva/geonote/platform/location"
	"github.com/ribgsilva/geonote/platform/logger"
	"github.com/ribgsilva/geonote/sys"
)

// stubProvider stands in for the host location agent
type stubProvider struct {
	coord location.Coordinate
	err   error
}

func (p *stubProvider) CurrentCoordinate(_ context.Context) (location.Coordinate, error) {
	return p.coord, p.err
}

type GeonoteTests struct {
	app      http.Handler
	provider *stubProvider
}

func TestGeonote(t *testing.T) {
	log, err := logger.New("Geonote-API-Tests")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	// =======================================================================================================
	// Mocks

	// miniredis
	s := miniredis.RunT(t)

	// =======================================================================================================
	// Setup configs
	sys.Configs.Cache.ConnectionURL = s.Addr()
	sys.Configs.Cache.User = env2.OrDefault(log, "CACHE_USER", "")
	sys.Configs.Cache.Pass = env2.OrDefault(log, "CACHE_PASS", "")
	sys.Configs.Cache.PingTimeout = env2.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	sys.Configs.Cache.OperationTimeout = env2.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")

	// =======================================================================================================
	// Setup resources

	// logger
	sys.R.Log = log

	// redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     sys.Configs.Cache.ConnectionURL,
		Username: sys.Configs.Cache.User,
		Password: sys.Configs.Cache.Pass,
	})
	defer func() {
		_ = rdb.Close()
	}()
	sys.R.Cache = rdb

	// =======================================================================================================
	// Business state

	store := note.NewStore(storage.NewRedis(rdb, sys.Configs.Cache.OperationTimeout))
	if err := store.Load(context.Background()); err != nil {
		t.Fatalf("should load an empty store: %v", err)
	}

	provider := &stubProvider{coord: location.Coordinate{Latitude: 48.858, Longitude: 2.294}}
	api := handlers.API{
		Log:       log,
		Store:     store,
		Editor:    editor.New(store, provider, log),
		Selection: selection.New(store.Contains),
		Map:       mapview.NewView(provider),
	}

	// =======================================================================================================
	// Setup router
	engine := gin.Default()

	handlers.MapApi(engine, api)

	tests := GeonoteTests{
		app:      engine,
		provider: provider,
	}

	// =======================================================================================================
	// Run tests

	tests.editorFlow(t)
	tests.crudFlow(t)
	tests.mapFlow(t)
	tests.selectionFlow(t)
	tests.exportImportFlow(t)
}

func (gt *GeonoteTests) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	var r *http.Request
	if body != nil {
		marshal, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("should marshal request body: %v", err)
		}
		r = httptest.NewRequest(method, path, bytes.NewReader(marshal))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	gt.app.ServeHTTP(w, r)
	return w
}

// editorFlow walks the page's composing path: draft, type, commit. The note
// must come out tagged with the device position.
func (gt *GeonoteTests) editorFlow(t *testing.T) {
	if w := gt.do(t, http.MethodPost, "/v1/editor/draft", nil); w.Code != http.StatusCreated {
		t.Fatalf("Test editorFlow: should start a draft: %v %v", w.Code, w.Body)
	}
	// a second draft must be refused while the first is active
	if w := gt.do(t, http.MethodPost, "/v1/editor/draft", nil); w.Code != http.StatusConflict {
		t.Fatalf("Test editorFlow: second draft should conflict: %v", w.Code)
	}
	if w := gt.do(t, http.MethodPut, "/v1/editor/content", map[string]string{"content": "written from the field"}); w.Code != http.StatusNoContent {
		t.Fatalf("Test editorFlow: should set the buffer: %v %v", w.Code, w.Body)
	}

	w := gt.do(t, http.MethodPost, "/v1/editor/commit", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test editorFlow: should commit the draft: %v %v", w.Code, w.Body)
	}
	var created note.Note
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("Test editorFlow: should decode the committed note: %v", err)
	}
	if created.Id != 1 || created.Content != "written from the field" {
		t.Fatalf("Test editorFlow: unexpected note: %v", created)
	}
	if !created.Located() || *created.Latitude != 48.858 {
		t.Fatalf("Test editorFlow: note should carry the device position: %v", created)
	}

	// edit it in place
	if w := gt.do(t, http.MethodPost, "/v1/editor/edit/1", nil); w.Code != http.StatusCreated {
		t.Fatalf("Test editorFlow: should start editing: %v %v", w.Code, w.Body)
	}
	if w := gt.do(t, http.MethodPut, "/v1/editor/content", map[string]string{"content": "revised in the office"}); w.Code != http.StatusNoContent {
		t.Fatalf("Test editorFlow: should set the buffer: %v", w.Code)
	}
	w = gt.do(t, http.MethodPost, "/v1/editor/commit", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test editorFlow: should commit the edit: %v %v", w.Code, w.Body)
	}
	var edited note.Note
	if err := json.NewDecoder(w.Body).Decode(&edited); err != nil {
		t.Fatalf("Test editorFlow: should decode the edited note: %v", err)
	}
	if edited.Content != "revised in the office" || edited.Id != created.Id || edited.Date != created.Date {
		t.Fatalf("Test editorFlow: only content should change: %v vs %v", edited, created)
	}

	// a cancelled draft leaves no trace
	if w := gt.do(t, http.MethodPost, "/v1/editor/draft", nil); w.Code != http.StatusCreated {
		t.Fatalf("Test editorFlow: should start a draft: %v", w.Code)
	}
	if w := gt.do(t, http.MethodPost, "/v1/editor/cancel", nil); w.Code != http.StatusNoContent {
		t.Fatalf("Test editorFlow: should cancel: %v", w.Code)
	}
}

func (gt *GeonoteTests) crudFlow(t *testing.T) {
	// direct creation without a coordinate
	w := gt.do(t, http.MethodPost, "/v1/notes", map[string]any{"content": "plain note"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Test crudFlow: should create: %v %v", w.Code, w.Body)
	}
	var created note.Note
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("Test crudFlow: should decode the note: %v", err)
	}
	if created.Id != 2 || created.Located() {
		t.Fatalf("Test crudFlow: unexpected note: %v", created)
	}

	// blank content is silently ignored
	if w := gt.do(t, http.MethodPost, "/v1/notes", map[string]any{"content": "   "}); w.Code != http.StatusNoContent {
		t.Fatalf("Test crudFlow: blank create should be a no-op: %v %v", w.Code, w.Body)
	}

	// half a coordinate is rejected
	if w := gt.do(t, http.MethodPost, "/v1/notes", map[string]any{"content": "x", "latitude": 1.0}); w.Code != http.StatusBadRequest {
		t.Fatalf("Test crudFlow: half a coordinate should be rejected: %v", w.Code)
	}

	// newest first
	w = gt.do(t, http.MethodGet, "/v1/notes", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test crudFlow: should list: %v", w.Code)
	}
	var list []note.Note
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("Test crudFlow: should decode the list: %v", err)
	}
	if len(list) != 2 || list[0].Id != 2 || list[1].Id != 1 {
		t.Fatalf("Test crudFlow: list should be newest first: %v", list)
	}

	// update and delete
	if w := gt.do(t, http.MethodPut, "/v1/notes/2", map[string]string{"content": "updated"}); w.Code != http.StatusNoContent {
		t.Fatalf("Test crudFlow: should update: %v %v", w.Code, w.Body)
	}
	if w := gt.do(t, http.MethodPut, "/v1/notes/99", map[string]string{"content": "x"}); w.Code != http.StatusNotFound {
		t.Fatalf("Test crudFlow: updating a missing note should 404: %v", w.Code)
	}
	if w := gt.do(t, http.MethodDelete, "/v1/notes/2", nil); w.Code != http.StatusNoContent {
		t.Fatalf("Test crudFlow: should delete: %v", w.Code)
	}
	if w := gt.do(t, http.MethodDelete, "/v1/notes/2", nil); w.Code != http.StatusNotFound {
		t.Fatalf("Test crudFlow: second delete should 404: %v", w.Code)
	}
}

func (gt *GeonoteTests) mapFlow(t *testing.T) {
	w := gt.do(t, http.MethodGet, "/v1/map/center", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test mapFlow: should acquire the center: %v %v", w.Code, w.Body)
	}
	var center mapview.Center
	if err := json.NewDecoder(w.Body).Decode(&center); err != nil {
		t.Fatalf("Test mapFlow: should decode the center: %v", err)
	}
	if center.Latitude != 48.858 || center.Zoom != mapview.DefaultZoom {
		t.Fatalf("Test mapFlow: unexpected center: %v", center)
	}

	// only note 1 carries a coordinate at this point
	w = gt.do(t, http.MethodGet, "/v1/map/markers", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test mapFlow: should list markers: %v", w.Code)
	}
	var markers []mapview.Marker
	if err := json.NewDecoder(w.Body).Decode(&markers); err != nil {
		t.Fatalf("Test mapFlow: should decode markers: %v", err)
	}
	if len(markers) != 1 || markers[0].Id != 1 {
		t.Fatalf("Test mapFlow: only located notes should get markers: %v", markers)
	}
	if markers[0].Preview != "revised in the offic..." {
		t.Fatalf("Test mapFlow: preview should truncate to 20 chars: %q", markers[0].Preview)
	}

	// device moved, then went silent
	gt.provider.coord = location.Coordinate{Latitude: 50, Longitude: 8}
	w = gt.do(t, http.MethodPost, "/v1/map/recenter", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test mapFlow: should recenter: %v", w.Code)
	}
	gt.provider.err = &location.UnavailableError{Reason: location.ReasonTimeout}
	w = gt.do(t, http.MethodPost, "/v1/map/recenter", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test mapFlow: failed recenter should keep the old center: %v", w.Code)
	}
	if err := json.NewDecoder(w.Body).Decode(&center); err != nil {
		t.Fatalf("Test mapFlow: should decode the center: %v", err)
	}
	if center.Latitude != 50 {
		t.Fatalf("Test mapFlow: the view should not have moved: %v", center)
	}
	gt.provider.err = nil
}

func (gt *GeonoteTests) selectionFlow(t *testing.T) {
	if w := gt.do(t, http.MethodPost, "/v1/selection/1", nil); w.Code != http.StatusNoContent {
		t.Fatalf("Test selectionFlow: should select: %v", w.Code)
	}

	w := gt.do(t, http.MethodGet, "/v1/selection", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test selectionFlow: should report the highlight: %v", w.Code)
	}
	var highlight struct {
		NoteId int64 `json:"noteId"`
		Active bool  `json:"active"`
	}
	if err := json.NewDecoder(w.Body).Decode(&highlight); err != nil {
		t.Fatalf("Test selectionFlow: should decode the highlight: %v", err)
	}
	if !highlight.Active || highlight.NoteId != 1 {
		t.Fatalf("Test selectionFlow: note 1 should be highlighted: %+v", highlight)
	}

	// unknown ids are ignored, the highlight stays
	if w := gt.do(t, http.MethodPost, "/v1/selection/99", nil); w.Code != http.StatusNoContent {
		t.Fatalf("Test selectionFlow: unknown selection should be a no-op: %v", w.Code)
	}
	w = gt.do(t, http.MethodGet, "/v1/selection", nil)
	if err := json.NewDecoder(w.Body).Decode(&highlight); err != nil {
		t.Fatalf("Test selectionFlow: should decode the highlight: %v", err)
	}
	if !highlight.Active || highlight.NoteId != 1 {
		t.Fatalf("Test selectionFlow: highlight should survive a bogus selection: %+v", highlight)
	}
}

func (gt *GeonoteTests) exportImportFlow(t *testing.T) {
	w := gt.do(t, http.MethodGet, "/v1/notes/export", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Test exportImportFlow: should export: %v", w.Code)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="notes.json"` {
		t.Fatalf("Test exportImportFlow: export should download as notes.json: %q", cd)
	}
	exported := w.Body.Bytes()

	var blob note.Export
	if err := json.Unmarshal(exported, &blob); err != nil {
		t.Fatalf("Test exportImportFlow: should decode the export: %v", err)
	}
	if len(blob.Notes) != 1 || blob.Id != 3 {
		t.Fatalf("Test exportImportFlow: unexpected export: %+v", blob)
	}

	// a bad blob changes nothing
	r := httptest.NewRequest(http.MethodPost, "/v1/notes/import", bytes.NewReader([]byte(`{"notes": 5, "id": 1}`)))
	rec := httptest.NewRecorder()
	gt.app.ServeHTTP(rec, r)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("Test exportImportFlow: invalid import should 400: %v %v", rec.Code, rec.Body)
	}

	// the exported blob round-trips
	r = httptest.NewRequest(http.MethodPost, "/v1/notes/import", bytes.NewReader(exported))
	rec = httptest.NewRecorder()
	gt.app.ServeHTTP(rec, r)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("Test exportImportFlow: should import the export: %v %v", rec.Code, rec.Body)
	}

	w = gt.do(t, http.MethodGet, "/v1/notes/export", nil)
	var after note.Export
	if err := json.Unmarshal(w.Body.Bytes(), &after); err != nil {
		t.Fatalf("Test exportImportFlow: should decode the re-export: %v", err)
	}
	if after.Id != blob.Id || len(after.Notes) != len(blob.Notes) || after.Notes[0].Id != blob.Notes[0].Id {
		t.Fatalf("Test exportImportFlow: round trip should reproduce the store: %+v vs %+v", after, blob)
	}
}
