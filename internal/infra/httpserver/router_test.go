package httpserver

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icislabs/contract-workbench/internal/application"
	appcontracts "github.com/icislabs/contract-workbench/internal/application/contracts"
	"github.com/icislabs/contract-workbench/internal/domain/analysis"
	"github.com/icislabs/contract-workbench/internal/domain/drafts"
	memorydb "github.com/icislabs/contract-workbench/internal/infra/db/memory"
	"github.com/icislabs/contract-workbench/internal/infra/extractor"
)

func newTestRouter() http.Handler {
	svc := &appcontracts.Service{
		Repo:      memorydb.NewDraftRepository(),
		Extractor: extractor.New("tesseract", "eng"),
		Clock:     application.SystemClock{},
	}
	return NewRouter(svc, 4<<20)
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAnalyzeEndpoint(t *testing.T) {
	h := newTestRouter()

	rec := postJSON(t, h, "/analyze", map[string]string{
		"text": "7. Limitation of Liability\nLiability shall be unlimited in all cases.\n",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var res analysis.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "uncapped_liability-1", res.Issues[0].ID)
	assert.Equal(t, "1 issues detected (1 High, 0 Medium, 0 Low).", res.Summary)
}

func TestAnalyzeEndpointEmptyBodyUsesSample(t *testing.T) {
	h := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(""))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var res analysis.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.NotEmpty(t, res.Issues)
}

func TestAnalyzeFileEndpointPlainText(t *testing.T) {
	h := newTestRouter()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "contract.txt")
	require.NoError(t, err)
	_, err = io.WriteString(fw, "7. Limitation of Liability\nLiability shall be unlimited in all cases.\n")
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze/file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var out appcontracts.AnalyzeFileResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Contains(t, out.ExtractedText, "unlimited")
	require.Len(t, out.Analysis.Issues, 1)
	assert.Equal(t, "uncapped_liability-1", out.Analysis.Issues[0].ID)
}

func TestAnalyzeFileEndpointRejectsUnsupportedExt(t *testing.T) {
	h := newTestRouter()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "contract.docx")
	require.NoError(t, err)
	_, err = io.WriteString(fw, "irrelevant")
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze/file", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported file type")
}

func TestSynthesizeEndpointEmptyIssues(t *testing.T) {
	h := newTestRouter()

	rec := postJSON(t, h, "/drafts/synthesize", map[string]any{
		"base_text": "BASE",
		"issues":    []analysis.Issue{},
		"author":    "X",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var out map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	text := out["draft_text"]
	assert.Contains(t, text, "BASE")
	assert.Contains(t, text, "(Author: X)")
	assert.Contains(t, text, "Review with counsel.")
	assert.NotContains(t, text, "A1.")
}

func TestSaveDraftRequiresContent(t *testing.T) {
	h := newTestRouter()

	rec := postJSON(t, h, "/drafts", map[string]any{"title": "empty"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "content required")
}

func TestDraftLifecycle(t *testing.T) {
	h := newTestRouter()

	rec := postJSON(t, h, "/drafts", map[string]any{
		"title":   "Review v1",
		"content": "addendum text",
		"issues":  []analysis.Issue{{ID: "uncapped_liability-1", Risk: analysis.SeverityHigh}},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var saved drafts.Draft
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &saved))
	assert.Equal(t, int64(1), saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())

	rec = postJSON(t, h, "/drafts", map[string]any{"content": "second addendum"})
	require.Equal(t, http.StatusOK, rec.Code)

	// list is newest-first
	req := httptest.NewRequest(http.MethodGet, "/drafts", nil)
	lrec := httptest.NewRecorder()
	h.ServeHTTP(lrec, req)
	require.Equal(t, http.StatusOK, lrec.Code)

	var list []drafts.Draft
	require.NoError(t, json.Unmarshal(lrec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ID)

	// fetch by id
	req = httptest.NewRequest(http.MethodGet, "/drafts/1", nil)
	grec := httptest.NewRecorder()
	h.ServeHTTP(grec, req)
	require.Equal(t, http.StatusOK, grec.Code)

	var got drafts.Draft
	require.NoError(t, json.Unmarshal(grec.Body.Bytes(), &got))
	assert.Equal(t, "Review v1", got.Title)
	require.Len(t, got.Issues, 1)
	assert.Equal(t, "uncapped_liability-1", got.Issues[0].ID)
}

func TestGetDraftNotFound(t *testing.T) {
	h := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/drafts/999", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDraftInvalidID(t *testing.T) {
	h := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/drafts/abc", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
