package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/prepforge/prepforge/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProblems(t *testing.T) {
	h := newTestHandler(&fakeCompleter{})
	w := doJSON(newTestRouter(h), http.MethodGet, "/api/problems", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var problems []model.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problems))
	assert.Len(t, problems, h.Store.ProblemCount())
}

func TestListProblemsFiltered(t *testing.T) {
	h := newTestHandler(&fakeCompleter{})
	w := doJSON(newTestRouter(h), http.MethodGet, "/api/problems?category=arrays&difficulty=easy", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var problems []model.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &problems))
	require.NotEmpty(t, problems)
	for _, p := range problems {
		assert.Equal(t, "Arrays", p.Category)
		assert.Equal(t, "Easy", p.Difficulty)
	}
}

func TestGetProblem(t *testing.T) {
	h := newTestHandler(&fakeCompleter{})
	w := doJSON(newTestRouter(h), http.MethodGet, "/api/problems/1", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var p model.Problem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, 1, p.ID)
	assert.NotEmpty(t, p.Solution)
}

func TestGetProblemNotFound(t *testing.T) {
	h := newTestHandler(&fakeCompleter{})
	w := doJSON(newTestRouter(h), http.MethodGet, "/api/problems/424242", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error"`)
	assert.Contains(t, w.Body.String(), `"statusCode":404`)
}

func TestGetProblemBadID(t *testing.T) {
	h := newTestHandler(&fakeCompleter{})
	w := doJSON(newTestRouter(h), http.MethodGet, "/api/problems/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListMCQsFiltered(t *testing.T) {
	h := newTestHandler(&fakeCompleter{})
	w := doJSON(newTestRouter(h), http.MethodGet, "/api/mcqs?difficulty=easy", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var mcqs []model.MCQ
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mcqs))
	require.NotEmpty(t, mcqs)
	for _, m := range mcqs {
		assert.Equal(t, "Easy", m.Difficulty)
	}
}
