package database_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/km-arc/diaita/app/database"
	"github.com/km-arc/diaita/app/database/databasetest"
	"github.com/km-arc/diaita/framework/config"
)

type row struct {
	ID     int    `json:"id,omitempty"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}

func fake(r databasetest.Response) *databasetest.Server {
	return databasetest.NewServer().SetDefault(r)
}

func TestNewManager_RequiresCredentials(t *testing.T) {
	_, err := database.NewManager(config.SupabaseConfig{}, nil, nil)
	assert.Error(t, err)
}

func TestInsert(t *testing.T) {
	srv := fake(databasetest.Response{Status: http.StatusCreated, Body: `[{"id":1,"user_id":"u1","name":"a"}]`})
	m := srv.Manager(t)

	res := database.Insert(m, "goals_priorities", row{UserID: "u1", Name: "a"})
	require.NoError(t, res.Err)
	assert.Equal(t, row{ID: 1, UserID: "u1", Name: "a"}, res.Body)

	req := srv.Last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "goals_priorities", req.Table)
	assert.Contains(t, req.Prefer, "return=representation")

	var sent map[string]any
	require.NoError(t, json.Unmarshal(req.Body, &sent))
	assert.Equal(t, "u1", sent["user_id"])
}

func TestSelectWhere_AndSelect(t *testing.T) {
	srv := fake(databasetest.Response{Body: `[{"user_id":"u1","name":"a"},{"user_id":"u1","name":"b"}]`})
	m := srv.Manager(t)

	res := database.SelectWhere[row](m, "medical_history", "user_id", "u1")
	require.NoError(t, res.Err)
	assert.Len(t, res.Body, 2)
	assert.Equal(t, "eq.u1", srv.Last(t).Query.Get("user_id"))

	all := database.Select[row](m, "medical_history", "")
	require.NoError(t, all.Err)
	assert.Equal(t, "*", srv.Last(t).Query.Get("select"))
}

func TestSelectSingle(t *testing.T) {
	srv := fake(databasetest.Response{Body: `[{"user_id":"u1","name":"a"}]`})
	m := srv.Manager(t)

	res := database.SelectSingle[row](m, "basic_demographics", "user_id", "u1")
	require.NoError(t, res.Err)
	assert.True(t, res.OK())
	assert.Equal(t, "a", res.Body.Name)
	assert.Equal(t, "1", srv.Last(t).Query.Get("limit"))

	srv.SetDefault(databasetest.Response{Body: `[]`})
	missing := database.SelectSingle[row](m, "basic_demographics", "user_id", "nobody")
	assert.ErrorIs(t, missing.Err, database.ErrNotFound)
}

func TestUpdate_Upsert_Delete(t *testing.T) {
	srv := fake(databasetest.Response{Body: `[{"user_id":"u1","name":"new"}]`})
	m := srv.Manager(t)

	up := database.Update(m, "goals_priorities", row{UserID: "u1", Name: "new"}, "user_id", "u1")
	require.NoError(t, up.Err)
	req := srv.Last(t)
	assert.Equal(t, http.MethodPatch, req.Method)
	assert.Equal(t, "eq.u1", req.Query.Get("user_id"))

	ups := database.Upsert(m, "user_profile", row{UserID: "u1", Name: "new"}, "user_id")
	require.NoError(t, ups.Err)
	req = srv.Last(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Contains(t, req.Prefer, "resolution=merge-duplicates")
	assert.Equal(t, "user_id", req.Query.Get("on_conflict"))

	srv.SetDefault(databasetest.Response{})
	del := database.Delete(m, "goals_priorities", "user_id", "u1")
	require.NoError(t, del.Err)
	req = srv.Last(t)
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "eq.u1", req.Query.Get("user_id"))
}

func TestUpdate_NoMatchIsNotFound(t *testing.T) {
	srv := fake(databasetest.Response{Body: `[]`})
	m := srv.Manager(t)

	res := database.Update(m, "goals_priorities", row{UserID: "u9"}, "user_id", "u9")
	assert.ErrorIs(t, res.Err, database.ErrNotFound)
}

func TestSelectWithFilters(t *testing.T) {
	srv := fake(databasetest.Response{Body: `[{"user_id":"x","name":"squat"}]`, Total: "45"})
	m := srv.Manager(t)

	res := database.SelectWithFilters[row](m, "exercises", map[string]database.Filter{
		"exercise":      {Op: database.OpIlike, Value: "squat"},
		"exercise_type": {Op: database.OpEq, Value: "strength"},
	}, 2, 20)
	require.NoError(t, res.Err)

	page := res.Body
	assert.Equal(t, 45, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 20, page.PageSize)
	assert.False(t, page.HasMore, "(2+1)*20 >= 45")
	assert.Len(t, page.Data, 1)

	req := srv.Last(t)
	assert.Equal(t, "ilike.%squat%", req.Query.Get("exercise"))
	assert.Equal(t, "eq.strength", req.Query.Get("exercise_type"))
	assert.Equal(t, "40", req.Query.Get("offset"))
	assert.Equal(t, "20", req.Query.Get("limit"))
	assert.Contains(t, req.Prefer, "count=exact")
}

func TestSelectWithFilters_HasMore(t *testing.T) {
	srv := fake(databasetest.Response{Body: `[]`, Total: "45"})
	m := srv.Manager(t)

	res := database.SelectWithFilters[row](m, "exercises", map[string]database.Filter{
		"exercise": {Op: database.OpIlike, Value: "curl"},
	}, 1, 20)
	require.NoError(t, res.Err)
	assert.True(t, res.Body.HasMore, "(1+1)*20 < 45")
	assert.NotNil(t, res.Body.Data)
}

func TestErrorsPropagate(t *testing.T) {
	srv := fake(databasetest.Response{Status: http.StatusBadRequest, Body: `{"code":"42P01","message":"relation does not exist"}`})
	m := srv.Manager(t)

	res := database.SelectWhere[row](m, "missing", "user_id", "u1")
	require.Error(t, res.Err)
	assert.False(t, res.OK())
	assert.Contains(t, res.Err.Error(), "select missing")
}
