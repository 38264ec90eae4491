package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestExecuteFindNormalizesID(t *testing.T) {
	env := newTestEnv(t)
	oid := bson.NewObjectID()
	env.execute.On("Find", mock.Anything, "employees", mock.MatchedBy(func(query bson.M) bool {
		// The wire-format hex string must arrive as a native ObjectID.
		id, ok := query["_id"].(bson.ObjectID)
		return ok && id == oid
	})).Return([]bson.M{{"_id": oid, "name": "A"}}, nil)

	w := env.do(t, http.MethodPost, "/execute", map[string]any{
		"operation":  "find",
		"collection": "employees",
		"query":      map[string]any{"_id": oid.Hex()},
	}, true)

	assert.Equal(t, http.StatusOK, w.Code)
	var out []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out, 1)
}

func TestExecuteUpdateReturnsCount(t *testing.T) {
	env := newTestEnv(t)
	env.execute.On("UpdateMany", mock.Anything, "tasks", mock.Anything, mock.Anything).
		Return(int64(3), nil)

	w := env.do(t, http.MethodPost, "/execute", map[string]any{
		"operation":  "update",
		"collection": "tasks",
		"query":      map[string]any{"status": "open"},
		"update":     map[string]any{"status": "done"},
	}, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"modifiedCount":3}`, w.Body.String())
}

func TestExecuteDeleteReturnsCount(t *testing.T) {
	env := newTestEnv(t)
	env.execute.On("DeleteMany", mock.Anything, "tasks", mock.Anything).
		Return(int64(2), nil)

	w := env.do(t, http.MethodPost, "/execute", map[string]any{
		"operation":  "delete",
		"collection": "tasks",
		"query":      map[string]any{"status": "done"},
	}, true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deletedCount":2}`, w.Body.String())
}

func TestExecuteInvalidOperation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/execute", map[string]any{
		"operation":  "drop",
		"collection": "employees",
		"query":      map[string]any{},
	}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid operation"}`, w.Body.String())
}

func TestExecuteRequiresOperationAndCollection(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/execute", map[string]any{
		"operation": "find",
	}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Operation and collection are required"}`, w.Body.String())
}

func TestExecuteFindRequiresQuery(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/execute", map[string]any{
		"operation":  "find",
		"collection": "employees",
	}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Query is required for find operation"}`, w.Body.String())
}

func TestExecuteUpdateRequiresQueryAndUpdate(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/execute", map[string]any{
		"operation":  "update",
		"collection": "tasks",
		"query":      map[string]any{"status": "open"},
	}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Query and update are required for update operation"}`, w.Body.String())
}

func TestExecuteMalformedID(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/execute", map[string]any{
		"operation":  "find",
		"collection": "employees",
		"query":      map[string]any{"_id": "nope"},
	}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid ID"}`, w.Body.String())
	env.execute.AssertNotCalled(t, "Find", mock.Anything, mock.Anything, mock.Anything)
}
