package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"hr-management-api/internal/resource"
)

func TestNormalizeID(t *testing.T) {
	oid := bson.NewObjectID()
	query := bson.M{"_id": oid.Hex(), "status": "open"}

	require.NoError(t, NormalizeID(query))

	assert.Equal(t, oid, query["_id"])
	assert.Equal(t, "open", query["status"])
}

func TestNormalizeIDAbsent(t *testing.T) {
	query := bson.M{"status": "open"}
	require.NoError(t, NormalizeID(query))
	assert.Equal(t, "open", query["status"])
}

func TestNormalizeIDMalformed(t *testing.T) {
	query := bson.M{"_id": "nope"}
	assert.ErrorIs(t, NormalizeID(query), ErrInvalidID)
}

func TestNormalizeIDNonString(t *testing.T) {
	// Already-native identifiers pass through untouched.
	oid := bson.NewObjectID()
	query := bson.M{"_id": oid}
	require.NoError(t, NormalizeID(query))
	assert.Equal(t, oid, query["_id"])
}

func TestLookupStages(t *testing.T) {
	ref := resource.Reference{
		Field:        "employee_id",
		Collection:   "employees",
		DisplayField: "name",
		As:           "employee_name",
		Label:        "Employee",
	}

	stages := lookupStages(ref)
	require.Len(t, stages, 4)

	lookup := stages[0]["$lookup"].(bson.M)
	assert.Equal(t, "employees", lookup["from"])
	assert.Equal(t, "employee_id", lookup["localField"])
	assert.Equal(t, "_id", lookup["foreignField"])

	assert.Equal(t, "$"+joinedField, stages[1]["$unwind"])

	addFields := stages[2]["$addFields"].(bson.M)
	assert.Equal(t, "$"+joinedField+".name", addFields["employee_name"])
}

func TestOmitProjection(t *testing.T) {
	projection := omitProjection(resource.Admins)
	require.NotNil(t, projection)
	assert.Equal(t, 0, projection["password_hash"])

	assert.Nil(t, omitProjection(resource.Employees))
}
