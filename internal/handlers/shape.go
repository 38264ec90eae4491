package handlers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"

	"hr-management-api/internal/resource"
)

// shapeDocument converts a stored document into its wire representation:
// the native identifier becomes a string "id", nested ObjectIDs become hex
// strings, BSON datetimes become time values, and omitted fields stay out.
func shapeDocument(def resource.Definition, doc bson.M) gin.H {
	out := gin.H{}
	for key, value := range doc {
		if key == "_id" {
			out["id"] = shapeValue(value)
			continue
		}
		if def.Omits(key) {
			continue
		}
		out[key] = shapeValue(value)
	}
	return out
}

func shapeValue(value any) any {
	switch v := value.(type) {
	case bson.ObjectID:
		return v.Hex()
	case bson.DateTime:
		return v.Time().UTC()
	case bson.M:
		shaped := bson.M{}
		for k, inner := range v {
			shaped[k] = shapeValue(inner)
		}
		return shaped
	case bson.A:
		shaped := make([]any, len(v))
		for i, inner := range v {
			shaped[i] = shapeValue(inner)
		}
		return shaped
	default:
		return value
	}
}
