package resource

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var validate = validator.New()

// Date layouts accepted in payloads, tried in order.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// RequiredError reports an absent or falsy required field.
type RequiredError struct {
	Message string
}

func (e *RequiredError) Error() string { return e.Message }

// InvalidFieldError reports a field whose value could not be coerced or
// that failed its validation rule.
type InvalidFieldError struct {
	Field  string
	Reason string
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// BuildDocument validates a parsed payload against the definition's field
// set and returns the coerced document ready for storage. Required fields
// that are absent or falsy produce a RequiredError carrying the resource's
// missing-fields message; coercion and rule failures produce an
// InvalidFieldError.
func (d Definition) BuildDocument(payload map[string]any) (bson.M, error) {
	doc := bson.M{}

	for _, f := range d.Fields {
		raw, present := payload[f.Name]
		if !present || isFalsy(raw) {
			if !f.Optional {
				return nil, &RequiredError{Message: d.MissingMessage}
			}
			if f.Kind == String {
				doc[f.Name] = ""
			}
			continue
		}

		value, err := coerce(f, raw)
		if err != nil {
			return nil, err
		}

		if f.Rule != "" {
			if err := validate.Var(value, f.Rule); err != nil {
				return nil, &InvalidFieldError{Field: f.Name, Reason: err.Error()}
			}
		}

		doc[f.Name] = value
	}

	return doc, nil
}

// isFalsy mirrors JavaScript truthiness for the values JSON parsing can
// produce: nil, empty string, zero numbers and false are all missing.
func isFalsy(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	default:
		return false
	}
}

func coerce(f Field, raw any) (any, error) {
	switch f.Kind {
	case String:
		s, ok := raw.(string)
		if !ok {
			return nil, &InvalidFieldError{Field: f.Name, Reason: "expected a string"}
		}
		return s, nil

	case Float:
		switch t := raw.(type) {
		case float64:
			return t, nil
		case string:
			n, err := strconv.ParseFloat(t, 64)
			if err != nil {
				return nil, &InvalidFieldError{Field: f.Name, Reason: "expected a number"}
			}
			return n, nil
		default:
			return nil, &InvalidFieldError{Field: f.Name, Reason: "expected a number"}
		}

	case Date:
		s, ok := raw.(string)
		if !ok {
			return nil, &InvalidFieldError{Field: f.Name, Reason: "expected a date string"}
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC(), nil
			}
		}
		return nil, &InvalidFieldError{Field: f.Name, Reason: "unrecognized date format"}

	case ObjectID:
		s, ok := raw.(string)
		if !ok {
			return nil, &InvalidFieldError{Field: f.Name, Reason: "expected an id string"}
		}
		oid, err := bson.ObjectIDFromHex(s)
		if err != nil {
			return nil, &InvalidFieldError{Field: f.Name, Reason: "malformed id"}
		}
		return oid, nil

	default:
		return nil, &InvalidFieldError{Field: f.Name, Reason: "unknown field kind"}
	}
}
