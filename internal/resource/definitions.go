package resource

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// employeeRef is the reference carried by attendance and task records.
func employeeRef() *Reference {
	return &Reference{
		Field:        "employee_id",
		Collection:   "employees",
		DisplayField: "name",
		As:           "employee_name",
		Label:        "Employee",
	}
}

// Admins manage the system and are the identities behind login.
// The plaintext password is replaced with a bcrypt hash before storage and
// the hash is never returned to callers.
var Admins = Definition{
	Name:  "admins",
	Label: "Admin",
	Fields: []Field{
		{Name: "email", Kind: String, Rule: "email"},
		{Name: "password", Kind: String},
	},
	Omit:           []string{"password", "password_hash"},
	MissingMessage: "Email and password are required",
	Transform: func(doc bson.M) error {
		password, _ := doc["password"].(string)
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		delete(doc, "password")
		doc["password_hash"] = string(hash)
		return nil
	},
}

// Employees are the documents referenced by attendance and tasks.
var Employees = Definition{
	Name:  "employees",
	Label: "Employee",
	Fields: []Field{
		{Name: "name", Kind: String},
		{Name: "email", Kind: String, Rule: "email"},
		{Name: "position", Kind: String},
		{Name: "joining_date", Kind: Date},
		{Name: "salary", Kind: Float},
	},
	MissingMessage: "All fields are required",
}

// Attendance records reference an employee and join the employee's name
// into every read.
var Attendance = Definition{
	Name:  "attendance",
	Label: "Attendance record",
	Fields: []Field{
		{Name: "employee_id", Kind: ObjectID},
		{Name: "date", Kind: Date},
		{Name: "status", Kind: String},
	},
	Reference:      employeeRef(),
	JoinOnList:     true,
	JoinOnGet:      true,
	MissingMessage: "All fields are required",
}

// Certificates are standalone documents with no references.
var Certificates = Definition{
	Name:  "certificates",
	Label: "Certificate",
	Fields: []Field{
		{Name: "name", Kind: String},
		{Name: "start_date", Kind: Date},
		{Name: "end_date", Kind: Date},
		{Name: "type", Kind: String},
	},
	MissingMessage: "All fields are required",
}

// Tasks optionally reference an employee. The employee name is joined only
// on single-item reads; the collection listing returns tasks as stored.
var Tasks = Definition{
	Name:  "tasks",
	Label: "Task",
	Fields: []Field{
		{Name: "employee_id", Kind: ObjectID, Optional: true},
		{Name: "title", Kind: String},
		{Name: "description", Kind: String, Optional: true},
		{Name: "status", Kind: String},
		{Name: "due_date", Kind: Date},
	},
	Reference:      employeeRef(),
	JoinOnGet:      true,
	MissingMessage: "Title, status, and due date are required",
}

// Definitions returns every resource family served by the pipeline.
func Definitions() []Definition {
	return []Definition{Admins, Employees, Attendance, Certificates, Tasks}
}
