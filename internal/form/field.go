// Package form holds the employee registration form: the per-field validator
// and the controller that owns field values, inline errors and the status line.
package form

// Field names one input of the registration form.
type Field string

const (
	FieldName  Field = "name"
	FieldID    Field = "id"
	FieldEmail Field = "email"
	FieldPhone Field = "phone"
	FieldDept  Field = "dept"
	FieldDate  Field = "date"
	FieldRole  Field = "role"
)

// Fields lists every form input in display order.
var Fields = []Field{FieldName, FieldID, FieldEmail, FieldPhone, FieldDept, FieldDate, FieldRole}

// Departments are the options offered by the department select.
var Departments = []string{"HR", "Engineering", "Marketing"}

// ParseField maps a raw input name to a Field.
func ParseField(name string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}
