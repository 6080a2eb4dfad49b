package form

import (
	"context"
	"time"

	"go-ems/internal/apiclient"

	"go.uber.org/zap"
)

const (
	MsgValidationFailure = "validation failure!"
	MsgAddFailed         = "error in adding employee"
	// MsgAdded must match the API's success message; it decides whether the form is cleared.
	MsgAdded = "Employee added successfully."
)

// Creator submits a validated employee and returns the API's outcome message.
//
//go:generate mockgen -source=controller.go -destination=mock/creator_mock.go -package=mock
type Creator interface {
	AddEmployee(ctx context.Context, e apiclient.Employee) (string, error)
}

// Values are the raw form inputs. Date stays nil until the date input is touched.
type Values struct {
	Name  string
	ID    string
	Email string
	Phone string
	Dept  string
	Date  *string
	Role  string
}

// Get returns the raw value of f; an untouched date reads as "".
func (v Values) Get(f Field) string {
	switch f {
	case FieldName:
		return v.Name
	case FieldID:
		return v.ID
	case FieldEmail:
		return v.Email
	case FieldPhone:
		return v.Phone
	case FieldDept:
		return v.Dept
	case FieldDate:
		if v.Date == nil {
			return ""
		}
		return *v.Date
	case FieldRole:
		return v.Role
	}
	return ""
}

func (v *Values) set(f Field, value string) {
	switch f {
	case FieldName:
		v.Name = value
	case FieldID:
		v.ID = value
	case FieldEmail:
		v.Email = value
	case FieldPhone:
		v.Phone = value
	case FieldDept:
		v.Dept = value
	case FieldDate:
		v.Date = &value
	case FieldRole:
		v.Role = value
	}
}

func (v Values) toEmployee() apiclient.Employee {
	return apiclient.Employee{
		EmpID:         v.ID,
		EmpName:       v.Name,
		Email:         v.Email,
		Phone:         v.Phone,
		Department:    v.Dept,
		DateOfJoining: v.Get(FieldDate),
		EmpRole:       v.Role,
	}
}

type Option func(*Controller)

// WithClock overrides the clock used for the joining date check.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithMessage seeds the status line, e.g. when a page is re-rendered.
func WithMessage(msg string) Option {
	return func(c *Controller) { c.message = msg }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l.Named("form.controller")
		}
	}
}

// Controller is the registration form state machine. It is not safe for concurrent use.
type Controller struct {
	api     Creator
	now     func() time.Time
	values  Values
	errors  map[Field]string
	message string
	logger  *zap.Logger
}

func NewController(api Creator, opts ...Option) *Controller {
	c := &Controller{
		api:    api,
		now:    time.Now,
		errors: make(map[Field]string),
		logger: zap.L().Named("form.controller"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetField stores value and revalidates that field only. Unknown fields are ignored.
func (c *Controller) SetField(f Field, value string) {
	if _, ok := ParseField(string(f)); !ok {
		return
	}

	c.values.set(f, value)

	if msg := ValidateField(f, value); msg != "" {
		c.errors[f] = msg
		return
	}
	delete(c.errors, f)
}

// Reset clears every value. Errors and the status line are kept.
func (c *Controller) Reset() {
	c.values = Values{}
}

// Submit validates all fields from scratch and, when they pass, sends the employee.
// It reports whether the employee was added, in which case the form has been reset.
func (c *Controller) Submit(ctx context.Context) bool {
	c.errors = ValidateAll(c.values, c.now())
	if len(c.errors) > 0 {
		c.message = MsgValidationFailure
		c.logger.Debug("form submit rejected", zap.Int("invalid_fields", len(c.errors)))
		return false
	}

	msg, err := c.api.AddEmployee(ctx, c.values.toEmployee())
	if err != nil {
		c.logger.Warn("add employee request failed", zap.Error(err))
		c.message = MsgAddFailed
		return false
	}

	c.message = msg
	// decided on the response just received, not on the previous status line
	if msg != MsgAdded {
		return false
	}
	c.Reset()
	return true
}

func (c *Controller) Values() Values {
	return c.values
}

// Errors returns a copy of the current inline errors.
func (c *Controller) Errors() map[Field]string {
	out := make(map[Field]string, len(c.errors))
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

func (c *Controller) Message() string {
	return c.message
}
