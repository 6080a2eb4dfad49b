// Package dashboard prepares the employees table shown by the web frontend.
package dashboard

import (
	"context"

	"go-ems/internal/apiclient"

	"go.uber.org/zap"
)

const EmptyMessage = "No data found"

// Columns are the table headings, in the order the cells are rendered.
var Columns = []string{
	"Employee Id",
	"Employee Name",
	"Email",
	"Phone",
	"Department",
	"Date of Joining",
	"Employee Role",
}

//go:generate mockgen -source=loader.go -destination=mock/reader_mock.go -package=mock
type Reader interface {
	ReadEmployees(ctx context.Context) ([]apiclient.Employee, error)
}

type View struct {
	Columns   []string
	Employees []apiclient.Employee
	Empty     string
}

// Cells returns the row values of e in column order.
func Cells(e apiclient.Employee) []string {
	return []string{e.EmpID, e.EmpName, e.Email, e.Phone, e.Department, e.DateOfJoining, e.EmpRole}
}

type Loader struct {
	reader Reader
	logger *zap.Logger
}

func NewLoader(reader Reader, logger ...*zap.Logger) *Loader {
	l := zap.L().Named("dashboard.loader")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.loader")
	}
	return &Loader{reader: reader, logger: l}
}

// Load never fails: an unreachable API renders the same as an empty list.
func (l *Loader) Load(ctx context.Context) View {
	view := View{Columns: Columns}

	emps, err := l.reader.ReadEmployees(ctx)
	if err != nil {
		l.logger.Warn("read employees failed, rendering empty dashboard", zap.Error(err))
		emps = nil
	}

	if len(emps) == 0 {
		view.Employees = []apiclient.Employee{}
		view.Empty = EmptyMessage
		return view
	}

	view.Employees = emps
	return view
}
