package employee

import (
	"errors"
	"strings"

	employeeerrors "go-ems/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	constraintEmpID = "uq_employees_emp_id"
	constraintEmail = "uq_employees_email"

	pgUniqueViolation = "23505"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation {
			switch pgErr.ConstraintName {
			case constraintEmpID:
				return employeeerrors.ErrEmpIDAlreadyExists
			case constraintEmail:
				return employeeerrors.ErrEmailAlreadyExists
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, constraintEmpID) {
		return employeeerrors.ErrEmpIDAlreadyExists
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, constraintEmail) {
		return employeeerrors.ErrEmailAlreadyExists
	}

	return err
}

// raceOutcome turns a unique violation from the insert into the duplicate outcome
// the pre-check would have produced.
func raceOutcome(err error) (Outcome, bool) {
	switch {
	case errors.Is(err, employeeerrors.ErrEmpIDAlreadyExists):
		return OutcomeDuplicateID, true
	case errors.Is(err, employeeerrors.ErrEmailAlreadyExists):
		return OutcomeDuplicateEmail, true
	}
	return OutcomeAdded, false
}
