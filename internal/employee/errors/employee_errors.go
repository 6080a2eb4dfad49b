package employeeerrors

import (
	"go-ems/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmpIDAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee already exists with the mentioned Id.",
		http.StatusConflict,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee already exists with the mentioned Email.",
		http.StatusConflict,
	)
	ErrValidationFailure = apperror.New(
		apperror.CodeValidation,
		"validation failure!",
		http.StatusBadRequest,
	)
	ErrFetchFailed = apperror.New(
		apperror.CodeInternalError,
		"Error fetching data.",
		http.StatusInternalServerError,
	)
)

// FieldErrors maps json field names to the inline message for that field.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	return "invalid employee fields"
}

// Invalid wraps field errors so that errors.Is(err, ErrValidationFailure) holds
// and the fields stay reachable through errors.As.
func Invalid(fields FieldErrors) error {
	return apperror.Wrap(fields, ErrValidationFailure.Code, ErrValidationFailure.Message, ErrValidationFailure.HTTPStatus)
}
