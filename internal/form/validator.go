package form

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	MsgNameRequired = "name must be provided"
	MsgIDRequired   = "id must be provided"
	MsgIDTooLong    = "id can't be more than 10 characters"
	MsgEmailInvalid = "provide proper email"
	MsgPhoneInvalid = "invalid phone number"
	MsgDeptRequired = "department must be choosen"
	MsgDateRequired = "joining date should be mentioned"
	MsgDateInvalid  = "joining date must be a valid date"
	MsgDateInFuture = "joining date can't be in the future"
	MsgRoleRequired = "role must be specified"
)

const (
	MaxEmpIDLength   = 10
	DateOfJoiningFmt = "2006-01-02"
)

var (
	emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)
	phonePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidateField returns the inline error for value, or "" when it is acceptable.
// Unknown fields are always acceptable.
func ValidateField(field Field, value string) string {
	trimmed := strings.TrimSpace(value)

	switch field {
	case FieldName:
		if trimmed == "" {
			return MsgNameRequired
		}
	case FieldID:
		// length wins over emptiness: an over-long blank id is reported as too long
		if utf8.RuneCountInString(value) > MaxEmpIDLength {
			return MsgIDTooLong
		}
		if trimmed == "" {
			return MsgIDRequired
		}
	case FieldEmail:
		if trimmed == "" || !emailPattern.MatchString(trimmed) {
			return MsgEmailInvalid
		}
	case FieldPhone:
		if !phonePattern.MatchString(trimmed) {
			return MsgPhoneInvalid
		}
	case FieldDept:
		if trimmed == "" {
			return MsgDeptRequired
		}
	case FieldDate:
		if trimmed == "" {
			return MsgDateRequired
		}
	case FieldRole:
		if trimmed == "" {
			return MsgRoleRequired
		}
	}
	return ""
}

// CheckJoiningDate rejects joining dates that are not YYYY-MM-DD or that fall after today.
// Empty values are left to ValidateField.
func CheckJoiningDate(value string, today time.Time) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ""
	}

	joined, err := time.ParseInLocation(DateOfJoiningFmt, trimmed, today.Location())
	if err != nil {
		return MsgDateInvalid
	}

	y, m, d := today.Date()
	if joined.After(time.Date(y, m, d, 0, 0, 0, 0, today.Location())) {
		return MsgDateInFuture
	}
	return ""
}

// ValidateAll runs every rule against values and returns only the failing fields.
func ValidateAll(values Values, today time.Time) map[Field]string {
	errs := make(map[Field]string)
	for _, f := range Fields {
		v := values.Get(f)
		msg := ValidateField(f, v)
		if msg == "" && f == FieldDate {
			msg = CheckJoiningDate(v, today)
		}
		if msg != "" {
			errs[f] = msg
		}
	}
	return errs
}
