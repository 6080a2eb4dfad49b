package form_test

import (
	"strings"
	"testing"
	"time"

	"go-ems/internal/form"

	"github.com/stretchr/testify/assert"
)

func TestValidateField_EmptyValues(t *testing.T) {
	for _, f := range form.Fields {
		t.Run(string(f), func(t *testing.T) {
			assert.NotEmpty(t, form.ValidateField(f, ""))
			assert.NotEmpty(t, form.ValidateField(f, "   "))
		})
	}
}

func TestValidateField(t *testing.T) {
	tests := []struct {
		name  string
		field form.Field
		value string
		want  string
	}{
		{"name ok", form.FieldName, "Ann", ""},
		{"name blank", form.FieldName, "  ", form.MsgNameRequired},
		{"id ok", form.FieldID, "E1", ""},
		{"id exactly ten", form.FieldID, "ABCDEFGHIJ", ""},
		{"id empty", form.FieldID, "", form.MsgIDRequired},
		{"id too long", form.FieldID, "ABCDEFGHIJK", form.MsgIDTooLong},
		{"id blank but too long", form.FieldID, strings.Repeat(" ", 11), form.MsgIDTooLong},
		{"email ok", form.FieldEmail, "a@b.com", ""},
		{"email padded", form.FieldEmail, "  a@b.com ", ""},
		{"email without at", form.FieldEmail, "ab.com", form.MsgEmailInvalid},
		{"email without dot", form.FieldEmail, "a@bcom", form.MsgEmailInvalid},
		{"phone ok", form.FieldPhone, "1234567890", ""},
		{"phone padded", form.FieldPhone, " 1234567890 ", ""},
		{"phone nine digits", form.FieldPhone, "123456789", form.MsgPhoneInvalid},
		{"phone eleven digits", form.FieldPhone, "12345678901", form.MsgPhoneInvalid},
		{"phone with letter", form.FieldPhone, "12345a7890", form.MsgPhoneInvalid},
		{"phone with plus", form.FieldPhone, "+123456789", form.MsgPhoneInvalid},
		{"dept ok", form.FieldDept, "HR", ""},
		{"dept empty", form.FieldDept, "", form.MsgDeptRequired},
		{"date ok", form.FieldDate, "2024-01-01", ""},
		{"date empty", form.FieldDate, "", form.MsgDateRequired},
		{"role ok", form.FieldRole, "Analyst", ""},
		{"role empty", form.FieldRole, "", form.MsgRoleRequired},
		{"unknown field", form.Field("salary"), "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, form.ValidateField(tt.field, tt.value))
		})
	}
}

func TestValidateField_IDTooLongNeverRequired(t *testing.T) {
	for n := 11; n <= 40; n++ {
		assert.Equal(t, form.MsgIDTooLong, form.ValidateField(form.FieldID, strings.Repeat("x", n)))
	}
}

func TestValidateField_PhoneDigits(t *testing.T) {
	for _, phone := range []string{"0000000000", "9999999999", "0123456789", "5551234567"} {
		assert.Empty(t, form.ValidateField(form.FieldPhone, phone), phone)
	}
	for _, phone := range []string{"", "1", "123456789a", "abcdefghij", "12345 67890", "1234-56789"} {
		assert.Equal(t, form.MsgPhoneInvalid, form.ValidateField(form.FieldPhone, phone), phone)
	}
}

func TestCheckJoiningDate(t *testing.T) {
	today := time.Date(2026, time.October, 18, 15, 30, 0, 0, time.UTC)

	assert.Empty(t, form.CheckJoiningDate("2024-01-01", today))
	assert.Empty(t, form.CheckJoiningDate("2026-10-18", today), "today is allowed")
	assert.Empty(t, form.CheckJoiningDate("", today), "emptiness is reported by ValidateField")
	assert.Equal(t, form.MsgDateInFuture, form.CheckJoiningDate("2026-10-19", today))
	assert.Equal(t, form.MsgDateInvalid, form.CheckJoiningDate("18/10/2026", today))
	assert.Equal(t, form.MsgDateInvalid, form.CheckJoiningDate("2026-02-30", today))
}

func TestValidateAll(t *testing.T) {
	today := time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)
	date := "2024-01-01"

	t.Run("valid values", func(t *testing.T) {
		errs := form.ValidateAll(form.Values{
			Name: "Ann", ID: "E1", Email: "a@b.com", Phone: "1234567890",
			Dept: "HR", Date: &date, Role: "Analyst",
		}, today)

		assert.Empty(t, errs)
	})

	t.Run("untouched date counts as empty", func(t *testing.T) {
		errs := form.ValidateAll(form.Values{
			Name: "Ann", ID: "E1", Email: "a@b.com", Phone: "1234567890", Dept: "HR", Role: "Analyst",
		}, today)

		assert.Equal(t, map[form.Field]string{form.FieldDate: form.MsgDateRequired}, errs)
	})

	t.Run("everything empty", func(t *testing.T) {
		errs := form.ValidateAll(form.Values{}, today)

		assert.Len(t, errs, len(form.Fields))
	})
}

func TestParseField(t *testing.T) {
	f, ok := form.ParseField("email")
	assert.True(t, ok)
	assert.Equal(t, form.FieldEmail, f)

	_, ok = form.ParseField("salary")
	assert.False(t, ok)
}
