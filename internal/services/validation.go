package services

import (
	"strings"
	"unicode/utf8"

	"github.com/justsurfingit/sales-intake/internal/models"
)

const (
	MsgName       = "АИАңызды жазыңыз"
	MsgPhone      = "Туура номер киргизиңиз"
	MsgCity       = "Шаарыңызды жазыңыз"
	MsgSchedule   = "Графикти тандаңыз"
	MsgExperience = "Тажрыйбаңызды көрсөтүңүз"
)

// ValidateDraft checks the required fields independently of each other.
// The draft is valid exactly when the returned map is empty.
func ValidateDraft(d models.Draft) (models.FieldErrors, bool) {
	errs := models.FieldErrors{}
	if utf8.RuneCountInString(strings.TrimSpace(d.Name)) < 2 {
		errs[models.FieldName] = MsgName
	}
	if len(PhoneDigits(d.Phone)) < phoneDigits {
		errs[models.FieldPhone] = MsgPhone
	}
	if utf8.RuneCountInString(strings.TrimSpace(d.City)) < 2 {
		errs[models.FieldCity] = MsgCity
	}
	if d.Schedule == "" {
		errs[models.FieldSchedule] = MsgSchedule
	}
	if d.Experience == "" {
		errs[models.FieldExperience] = MsgExperience
	}
	return errs, len(errs) == 0
}
