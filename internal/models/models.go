package models

import "time"

// Field names a draft field. The values double as JSON keys.
type Field string

const (
	FieldName       Field = "name"
	FieldPhone      Field = "phone"
	FieldCity       Field = "city"
	FieldSchedule   Field = "schedule"
	FieldExperience Field = "experience"
	FieldSalesType  Field = "salesType"
	FieldSalary     Field = "salary"
	FieldStartDate  Field = "startDate"
	FieldLanguages  Field = "languages"
	FieldAbout      Field = "about"
	FieldSource     Field = "source"
)

// FieldErrors maps a field to a human-readable message. A missing key means no error.
type FieldErrors map[Field]string

type LanguageEntry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Level Level  `json:"level"`
}

// Draft is the in-progress form of one session. Empty strings mean "unset".
type Draft struct {
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	City       string          `json:"city"`
	Schedule   ScheduleID      `json:"schedule"`
	Experience string          `json:"experience"`
	SalesType  []SalesTypeID   `json:"salesType"`
	Salary     string          `json:"salary"`
	StartDate  string          `json:"startDate"`
	Languages  []LanguageEntry `json:"languages"`
	About      string          `json:"about"`
	Source     string          `json:"source"`
}

// NewDraft returns the defaults every form session starts with.
func NewDraft() Draft {
	return Draft{
		SalesType: []SalesTypeID{},
		Languages: []LanguageEntry{
			{ID: "ky", Label: "Кыргызча", Level: LevelFluent},
			{ID: "ru", Label: "Орусча", Level: LevelGood},
		},
	}
}

// Clone returns a copy that shares no slices with d.
func (d Draft) Clone() Draft {
	c := d
	c.SalesType = append([]SalesTypeID{}, d.SalesType...)
	c.Languages = append([]LanguageEntry{}, d.Languages...)
	return c
}

// Application is the immutable, denormalized snapshot of one submission.
// JSON keys match the slot format written by earlier versions of the form.
type Application struct {
	ID         int64  `json:"id"`
	Timestamp  string `json:"ts"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	City       string `json:"city"`
	Schedule   string `json:"schedule"`
	Experience string `json:"experience"`
	SalesType  string `json:"salesType"`
	Salary     string `json:"salary"`
	StartDate  string `json:"startDate"`
	Languages  string `json:"languages"`
	About      string `json:"about"`
	Source     string `json:"source"`
}

// SheetsPayload is the body POSTed to the remote collector.
type SheetsPayload struct {
	Name       string          `json:"name"`
	Phone      string          `json:"phone"`
	City       string          `json:"city"`
	Schedule   string          `json:"schedule"`
	Experience string          `json:"experience"`
	SalesType  string          `json:"salesType"`
	Salary     string          `json:"salary"`
	StartDate  string          `json:"startDate"`
	Languages  []LanguageEntry `json:"languages"`
	About      string          `json:"about"`
	Source     string          `json:"source"`
}

// Slot is one named key-value cell in the local store.
type Slot struct {
	Key       string    `gorm:"primaryKey;size:128" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
