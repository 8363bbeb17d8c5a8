package services

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/justsurfingit/sales-intake/internal/models"
	"github.com/pkg/errors"
)

// TimestampLayout is "DD.MM.YYYY, HH:mm".
const TimestampLayout = "02.01.2006, 15:04"

// IDSource hands out application ids that are unique and non-decreasing.
type IDSource interface {
	NextID() int64
}

type SnowflakeIDs struct {
	node *snowflake.Node
}

func NewSnowflakeIDs(nodeID int64) (*SnowflakeIDs, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, errors.Wrapf(err, "snowflake node %d", nodeID)
	}
	return &SnowflakeIDs{node: node}, nil
}

func (s *SnowflakeIDs) NextID() int64 {
	return s.node.Generate().Int64()
}

// Assembler turns a validated draft into an Application.
type Assembler struct {
	IDs IDSource
	Now func() time.Time
	Loc *time.Location
}

func NewAssembler(ids IDSource, loc *time.Location) *Assembler {
	return &Assembler{IDs: ids, Now: time.Now, Loc: loc}
}

// Assemble never modifies d.
func (a *Assembler) Assemble(d models.Draft) models.Application {
	return models.Application{
		ID:         a.IDs.NextID(),
		Timestamp:  a.Now().In(a.Loc).Format(TimestampLayout),
		Name:       d.Name,
		Phone:      d.Phone,
		City:       d.City,
		Schedule:   FormatSchedule(d.Schedule),
		Experience: d.Experience,
		SalesType:  FormatSalesTypes(d.SalesType),
		Salary:     d.Salary,
		StartDate:  d.StartDate,
		Languages:  FormatLanguages(d.Languages),
		About:      d.About,
		Source:     d.Source,
	}
}

// Payload is what the remote collector receives for app: display strings,
// except languages which stay structured.
func (a *Assembler) Payload(d models.Draft, app models.Application) models.SheetsPayload {
	return models.SheetsPayload{
		Name:       app.Name,
		Phone:      app.Phone,
		City:       app.City,
		Schedule:   app.Schedule,
		Experience: app.Experience,
		SalesType:  app.SalesType,
		Salary:     app.Salary,
		StartDate:  app.StartDate,
		Languages:  append([]models.LanguageEntry{}, d.Languages...),
		About:      app.About,
		Source:     app.Source,
	}
}

// FormatSchedule falls back to the raw identifier for unknown schedules.
func FormatSchedule(id models.ScheduleID) string {
	if s, ok := models.FindSchedule(id); ok {
		return s.Display()
	}
	return string(id)
}

func FormatSalesTypes(ids []models.SalesTypeID) string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		if t, ok := models.FindSalesType(id); ok {
			labels = append(labels, t.Label)
		} else {
			labels = append(labels, string(id))
		}
	}
	return strings.Join(labels, ", ")
}

func FormatLanguages(langs []models.LanguageEntry) string {
	parts := make([]string, 0, len(langs))
	for _, l := range langs {
		parts = append(parts, l.Label+" — "+l.Level.Label())
	}
	return strings.Join(parts, "; ")
}
