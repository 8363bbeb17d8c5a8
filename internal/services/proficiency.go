package services

import "github.com/justsurfingit/sales-intake/internal/models"

// ProficiencyList is an ordered set of language entries drawn from a fixed catalog.
// No two entries share an identifier.
type ProficiencyList struct {
	catalog []models.LanguageOption
	entries []models.LanguageEntry
}

// NewProficiencyList copies entries; the caller's slice is never modified.
func NewProficiencyList(catalog []models.LanguageOption, entries []models.LanguageEntry) *ProficiencyList {
	return &ProficiencyList{
		catalog: catalog,
		entries: append([]models.LanguageEntry{}, entries...),
	}
}

// Add appends a catalog language at the default level.
// It reports false when id is unknown or already present.
func (p *ProficiencyList) Add(id string) bool {
	if p.index(id) >= 0 {
		return false
	}
	for _, o := range p.catalog {
		if o.ID == id {
			p.entries = append(p.entries, models.LanguageEntry{ID: o.ID, Label: o.Label, Level: models.DefaultLevel})
			return true
		}
	}
	return false
}

func (p *ProficiencyList) Remove(id string) bool {
	i := p.index(id)
	if i < 0 {
		return false
	}
	p.entries = append(p.entries[:i:i], p.entries[i+1:]...)
	return true
}

// SetLevel overwrites the level in place. Callers only offer models.Levels.
func (p *ProficiencyList) SetLevel(id string, level models.Level) bool {
	i := p.index(id)
	if i < 0 {
		return false
	}
	p.entries[i].Level = level
	return true
}

// Remaining lists catalog languages not yet present, in catalog order.
func (p *ProficiencyList) Remaining() []models.LanguageOption {
	out := make([]models.LanguageOption, 0, len(p.catalog))
	for _, o := range p.catalog {
		if p.index(o.ID) < 0 {
			out = append(out, o)
		}
	}
	return out
}

func (p *ProficiencyList) Entries() []models.LanguageEntry {
	return append([]models.LanguageEntry{}, p.entries...)
}

func (p *ProficiencyList) index(id string) int {
	for i, e := range p.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
