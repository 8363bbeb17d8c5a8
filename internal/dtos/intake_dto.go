package dtos

import "github.com/justsurfingit/sales-intake/internal/models"

type FieldUpdateRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

type AddLanguageRequest struct {
	ID string `json:"id" binding:"required"`
}

type LanguageLevelRequest struct {
	Level int `json:"level" binding:"required"`
}

type LoginRequest struct {
	Passphrase string `json:"passphrase"`
}

type LevelInfo struct {
	Level int    `json:"level"`
	Label string `json:"label"`
	Color string `json:"color"`
}

// CatalogResponse is the reference data the form is rendered from.
type CatalogResponse struct {
	Vacancy    models.Vacancy          `json:"vacancy"`
	Schedules  []models.Schedule       `json:"schedules"`
	AllHours   []int                   `json:"allHours"`
	SalesTypes []models.SalesType      `json:"salesTypes"`
	Languages  []models.LanguageOption `json:"languages"`
	Levels     []LevelInfo             `json:"levels"`
	Experience []string                `json:"experience"`
	Salary     []string                `json:"salary"`
	StartDate  []string                `json:"startDate"`
	Source     []string                `json:"source"`
	Hints      map[models.Field]string `json:"hints"`
}


type DigestResponse struct {
	ID     int64  `json:"id"`
	Digest string `json:"digest"`
}
