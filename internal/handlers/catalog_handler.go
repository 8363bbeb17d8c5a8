package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/sales-intake/internal/dtos"
	"github.com/justsurfingit/sales-intake/internal/models"
)

// Catalog is the GET /catalog endpoint
func Catalog(c *gin.Context) {
	levels := make([]dtos.LevelInfo, 0, len(models.Levels))
	for _, l := range models.Levels {
		levels = append(levels, dtos.LevelInfo{Level: int(l), Label: l.Label(), Color: l.Color()})
	}
	c.JSON(http.StatusOK, dtos.CatalogResponse{
		Vacancy:    models.CurrentVacancy,
		Schedules:  models.Schedules,
		AllHours:   models.AllHours,
		SalesTypes: models.SalesTypes,
		Languages:  models.LanguageCatalog,
		Levels:     levels,
		Experience: models.ExperienceOptions,
		Salary:     models.SalaryOptions,
		StartDate:  models.StartDateOptions,
		Source:     models.SourceOptions,
		Hints:      models.Hints,
	})
}
