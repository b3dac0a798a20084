package api

import (
	"net/http"

	"zealvibe/catalog-api/service"

	"github.com/gin-gonic/gin"
)

// AffirmationTemplate serves the static CSV import template
func (a *API) AffirmationTemplate(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="affirmations_template.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(service.AffirmationTemplate))
}
