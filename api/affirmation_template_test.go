package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestAffirmationTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest("GET", "/api/affirmations/template", nil)

	(&API{}).AffirmationTemplate(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "affirmations_template.csv")

	lines := strings.Split(rec.Body.String(), "\n")
	assert.Equal(t, "text,category,tags,active", lines[0])
	assert.Len(t, lines, 3)
}
