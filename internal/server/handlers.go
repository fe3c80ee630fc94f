package server

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/scoring"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/diagnosis"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/lead"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/service/weather"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/pkg/errors"
)

const healthTimeout = 3 * time.Second

func requestLanguage(c *gin.Context) domain.Language {
	if lang := c.Query("lang"); lang != "" {
		return domain.ParseLanguage(lang)
	}
	return domain.ParseLanguage(c.GetHeader("Accept-Language"))
}

func bindJSON(c *gin.Context, dest any) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		fail(c, errors.NewValidationError("invalid request body", "body", err.Error()))
		return false
	}
	return true
}

func (s *Server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	checks := make(map[string]string, len(s.deps.Health))
	healthy := true
	for _, h := range s.deps.Health {
		if err := h.Ping(ctx); err != nil {
			checks[h.Name] = err.Error()
			healthy = false
			continue
		}
		checks[h.Name] = "ok"
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, envelope{Success: healthy, Data: gin.H{"checks": checks}})
}

func (s *Server) handleQuestions(c *gin.Context) {
	m := domain.Modality(c.Param("modality"))
	if !m.IsValid() {
		fail(c, errors.NewValidationError("unknown modality", "modality", string(m)))
		return
	}
	respond(c, http.StatusOK, gin.H{
		"modality":      m,
		"tieBreakerKey": m.TieBreakerKey(),
		"questions":     scoring.Questions(m),
	})
}

func (s *Server) handleDiagnosis(c *gin.Context) {
	if s.deps.Diagnosis == nil {
		unavailable(c, "diagnosis")
		return
	}
	var req diagnosis.Request
	if !bindJSON(c, &req) {
		return
	}
	result, err := s.deps.Diagnosis.Diagnose(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, result)
}

func (s *Server) handleSaveWizard(c *gin.Context) {
	if s.deps.Diagnosis == nil {
		unavailable(c, "wizard")
		return
	}
	var session domain.WizardSession
	if !bindJSON(c, &session) {
		return
	}
	session.ID = c.Param("id")
	if err := s.deps.Diagnosis.SaveSession(c.Request.Context(), &session); err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, session)
}

func (s *Server) handleLoadWizard(c *gin.Context) {
	if s.deps.Diagnosis == nil {
		unavailable(c, "wizard")
		return
	}
	session, err := s.deps.Diagnosis.LoadSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, session)
}

func (s *Server) handleDeleteWizard(c *gin.Context) {
	if s.deps.Diagnosis == nil {
		unavailable(c, "wizard")
		return
	}
	if err := s.deps.Diagnosis.DeleteSession(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleLocations(c *gin.Context) {
	if s.deps.Weather == nil {
		unavailable(c, "weather")
		return
	}
	locations, err := s.deps.Weather.SearchLocation(c.Request.Context(), c.Query("q"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, locations)
}

func (s *Server) handleForecast(c *gin.Context) {
	if s.deps.Weather == nil {
		unavailable(c, "weather")
		return
	}
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		fail(c, errors.NewValidationError("lat must be a number", "lat", c.Query("lat")))
		return
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		fail(c, errors.NewValidationError("lon must be a number", "lon", c.Query("lon")))
		return
	}

	report, err := s.deps.Weather.Plan(c.Request.Context(), weather.PlanRequest{
		Latitude:  lat,
		Longitude: lon,
		Start:     c.Query("start"),
		End:       c.Query("end"),
		Language:  requestLanguage(c),
	})
	if err != nil {
		fail(c, err)
		return
	}
	if name := strings.TrimSpace(c.Query("name")); name != "" {
		report.Location.Name = name
	}
	respond(c, http.StatusOK, report)
}

func (s *Server) handlePackages(c *gin.Context) {
	if s.deps.Catalog == nil {
		unavailable(c, "catalog")
		return
	}
	respond(c, http.StatusOK, s.deps.Catalog.Search(c.Query("q")))
}

func (s *Server) handlePackage(c *gin.Context) {
	if s.deps.Catalog == nil {
		unavailable(c, "catalog")
		return
	}
	pkg, err := s.deps.Catalog.BySlug(c.Param("slug"))
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, pkg)
}

func (s *Server) handleCaptureLead(c *gin.Context) {
	if s.deps.Leads == nil {
		unavailable(c, "leads")
		return
	}
	var in lead.CaptureInput
	if !bindJSON(c, &in) {
		return
	}
	if in.Language == "" {
		in.Language = string(requestLanguage(c))
	}
	captured, err := s.deps.Leads.Capture(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusCreated, captured)
}
