package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rocasalmo9ai/WEB-METATRAVELS/internal/domain"
	"github.com/rocasalmo9ai/WEB-METATRAVELS/pkg/errors"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type updateLeadRequest struct {
	Status domain.LeadStatus `json:"status"`
}

func (s *Server) handleLogin(c *gin.Context) {
	if !s.deps.Auth.Enabled() {
		unavailable(c, "admin console")
		return
	}
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}
	token, expiresAt, err := s.deps.Auth.Login(req.Username, req.Password)
	if err != nil {
		s.logger.Warn("Admin login rejected", zap.String("user", req.Username), zap.String("ip", c.ClientIP()))
		fail(c, err)
		return
	}
	s.logger.Info("Admin logged in", zap.String("user", req.Username))
	respond(c, http.StatusOK, loginResponse{Token: token, ExpiresAt: expiresAt})
}

func (s *Server) handleListLeads(c *gin.Context) {
	if s.deps.Leads == nil {
		unavailable(c, "leads")
		return
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		fail(c, err)
		return
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		fail(c, err)
		return
	}
	leads, err := s.deps.Leads.List(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		fail(c, err)
		return
	}
	respond(c, http.StatusOK, leads)
}

func (s *Server) handleUpdateLead(c *gin.Context) {
	if s.deps.Leads == nil {
		unavailable(c, "leads")
		return
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, errors.NewValidationError("invalid lead id", "id", c.Param("id")))
		return
	}
	var req updateLeadRequest
	if !bindJSON(c, &req) {
		return
	}
	updated, err := s.deps.Leads.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		fail(c, err)
		return
	}
	s.logger.Info("Lead status updated",
		zap.Int64("id", id),
		zap.String("status", string(req.Status)),
		zap.String("by", c.GetString(adminSubjectKey)),
	)
	respond(c, http.StatusOK, updated)
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.NewValidationError(key+" must be a non-negative integer", key, raw)
	}
	return v, nil
}
