package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hoanggia/woodshop-api/internal/application/service"
	"github.com/hoanggia/woodshop-api/internal/presentation/http/middleware"
)

// GetActor builds the acting user from the authenticated context.
// Returns false when the request is not authenticated.
func GetActor(c *gin.Context) (service.Actor, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return service.Actor{}, false
	}
	return service.Actor{
		UserID: userID,
		Email:  middleware.GetUserEmail(c),
		Role:   middleware.GetUserRole(c),
	}, true
}

// parseUUIDParam parses a path parameter as a UUID
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// parseOptionalUUID parses a UUID string that may be empty
func parseOptionalUUID(s *string) *uuid.UUID {
	if s == nil || *s == "" {
		return nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil
	}
	return &id
}

// parseDate parses an optional yyyy-MM-dd string
func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}
