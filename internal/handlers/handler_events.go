package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/openbooks/bookkeeping_app/internal/core/ports/services"
)

// eventHandler exposes the audit event log for review.
type eventHandler struct {
	eventService portssvc.EventSvcFacade
	userService  portssvc.UserSvcFacade
}

func newEventHandler(eventService portssvc.EventSvcFacade, userService portssvc.UserSvcFacade) *eventHandler {
	return &eventHandler{eventService: eventService, userService: userService}
}

// registerEventRoutes registers audit log routes. Manager only.
func registerEventRoutes(group *gin.RouterGroup, eventService portssvc.EventSvcFacade, userService portssvc.UserSvcFacade) {
	h := newEventHandler(eventService, userService)

	events := group.Group("/events")
	{
		events.GET("", h.listEvents)
	}
}

// listEvents godoc
// @Summary List audit events
// @Description Returns audit records newest first. Manager only.
// @Tags events
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} domain.Event
// @Failure 403 {object} ErrorResponse
// @Router /events [get]
func (h *eventHandler) listEvents(c *gin.Context) {
	if _, ok := requirePostingAuthority(c, h.userService); !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	events, err := h.eventService.ListEvents(c.Request.Context(), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}
