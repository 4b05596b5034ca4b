package http

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"booking-assistant/pkg/icalendar"
	"booking-assistant/pkg/response"
)

const (
	statusLive      = "✅ Booking agent backend is live!"
	contentTypeICS  = "text/calendar; charset=utf-8"
	scheduleFileICS = `attachment; filename="schedule.ics"`
)

// Status godoc
// @Summary     Liveness banner
// @Description Returns a fixed banner confirming the backend is up.
// @Tags        Assistant
// @Produce     json
// @Success     200 {object} statusResp
// @Router      / [GET]
func (h *handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, statusResp{Status: statusLive})
}

// Chat godoc
// @Summary     Chat with the booking assistant
// @Description Classifies the message, acts on the calendar and returns a reply.
// @Description The data field is the classifier output; send it back as context on the next turn.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Language model or calendar unavailable"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.newChatResp(output))
}

// ExportSchedule godoc
// @Summary     Export upcoming events as iCalendar
// @Description Returns the upcoming events of the configured calendar as an .ics feed.
// @Tags        Assistant
// @Produce     text/calendar
// @Param       days query int false "Days ahead (1-14, default 3)"
// @Success     200 {string} string "iCalendar feed"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Calendar unavailable"
// @Router      /api/v1/schedule.ics [GET]
func (h *handler) ExportSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ExportSchedule(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportSchedule: %v", err)
		h.writeError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := icalendar.Encode(&buf, icalendar.DefaultProdID, h.now(), output.Events); err != nil {
		h.l.Errorf(ctx, "icalendar.Encode: %v", err)
		response.InternalError(c, err)
		return
	}

	c.Header("Content-Disposition", scheduleFileICS)
	c.Data(http.StatusOK, contentTypeICS, buf.Bytes())
}
