package http

import (
	"github.com/gin-gonic/gin"

	"smartcars-insurance/pkg/response"
)

// Chat godoc
// @Summary     Answer an insurance question
// @Description Classifies the question's intent and answers it from the reference data.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User question"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.ErrResp "Missing question"
// @Failure     500 {object} response.ErrResp "Internal Server Error"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Question == "" {
		response.BadRequest(c, "Missing question")
		return
	}

	output, err := h.uc.Answer(ctx, req.Question)
	if err != nil {
		h.l.Errorf(ctx, "uc.Answer: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, chatResp{Answer: output.Answer, Intent: output.Intent})
}
