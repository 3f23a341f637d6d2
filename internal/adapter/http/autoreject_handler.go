package http

import (
	"errors"
	"net/http"

	"wfh-leave-backend/internal/domain/wfh"
	"wfh-leave-backend/internal/usecase/autoreject"

	"github.com/labstack/echo/v4"
)

type AutoRejectHandler struct{ uc *autoreject.Usecase }

func NewAutoRejectHandler(uc *autoreject.Usecase) *AutoRejectHandler {
	return &AutoRejectHandler{uc: uc}
}

type autoRejectResp struct {
	Message string `json:"message"`
	*autoreject.RunResult
}

// Run triggers one auto-reject pass. A failure keeps the store's own message in the body.
func (h *AutoRejectHandler) Run(c echo.Context) error {
	res, err := h.uc.Run(c.Request().Context())
	if errors.Is(err, wfh.ErrRunInProgress) {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, autoRejectResp{Message: "Auto-rejection completed", RunResult: res})
}
