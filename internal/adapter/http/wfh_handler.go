package http

import (
	"net/http"

	ucwfh "wfh-leave-backend/internal/usecase/wfh"

	"github.com/labstack/echo/v4"
)

type WFHHandler struct{ uc *ucwfh.Usecase }

func NewWFHHandler(uc *ucwfh.Usecase) *WFHHandler { return &WFHHandler{uc: uc} }

type listReq struct {
	Status string `query:"status" validate:"wfhstatus"`
}

type getReq struct {
	RequestID string `param:"request_id" validate:"required,max=64"`
}

type scheduleReq struct {
	StaffID   int64  `param:"staff_id"   validate:"required,gt=0"`
	StartDate string `query:"start_date" validate:"required,isodate"`
	EndDate   string `query:"end_date"   validate:"required,isodate"`
}

func (h *WFHHandler) Submit(c echo.Context) error {
	var req ucwfh.SubmitInput
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Submit(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *WFHHandler) List(c echo.Context) error {
	var req listReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.List(c.Request().Context(), req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *WFHHandler) Get(c echo.Context) error {
	var req getReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Get(c.Request().Context(), req.RequestID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *WFHHandler) StaffSchedule(c echo.Context) error {
	var req scheduleReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	out, err := h.uc.StaffSchedule(c.Request().Context(), req.StaffID, req.StartDate, req.EndDate)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
