package http

import (
	"net/http"

	ucemployee "wfh-leave-backend/internal/usecase/employee"

	"github.com/labstack/echo/v4"
)

type EmployeeHandler struct{ uc *ucemployee.Usecase }

func NewEmployeeHandler(uc *ucemployee.Usecase) *EmployeeHandler { return &EmployeeHandler{uc: uc} }

type getEmployeeReq struct {
	StaffID int64 `param:"staff_id" validate:"required,gt=0"`
}

func (h *EmployeeHandler) Get(c echo.Context) error {
	var req getEmployeeReq
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	dto, err := h.uc.Get(c.Request().Context(), req.StaffID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
