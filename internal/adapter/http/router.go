package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Routes struct {
	Health     *HealthHandler
	AutoReject *AutoRejectHandler
	WFH        *WFHHandler
	Employee   *EmployeeHandler

	// Idempotency guards POST /api/wfh-requests; nil leaves it unguarded.
	Idempotency echo.MiddlewareFunc
	// Metrics is served on /metrics when set.
	Metrics http.Handler
}

func Register(e *echo.Echo, r Routes) {
	e.GET("/health", r.Health.Health)
	if r.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.Metrics))
	}

	api := e.Group("/api")
	api.GET("/auto-reject", r.AutoReject.Run)

	var submitMW []echo.MiddlewareFunc
	if r.Idempotency != nil {
		submitMW = append(submitMW, r.Idempotency)
	}
	api.POST("/wfh-requests", r.WFH.Submit, submitMW...)
	api.GET("/wfh-requests", r.WFH.List)
	api.GET("/wfh-requests/:request_id", r.WFH.Get)
	api.GET("/staff/:staff_id/schedule", r.WFH.StaffSchedule)
	api.GET("/employees/:staff_id", r.Employee.Get)
}
