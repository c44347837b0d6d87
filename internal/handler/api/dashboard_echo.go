package api

import (
	"errors"
	"net/http"
	"time"

	models "IPCAPulse/internal/domain/models"
	"IPCAPulse/internal/usecase"
	xhttp "IPCAPulse/pkg/http"
	xlogger "IPCAPulse/pkg/logger"
	"IPCAPulse/pkg/util"

	"github.com/labstack/echo/v4"
)

// DashboardEchoHandler exposes the analytics pipeline over Echo.
type DashboardEchoHandler struct {
	logger *xlogger.Logger
	dash   *usecase.Dashboard
}

func NewDashboardEchoHandler(logger *xlogger.Logger, dash *usecase.Dashboard) *DashboardEchoHandler {
	return &DashboardEchoHandler{logger: logger, dash: dash}
}

func (h *DashboardEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/series", h.Series)
	g.GET("/aggregates", h.Aggregates)
	g.GET("/forecast", h.Forecast)
	g.GET("/dashboard", h.Dashboard)

	e.GET("/healthz", h.Health)
}

// parseRange maps query dates to window bounds. An absent or unparsable
// date stays zero, which the window selector treats as "full series".
func parseRange(from, to string) (time.Time, time.Time) {
	f, _ := util.ParseISODate(from)
	t, _ := util.ParseISODate(to)
	return f, t
}

func (h *DashboardEchoHandler) Series(c echo.Context) error {
	req := &models.SeriesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	from, to := parseRange(req.From, req.To)

	res, err := h.dash.Series(c.Request().Context(), from, to)
	if err != nil {
		h.logger.Error("series usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapStageError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *DashboardEchoHandler) Aggregates(c echo.Context) error {
	req := &models.AggregatesRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	from, to := parseRange(req.From, req.To)

	res, err := h.dash.Aggregates(c.Request().Context(), from, to)
	if err != nil {
		h.logger.Error("aggregates usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapStageError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *DashboardEchoHandler) Forecast(c echo.Context) error {
	res, err := h.dash.Forecast(c.Request().Context())
	if err != nil {
		h.logger.Error("forecast usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, mapStageError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *DashboardEchoHandler) Dashboard(c echo.Context) error {
	req := &models.DashboardRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	from, to := parseRange(req.From, req.To)

	res := h.dash.Overview(c.Request().Context(), from, to)
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=60")
	return xhttp.SuccessResponse(c, res)
}

func (h *DashboardEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// mapStageError converts domain stage errors to HTTP app errors.
func mapStageError(err error) error {
	var fetchErr *models.FetchError
	if errors.As(err, &fetchErr) {
		return xhttp.BadGatewayError("series source unavailable").WithError(err)
	}
	var emptyErr *models.EmptyWindowError
	if errors.As(err, &emptyErr) {
		return xhttp.UnprocessableError("selected window contains no observations").WithError(err)
	}
	var fcErr *models.ForecastError
	if errors.As(err, &fcErr) {
		return xhttp.UnprocessableError(fcErr.Reason).WithError(err)
	}
	return err
}
