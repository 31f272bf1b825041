package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hotel-ops-backend/controllers"
	pdfexport "hotel-ops-backend/lib/export/pdf"
	xlsexport "hotel-ops-backend/lib/export/xls"
	inboxhandler "hotel-ops-backend/lib/inbox"
	workflowhandler "hotel-ops-backend/lib/workflow"
	"hotel-ops-backend/middleware"
	apimodels "hotel-ops-backend/models/api"
	requestapimodels "hotel-ops-backend/models/api/request"
)

type requestApiController struct {
	controllers.BaseAPIController
}

func InitRequestApiRouters(app *fiber.App) {
	controller := requestApiController{}
	app.Route("request", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("list/export", middleware.PropertyAdminRequired(), controller.exportList)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Get("history", controller.history)
			idRoute.Get("decision", controller.decisionSlip)
			idRoute.Put("transition", controller.transition)
			idRoute.Put("cancel", controller.cancel)
		})
	})
}

// @Summary Request inbox
// @Tags Requests
// @Description Viewer-scoped request list (submitted / assigned / all)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ops/request/list [post]
func (c *requestApiController) list(ctx *fiber.Ctx) error {
	var filter requestapimodels.RequestFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	propertyID := middleware.GetUserProperty(ctx)
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	list, rowCount, err := inboxhandler.Instance.List(propertyID, userID, role, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list requests")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Request list export
// @Tags Requests
// @Description Export of the filtered request list to xlsx, admin only
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.RequestFilter	true	"request body"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ops/request/list/export [post]
func (c *requestApiController) exportList(ctx *fiber.Ctx) error {
	var filter requestapimodels.RequestFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	propertyID := middleware.GetUserProperty(ctx)
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	list, err := inboxhandler.Instance.ListForExport(propertyID, userID, role, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list requests for export")
	}
	buf, err := xlsexport.Instance.ExportRequestList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build xlsx export")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="requests.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Request by ID
// @Tags Requests
// @Description Request envelope by ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ops/request/{id} [get]
func (c *requestApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	propertyID := middleware.GetUserProperty(ctx)
	resp, err := workflowhandler.Instance.GetByID(propertyID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get request")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Request history
// @Tags Requests
// @Description Full transition trail of a request, oldest first
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=[]requestapimodels.HistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ops/request/{id}/history [get]
func (c *requestApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	propertyID := middleware.GetUserProperty(ctx)
	resp, err := workflowhandler.Instance.History(propertyID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get request history")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Decision slip
// @Tags Requests
// @Description Printable pdf summary of a decided request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ops/request/{id}/decision [get]
func (c *requestApiController) decisionSlip(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	propertyID := middleware.GetUserProperty(ctx)
	view, err := workflowhandler.Instance.GetByID(propertyID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get request")
	}
	if !view.Status.IsTerminal() {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(apimodels.NewError("decision slip is available for decided requests only"))
	}
	history, err := workflowhandler.Instance.History(propertyID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get request history")
	}
	pdfFile, err := pdfexport.GenerateDecisionSlip(view, history)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to build decision slip")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+view.RequestNumber+`.pdf"`)
	return ctx.Status(fiber.StatusOK).Send(pdfFile)
}

// @Summary Transition
// @Tags Requests
// @Description Move a request along its transition graph
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 requestapimodels.TransitionData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ops/request/{id}/transition [put]
func (c *requestApiController) transition(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload requestapimodels.TransitionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	propertyID := middleware.GetUserProperty(ctx)
	userID := middleware.GetUserID(ctx)
	resp, err := workflowhandler.Instance.Transition(propertyID, id, userID, payload.ToStatus, payload.Note)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to transition request")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Cancel
// @Tags Requests
// @Description Cancel an own pending request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ops/request/{id}/cancel [put]
func (c *requestApiController) cancel(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	propertyID := middleware.GetUserProperty(ctx)
	userID := middleware.GetUserID(ctx)
	resp, err := workflowhandler.Instance.CancelRequest(propertyID, id, userID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to cancel request")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
