package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hotel-ops-backend/controllers"
	documenthandler "hotel-ops-backend/lib/document-change"
	"hotel-ops-backend/middleware"
	apimodels "hotel-ops-backend/models/api"
	documentapimodels "hotel-ops-backend/models/api/document"
)

type documentChangeApiController struct {
	controllers.BaseAPIController
}

func InitDocumentChangeApiRouters(app *fiber.App) {
	controller := documentChangeApiController{}
	app.Route("document_change", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Get(":id", controller.get)
	})
}

// @Summary Create document change
// @Tags Document changes
// @Description Creates the document change record and submits its approval request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 documentapimodels.DocumentChangeData	true	"request body"
// @Success 200 {object} apimodels.Response{data=requestapimodels.RequestView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 422 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ops/document_change [post]
func (c *documentChangeApiController) create(ctx *fiber.Ctx) error {
	var payload documentapimodels.DocumentChangeData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	propertyID := middleware.GetUserProperty(ctx)
	userID := middleware.GetUserID(ctx)
	resp, err := documenthandler.Instance.Create(propertyID, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create document change")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Document change by ID
// @Tags Document changes
// @Description Domain record of a document change
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=documentapimodels.DocumentChangeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ops/document_change/{id} [get]
func (c *documentChangeApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	propertyID := middleware.GetUserProperty(ctx)
	resp, err := documenthandler.Instance.GetByID(propertyID, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to get document change")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
