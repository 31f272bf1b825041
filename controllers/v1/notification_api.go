package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"hotel-ops-backend/controllers"
	notificationhandler "hotel-ops-backend/lib/notification"
	"hotel-ops-backend/middleware"
	apimodels "hotel-ops-backend/models/api"
)

type notificationApiController struct {
	controllers.BaseAPIController
}

func InitNotificationApiRouters(app *fiber.App) {
	controller := notificationApiController{}
	app.Route("notifications", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Put(":id/read", controller.markRead)
	})
}

// @Summary Notification feed
// @Tags Notifications
// @Description Own notifications, newest first; ?unread=true limits to unread
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   unread      		query   bool    false        "only unread"
// @Success 200 {object} apimodels.Response{data=[]notificationapimodels.NotificationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications [get]
func (c *notificationApiController) list(ctx *fiber.Ctx) error {
	propertyID := middleware.GetUserProperty(ctx)
	userID := middleware.GetUserID(ctx)
	onlyUnread := ctx.QueryBool("unread", false)
	resp, err := notificationhandler.Instance.ListForUser(propertyID, userID, onlyUnread)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list notifications")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Mark notification read
// @Tags Notifications
// @Description Acknowledge an own notification
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/notifications/{id}/read [put]
func (c *notificationApiController) markRead(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	propertyID := middleware.GetUserProperty(ctx)
	userID := middleware.GetUserID(ctx)
	if err = notificationhandler.Instance.MarkRead(propertyID, userID, id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to mark notification read")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
