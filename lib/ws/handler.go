package ws

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	wsclient "hotel-ops-backend/lib/ws/client"
	connectionhub "hotel-ops-backend/lib/ws/hub/connection-hub"
	"hotel-ops-backend/middleware"
)

func InitWs(app *fiber.App) {
	app.Use("", func(ctx *fiber.Ctx) error {
		ctx.Locals("userID", middleware.GetUserID(ctx))
		ctx.Locals("propertyID", middleware.GetUserProperty(ctx))
		return ctx.Next()
	})
	app.Get("/", websocket.New(pushHandler))
}

// @Summary Notification stream
// @Tags Websocket
// @Description Server push stream with request workflow notifications
// @Param   Authorization		header		string		true		"Authorization token"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 400
// @Failure 403
// @Failure 500
// @router /ws [get]
func pushHandler(c *websocket.Conn) {
	userID := c.Locals("userID").(string)
	propertyID := c.Locals("propertyID").(string)
	client := wsclient.NewClient(userID, c)
	connectionhub.Instance.AddClient(propertyID, userID, c)
	defer func() {
		connectionhub.Instance.DeleteClient(userID)
	}()
	client.Dispatch()
}
