package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"

	"hotel-ops-backend/config"
	apiv1 "hotel-ops-backend/controllers/v1"
	"hotel-ops-backend/fiberlog"
	"hotel-ops-backend/initializers"
	"hotel-ops-backend/lib/ws"
	"hotel-ops-backend/middleware"
)

func main() {
	initializers.InitAllServices()

	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // limit of 10MB
	})
	app.Use(fiberRecover.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))

	//notifications
	apiV1.Use("/notifications", middleware.AuthorizationRequired())
	apiv1.InitNotificationApiRouters(apiV1)

	//ops
	ops := fiber.New()
	apiV1.Mount("/ops", ops)
	ops.Use(middleware.AuthorizationRequired())
	apiv1.InitRequestApiRouters(ops)
	apiv1.InitLeaveRequestApiRouters(ops)
	apiv1.InitDocumentChangeApiRouters(ops)
	apiv1.InitTransferRequestApiRouters(ops)
	apiv1.InitEmployeeApiRouters(ops)

	//ws
	wsApp := fiber.New()
	app.Mount("/ws", wsApp)
	wsApp.Use(middleware.AuthorizationRequired())
	ws.InitWs(wsApp)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
