package routes

import (
	"gplus/controllers/admin"
	"gplus/controllers/callback/gplus"
	"gplus/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	seamless := app.Group("/v1/api/seamless", middlewares.GplusAuth())
	seamless.Post("/pushbetdata", gplus.PushBetDataHandler)
	seamless.Post("/balance", gplus.BalanceHandler)

	adminroutes := app.Group("/admin", middlewares.AdminAuth())
	adminroutes.Get("/pushbets", admin.ListPushBets)
}
