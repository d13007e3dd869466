package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/wastedash/wastedash/internal/config"
	"github.com/wastedash/wastedash/internal/service"
)

func Register(app *fiber.App, svcs *service.Services) {
	app.Get("/dashboard", func(c *fiber.Ctx) error {
		return c.JSON(svcs.Dashboard.Build(time.Now()))
	})

	app.Get("/waste/:category", func(c *fiber.Ctx) error {
		category := c.Params("category")
		if category != "A" && category != "B" {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid category. Must be A or B")
		}
		data, err := svcs.Detail.WasteDetail(category, c.Query("waste"))
		if err != nil {
			return err
		}
		return c.JSON(data)
	})

	app.Get("/product/:product", func(c *fiber.Ctx) error {
		product := c.Params("product")
		if product != "A" && product != "B" {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid product. Must be A or B")
		}
		data, err := svcs.Detail.ProductDetail(product)
		if err != nil {
			return err
		}
		return c.JSON(data)
	})
}

// ErrorHandler maps request-shape errors to their status and anything
// unexpected to a generic 500. The underlying message is exposed only in
// dev mode.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	msg := err.Error()
	if code == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		if !config.DevMode() {
			msg = "Internal Server Error"
		}
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
