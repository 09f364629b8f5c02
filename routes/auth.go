package routes

import (
	"github.com/gofiber/fiber/v2"

	"sgo/auth"
	"sgo/models"
)

func register(service *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in auth.RegisterInput
		if err := parseBody(c, &in); err != nil {
			return err
		}
		if err := models.Validate(&in); err != nil {
			return err
		}

		id, err := service.Register(c.UserContext(), in)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"message": "User registered successfully",
			"id":      id,
		})
	}
}

func login(service *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in auth.LoginInput
		if err := parseBody(c, &in); err != nil {
			return err
		}
		if err := models.Validate(&in); err != nil {
			return err
		}

		token, err := service.Login(c.UserContext(), in.Email, in.Password)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"token": token})
	}
}
