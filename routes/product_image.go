package routes

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"sgo/models"
	"sgo/realtime"
	"sgo/repository"
)

// maxImageSize bounds uploaded product images.
const maxImageSize = 2 << 20

func uploadProductImage(repo *repository.GormRepository[models.Product, int], hub *realtime.Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid product key")
		}
		file, err := c.FormFile("image")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Failed to get uploaded file")
		}
		if file.Size > maxImageSize {
			return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Image must be at most %d bytes", maxImageSize))
		}

		src, err := file.Open()
		if err != nil {
			return fmt.Errorf("open uploaded image: %w", err)
		}
		defer src.Close()
		data, err := io.ReadAll(src)
		if err != nil {
			return fmt.Errorf("read uploaded image: %w", err)
		}

		product, err := repo.GetByKey(c.UserContext(), id)
		if err != nil {
			return err
		}
		if product == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("No product found with key %d", id),
			})
		}
		product.Image = data
		if err := repo.Update(c.UserContext(), product); err != nil {
			return err
		}
		publish(hub, realtime.Event{Entity: "product", Action: realtime.ActionUpdated, Count: 1})
		return c.SendStatus(fiber.StatusNoContent)
	}
}

func getProductImage(repo *repository.GormRepository[models.Product, int]) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid product key")
		}
		product, err := repo.GetByKey(c.UserContext(), id)
		if err != nil {
			return err
		}
		if product == nil || len(product.Image) == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("No image found for product %d", id),
			})
		}
		c.Set(fiber.HeaderContentType, http.DetectContentType(product.Image))
		return c.Send(product.Image)
	}
}
