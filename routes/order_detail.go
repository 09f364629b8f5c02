package routes

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"sgo/models"
	"sgo/realtime"
	"sgo/repository"
)

func newOrderDetailHandler(repo *repository.OrderDetailRepository, hub *realtime.Hub) *crudHandler[models.OrderDetail, repository.OrderDetailKey] {
	return &crudHandler[models.OrderDetail, repository.OrderDetailKey]{
		entity:   "order-detail",
		repo:     repo,
		hub:      hub,
		keyRoute: "/:orderId/:productId",
		parseKey: func(c *fiber.Ctx) (repository.OrderDetailKey, error) {
			orderID, err := c.ParamsInt("orderId")
			if err != nil {
				return repository.OrderDetailKey{}, err
			}
			productID, err := c.ParamsInt("productId")
			if err != nil {
				return repository.OrderDetailKey{}, err
			}
			return repository.OrderDetailKey{OrderID: orderID, ProductID: productID}, nil
		},
		keyPath: func(k repository.OrderDetailKey) string {
			return fmt.Sprintf("%d/%d", k.OrderID, k.ProductID)
		},
	}
}

// getOrderDetails lists the line items of one order.
func getOrderDetails(repo *repository.OrderDetailRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		orderID, err := c.ParamsInt("orderId")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid order id")
		}
		details, err := repo.GetOrderDetails(c.UserContext(), orderID)
		if err != nil {
			return err
		}
		if len(details) == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("No details found for order %d", orderID),
			})
		}
		return c.JSON(details)
	}
}
