package routes

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"sgo/models"
	"sgo/realtime"
	"sgo/repository"
)

// keyedRepository is a repository that can also read an entity's key.
type keyedRepository[T any, K comparable] interface {
	repository.Repository[T, K]
	Key(entity *T) K
}

// crudHandler maps the standard entity routes onto a repository.
type crudHandler[T any, K comparable] struct {
	entity   string
	repo     keyedRepository[T, K]
	hub      *realtime.Hub
	keyRoute string
	parseKey func(c *fiber.Ctx) (K, error)
	keyPath  func(key K) string
}

func newIntHandler[T any](entity string, repo keyedRepository[T, int], hub *realtime.Hub) *crudHandler[T, int] {
	return &crudHandler[T, int]{
		entity:   entity,
		repo:     repo,
		hub:      hub,
		keyRoute: "/:id",
		parseKey: func(c *fiber.Ctx) (int, error) {
			return c.ParamsInt("id")
		},
		keyPath: strconv.Itoa,
	}
}

// register adds the routes to router. Batch routes go first so that their
// paths are not captured by the key parameters.
func (h *crudHandler[T, K]) register(router fiber.Router) {
	router.Post("/add-multiple", h.addMultiple)
	router.Put("/update-multiple", h.updateMultiple)
	router.Delete("/remove-multiple", h.removeMultiple)

	router.Get("/", h.getAll)
	router.Post("/", h.create)
	router.Get(h.keyRoute, h.get)
	router.Put(h.keyRoute, h.update)
	router.Delete(h.keyRoute, h.remove)
}

func (h *crudHandler[T, K]) getAll(c *fiber.Ctx) error {
	items, err := h.repo.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("No %s records found", h.entity),
		})
	}
	return c.JSON(items)
}

func (h *crudHandler[T, K]) get(c *fiber.Ctx) error {
	key, err := h.key(c)
	if err != nil {
		return err
	}
	item, err := h.repo.GetByKey(c.UserContext(), key)
	if err != nil {
		return err
	}
	if item == nil {
		return h.notFound(c, key)
	}
	return c.JSON(item)
}

func (h *crudHandler[T, K]) create(c *fiber.Ctx) error {
	item := new(T)
	if err := parseBody(c, item); err != nil {
		return err
	}
	if err := models.Validate(item); err != nil {
		return err
	}
	if err := h.repo.Add(c.UserContext(), item); err != nil {
		return err
	}
	h.publish(realtime.ActionCreated, 1)

	c.Location("/api/" + h.entity + "/" + h.keyPath(h.repo.Key(item)))
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *crudHandler[T, K]) update(c *fiber.Ctx) error {
	key, err := h.key(c)
	if err != nil {
		return err
	}
	item := new(T)
	if err := parseBody(c, item); err != nil {
		return err
	}
	if err := models.Validate(item); err != nil {
		return err
	}
	if h.repo.Key(item) != key {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The key in the URL does not match the key in the body",
		})
	}

	existing, err := h.repo.GetByKey(c.UserContext(), key)
	if err != nil {
		return err
	}
	if existing == nil {
		return h.notFound(c, key)
	}
	if err := h.repo.Update(c.UserContext(), item); err != nil {
		return err
	}
	h.publish(realtime.ActionUpdated, 1)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *crudHandler[T, K]) remove(c *fiber.Ctx) error {
	key, err := h.key(c)
	if err != nil {
		return err
	}
	existing, err := h.repo.GetByKey(c.UserContext(), key)
	if err != nil {
		return err
	}
	if existing == nil {
		return h.notFound(c, key)
	}
	if err := h.repo.Remove(c.UserContext(), existing); err != nil {
		return err
	}
	h.publish(realtime.ActionDeleted, 1)
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *crudHandler[T, K]) addMultiple(c *fiber.Ctx) error {
	items, err := h.batch(c, true)
	if err != nil {
		return err
	}
	if items == nil {
		return h.emptyBatch(c)
	}
	if err := h.repo.AddMultiple(c.UserContext(), items); err != nil {
		return err
	}
	h.publish(realtime.ActionCreated, len(items))
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("%d %s records added", len(items), h.entity),
	})
}

func (h *crudHandler[T, K]) updateMultiple(c *fiber.Ctx) error {
	items, err := h.batch(c, true)
	if err != nil {
		return err
	}
	if items == nil {
		return h.emptyBatch(c)
	}
	if err := h.repo.UpdateMultiple(c.UserContext(), items); err != nil {
		return err
	}
	h.publish(realtime.ActionUpdated, len(items))
	return c.SendStatus(fiber.StatusNoContent)
}

// removeMultiple only needs the keys of the listed entities, so the bodies
// are not validated.
func (h *crudHandler[T, K]) removeMultiple(c *fiber.Ctx) error {
	items, err := h.batch(c, false)
	if err != nil {
		return err
	}
	if items == nil {
		return h.emptyBatch(c)
	}
	if err := h.repo.RemoveMultiple(c.UserContext(), items); err != nil {
		return err
	}
	h.publish(realtime.ActionDeleted, len(items))
	return c.SendStatus(fiber.StatusNoContent)
}

// batch parses a JSON array body. It returns nil items for an empty list.
func (h *crudHandler[T, K]) batch(c *fiber.Ctx, validate bool) ([]T, error) {
	var items []T
	if err := parseBody(c, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	if validate {
		if err := models.ValidateAll(items); err != nil {
			return nil, err
		}
	}
	return items, nil
}

func (h *crudHandler[T, K]) key(c *fiber.Ctx) (K, error) {
	key, err := h.parseKey(c)
	if err != nil {
		return key, fiber.NewError(fiber.StatusBadRequest, "Invalid "+h.entity+" key")
	}
	return key, nil
}

func (h *crudHandler[T, K]) notFound(c *fiber.Ctx, key K) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": fmt.Sprintf("No %s found with key %v", h.entity, key),
	})
}

func (h *crudHandler[T, K]) emptyBatch(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": fmt.Sprintf("The %s list is empty", h.entity),
	})
}

func (h *crudHandler[T, K]) publish(action string, count int) {
	publish(h.hub, realtime.Event{Entity: h.entity, Action: action, Count: count})
}

// publish sends ev to the change feed. A nil hub disables the feed.
func publish(hub *realtime.Hub, ev realtime.Event) {
	if hub == nil {
		return
	}
	hub.Publish(ev)
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Failed to parse request body")
	}
	return nil
}
