package properties

import (
	"context"
	"errors"
	"strconv"

	listsvc "vastgoed-sync/internal/application/listings"
	"vastgoed-sync/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Jobs is the batch surface the handlers trigger.
type Jobs interface {
	Scrape(ctx context.Context, page int) ([]string, error)
	Geocode(ctx context.Context) ([]string, error)
	Publish(ctx context.Context, name string) ([]string, error)
	Suspend(ctx context.Context, name string, id uint) ([]string, error)
	SuspendAll(ctx context.Context, name string) ([]string, error)
	Purge(ctx context.Context, name string) ([]string, error)
	Reset(ctx context.Context, name string) ([]string, error)
	Notify(ctx context.Context) ([]string, error)
}

type Handlers struct {
	Listings *listsvc.Service
	Jobs     Jobs
}

// GET /properties[?id=]
func (h *Handlers) Get(c *fiber.Ctx) error {
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return response.Error(c, "Invalid id", fiber.StatusBadRequest, nil)
		}
		listing, err := h.Listings.GetByID(c.UserContext(), uint(id))
		if errors.Is(err, listsvc.ErrListingNotFound) {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		if err != nil {
			return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
		}
		return response.Success(c, "Property fetched successfully", listing, nil)
	}

	all, err := h.Listings.GetAll(c.UserContext())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, "Properties fetched successfully", all, fiber.Map{"count": len(all)})
}

// GET /properties/scrape?page=
func (h *Handlers) Scrape(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return response.Error(c, "page must be a positive number", fiber.StatusBadRequest, nil)
	}
	lines, err := h.Jobs.Scrape(c.UserContext(), page)
	return finish(c, "Scrape finished", lines, err)
}

// GET /properties/fetch-coordinates
func (h *Handlers) FetchCoordinates(c *fiber.Ctx) error {
	lines, err := h.Jobs.Geocode(c.UserContext())
	return finish(c, "Coordinates fetched", lines, err)
}

// GET /properties/mail
func (h *Handlers) Mail(c *fiber.Ctx) error {
	lines, err := h.Jobs.Notify(c.UserContext())
	return finish(c, "Subscribers notified", lines, err)
}

// GET /properties/:marketplace
func (h *Handlers) Publish(c *fiber.Ctx) error {
	lines, err := h.Jobs.Publish(c.UserContext(), c.Params("marketplace"))
	return finish(c, "Properties published", lines, err)
}

// GET /properties/:marketplace/resetstatus
func (h *Handlers) ResetStatus(c *fiber.Ctx) error {
	lines, err := h.Jobs.Reset(c.UserContext(), c.Params("marketplace"))
	return finish(c, "Statuses reset", lines, err)
}

// GET /properties/:marketplace/suspend?id=
func (h *Handlers) Suspend(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Query("id"), 10, 64)
	if err != nil {
		return response.Error(c, "id is required", fiber.StatusBadRequest, nil)
	}
	lines, err := h.Jobs.Suspend(c.UserContext(), c.Params("marketplace"), uint(id))
	return finish(c, "Property suspended", lines, err)
}

// GET /properties/:marketplace/suspend/all
func (h *Handlers) SuspendAll(c *fiber.Ctx) error {
	lines, err := h.Jobs.SuspendAll(c.UserContext(), c.Params("marketplace"))
	return finish(c, "Properties suspended", lines, err)
}

// POST /properties/:marketplace/purge
func (h *Handlers) Purge(c *fiber.Ctx) error {
	lines, err := h.Jobs.Purge(c.UserContext(), c.Params("marketplace"))
	return finish(c, "Properties purged", lines, err)
}

// finish writes the job log lines, or the error with the status of its
// category. Lines gathered before a failure go into the details.
func finish(c *fiber.Ctx, msg string, lines []string, err error) error {
	if lines == nil {
		lines = []string{}
	}
	if err != nil {
		var details interface{}
		if len(lines) > 0 {
			details = fiber.Map{"lines": lines}
		}
		if errors.Is(err, listsvc.ErrListingNotFound) {
			return response.Error(c, err.Error(), fiber.StatusNotFound, details)
		}
		return response.FromError(c, err, details)
	}
	return response.Success(c, msg, lines, fiber.Map{"count": len(lines)})
}
