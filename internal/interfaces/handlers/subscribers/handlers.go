package subscribers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	subsvc "vastgoed-sync/internal/application/subscribers"
	"vastgoed-sync/internal/domain"
	"vastgoed-sync/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

type Handlers struct {
	Service *subsvc.Service
}

// suppressionWebhook is the body the mail provider posts on bounces and
// unsubscribes.
type suppressionWebhook struct {
	Recipient       string `json:"Recipient"`
	SuppressSending bool   `json:"SuppressSending"`
}

// GET /subscribers
func (h *Handlers) Count(c *fiber.Ctx) error {
	n, err := h.Service.CountActive(c.UserContext())
	if err != nil {
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.Success(c, fmt.Sprintf("There are %d active subscribers.", n), fiber.Map{"active": n}, nil)
}

// POST /subscribers/add takes the site's form post (form_fields[...]).
func (h *Handlers) Add(c *fiber.Ctx) error {
	sub := &domain.Subscriber{
		Email:      formField(c, "Email"),
		Firstname:  formField(c, "Firstname"),
		Lastname:   formField(c, "Lastname"),
		Telephone:  formField(c, "Telephone"),
		Postalcode: formField(c, "Postalcode"),
		Status:     formField(c, "Status"),
		Type:       formField(c, "Type"),
	}
	var err error
	if sub.RadiusInKM, err = formInt(c, "RadiusInKM"); err != nil {
		return response.Error(c, subsvc.ErrInvalidRadius.Error(), fiber.StatusBadRequest, nil)
	}
	if sub.MinPrice, err = formInt(c, "MinPrice"); err != nil {
		return response.Error(c, subsvc.ErrInvalidPriceRange.Error(), fiber.StatusBadRequest, nil)
	}
	if sub.MaxPrice, err = formInt(c, "MaxPrice"); err != nil {
		return response.Error(c, subsvc.ErrInvalidPriceRange.Error(), fiber.StatusBadRequest, nil)
	}
	if sub.Bedrooms, err = formInt(c, "Bedrooms"); err != nil {
		return response.Error(c, "Invalid number of bedrooms", fiber.StatusBadRequest, nil)
	}

	if err := h.Service.Add(c.UserContext(), sub); err != nil {
		switch {
		case errors.Is(err, subsvc.ErrSubscriberExists):
			return response.Error(c, "Already exists", fiber.StatusBadRequest, nil)
		case errors.Is(err, subsvc.ErrInvalidEmail),
			errors.Is(err, subsvc.ErrInvalidPostalCode),
			errors.Is(err, subsvc.ErrInvalidRadius),
			errors.Is(err, subsvc.ErrInvalidPriceRange),
			errors.Is(err, subsvc.ErrInvalidStatus),
			errors.Is(err, subsvc.ErrInvalidType):
			return response.Error(c, err.Error(), fiber.StatusBadRequest, nil)
		}
		log.Error().Err(err).Msg("adding subscriber")
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	return response.SuccessCreated(c, "Added new subscriber: "+sub.Email, sub, nil)
}

// POST /subscribers/delete
func (h *Handlers) Delete(c *fiber.Ctx) error {
	var body suppressionWebhook
	if err := c.BodyParser(&body); err != nil || strings.TrimSpace(body.Recipient) == "" {
		return response.Error(c, "Invalid request body", fiber.StatusBadRequest, nil)
	}
	if err := h.Service.ApplyWebhook(c.UserContext(), body.Recipient, body.SuppressSending); err != nil {
		if errors.Is(err, subsvc.ErrSubscriberNotFound) {
			return response.Error(c, err.Error(), fiber.StatusNotFound, nil)
		}
		log.Error().Err(err).Str("recipient", body.Recipient).Msg("applying suppression webhook")
		return response.Error(c, "Internal Server Error", fiber.StatusInternalServerError, nil)
	}
	msg := "Removed subscriber: "
	if !body.SuppressSending {
		msg = "Reactivated subscriber: "
	}
	return response.Success(c, msg+domain.NormalizeEmail(body.Recipient), nil, nil)
}

func formField(c *fiber.Ctx, name string) string {
	return strings.TrimSpace(c.FormValue("form_fields[" + name + "]"))
}

// formInt treats a missing field as 0.
func formInt(c *fiber.Ctx, name string) (int, error) {
	v := formField(c, name)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}
