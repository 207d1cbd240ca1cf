package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ferdcas/tienda-romantica/internal/application/dto"
	"github.com/ferdcas/tienda-romantica/internal/application/usecase"
)

// QuestionnaireHandler maneja el cuestionario personal que abre la tienda.
type QuestionnaireHandler struct {
	uc *usecase.QuestionnaireUseCase
}

// NewQuestionnaireHandler construye el handler del cuestionario.
func NewQuestionnaireHandler(uc *usecase.QuestionnaireUseCase) *QuestionnaireHandler {
	return &QuestionnaireHandler{uc: uc}
}

// Submit godoc
// @Summary      Registrar un envío del cuestionario (userId opcional)
// @Tags         questionnaire
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitQuestionnaireRequest  true  "responses; userId opcional"
// @Success      201   {object}  dto.Envelope
// @Router       /questionnaire/submit [post]
func (h *QuestionnaireHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitQuestionnaireRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "cuerpo inválido")
	}
	out, err := h.uc.Submit(in, c.IP())
	if err != nil {
		return failErr(c, err)
	}
	return created(c, out)
}

// Count godoc
// @Summary      Cuántas veces completó el cuestionario un usuario
// @Tags         questionnaire
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.Envelope
// @Router       /questionnaire/user/{id}/count [get]
func (h *QuestionnaireHandler) Count(c *fiber.Ctx) error {
	userID := c.Params("id")
	if !canAccessUser(c, userID) {
		return fail(c, fiber.StatusForbidden, "no puedes consultar el cuestionario de otro usuario")
	}
	out, err := h.uc.CountByUser(userID)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, out)
}

// ListByUser godoc
// @Summary      Envíos del cuestionario de un usuario
// @Tags         questionnaire
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.Envelope
// @Router       /questionnaire/user/{id} [get]
func (h *QuestionnaireHandler) ListByUser(c *fiber.Ctx) error {
	userID := c.Params("id")
	if !canAccessUser(c, userID) {
		return fail(c, fiber.StatusForbidden, "no puedes consultar el cuestionario de otro usuario")
	}
	list, err := h.uc.ListByUser(userID)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, list)
}

// ListAll godoc
// @Summary      Todos los envíos del cuestionario (dashboard admin)
// @Tags         questionnaire
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo de envíos"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200  {object}  dto.Envelope
// @Router       /questionnaire/responses [get]
func (h *QuestionnaireHandler) ListAll(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "paginación inválida")
	}
	list, err := h.uc.ListAll(page)
	if err != nil {
		return failErr(c, err)
	}
	return ok(c, list)
}

// Delete godoc
// @Summary      Borrar un envío del cuestionario (solo admin)
// @Tags         questionnaire
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "ID del envío"
// @Success      200  {object}  dto.Envelope
// @Router       /questionnaire/{id} [delete]
func (h *QuestionnaireHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return failErr(c, err)
	}
	return okMsg(c, nil, "envío eliminado")
}
