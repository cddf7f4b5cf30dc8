package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billed-client/internal/application/bills"
	"github.com/jhoicas/billed-client/internal/application/dto"
	"github.com/jhoicas/billed-client/internal/application/export"
	"github.com/jhoicas/billed-client/pkg/logger"
)

// BillsHandler sirve la lista normalizada y su exportación PDF.
type BillsHandler struct {
	list     *bills.ListUseCase
	exporter *export.UseCase
	log      *logger.Logger
}

// NewBillsHandler construye el handler de la lista.
func NewBillsHandler(list *bills.ListUseCase, exporter *export.UseCase, log *logger.Logger) *BillsHandler {
	return &BillsHandler{list: list, exporter: exporter, log: log}
}

// List godoc
// @Summary      Lista de notas de frais lista-para-mostrar
// @Tags         bills
// @Produce      json
// @Success      200   {array}   dto.BillView
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/bills [get]
func (h *BillsHandler) List(c *fiber.Ctx) error {
	views, err := h.list.FetchBills(c.UserContext())
	if err != nil {
		// los errores remotos se registran aquí, nunca tumban la vista
		h.log.Error().Err(err).Msg("obtener notas de frais")
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "REMOTE", Message: err.Error()})
	}
	if views == nil {
		// modo degradado sin gateway: lista vacía, no un error
		views = []dto.BillView{}
	}
	return c.JSON(views)
}

// Export godoc
// @Summary      Exportar la lista como PDF
// @Tags         bills
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/bills/export [get]
func (h *BillsHandler) Export(c *fiber.Ctx) error {
	doc, err := h.exporter.Export(c.UserContext())
	if err != nil {
		h.log.Error().Err(err).Msg("exportar notas de frais")
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "REMOTE", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="notes-de-frais.pdf"`)
	return c.Send(doc)
}
