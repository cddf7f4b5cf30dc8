package http

import (
	"errors"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/billed-client/internal/application/dto"
	"github.com/jhoicas/billed-client/internal/application/newbill"
	"github.com/jhoicas/billed-client/internal/application/session"
	"github.com/jhoicas/billed-client/internal/domain"
	"github.com/jhoicas/billed-client/internal/domain/gateway"
	"github.com/jhoicas/billed-client/pkg/logger"
)

// DraftFactory crea un flujo de creación nuevo (borrador vacío).
type DraftFactory func() *newbill.UseCase

// NewBillHandler expone las dos fases del alta de una nota. El estado entre
// la carga del justificante y el envío vive en un flujo por sesión, que se
// descarta cuando la nota se envía con éxito.
type NewBillHandler struct {
	factory DraftFactory
	store   gateway.SessionStore
	rec     *RouteRecorder
	log     *logger.Logger

	mu     sync.Mutex
	drafts map[string]*newbill.UseCase // por email de sesión
}

// NewNewBillHandler construye el handler de creación.
func NewNewBillHandler(factory DraftFactory, store gateway.SessionStore, rec *RouteRecorder, log *logger.Logger) *NewBillHandler {
	return &NewBillHandler{factory: factory, store: store, rec: rec, log: log, drafts: make(map[string]*newbill.UseCase)}
}

func (h *NewBillHandler) draftFor(email string) *newbill.UseCase {
	h.mu.Lock()
	defer h.mu.Unlock()
	uc, ok := h.drafts[email]
	if !ok {
		uc = h.factory()
		h.drafts[email] = uc
	}
	return uc
}

func (h *NewBillHandler) dropDraft(email string) {
	h.mu.Lock()
	delete(h.drafts, email)
	h.mu.Unlock()
}

// Upload godoc
// @Summary      Fase 1: cargar el justificante (jpg, jpeg o png)
// @Tags         bills
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "justificante"
// @Success      201   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/bills/justificatif [post]
func (h *NewBillHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "falta el campo file"})
	}
	sess, err := session.Current(h.store)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: err.Error()})
	}

	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: err.Error()})
	}
	defer f.Close()

	uc := h.draftFor(sess.Email)
	if err := uc.HandleFile(c.UserContext(), fh.Filename, f); err != nil {
		if errors.Is(err, domain.ErrFormatoJustificante) {
			// Alert: la UI muestra el mensaje y limpia el input de archivo
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error(), Alert: true})
		}
		h.log.Error().Err(err).Str("file", fh.Filename).Msg("carga del justificante")
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "REMOTE", Message: err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{
		FileURL:  uc.FileURL(),
		FileName: uc.FileName(),
		Key:      uc.DraftID(),
	})
}

// Submit godoc
// @Summary      Fase 2: enviar la nota de frais completa
// @Tags         bills
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BillForm  true  "campos del formulario"
// @Success      200   {object}  dto.RedirectResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      502   {object}  dto.ErrorResponse
// @Router       /api/bills [post]
func (h *NewBillHandler) Submit(c *fiber.Ctx) error {
	var form dto.BillForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if form.Type == "" || form.Name == "" || form.Amount == "" || form.Date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "type, name, amount y date son requeridos"})
	}
	sess, err := session.Current(h.store)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: err.Error()})
	}

	uc := h.draftFor(sess.Email)
	if err := uc.Submit(c.UserContext(), form); err != nil {
		switch {
		case errors.Is(err, domain.ErrCargaRequerida):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "UPLOAD_REQUIRED", Message: err.Error()})
		case errors.Is(err, domain.ErrMontoInvalido), errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		default:
			// error remoto: queda registrado y la nota sin enviar, el usuario reintenta
			h.log.Error().Err(err).Msg("envío de la nota")
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "REMOTE", Message: err.Error()})
		}
	}

	// el siguiente borrador de esta sesión empieza vacío
	h.dropDraft(sess.Email)
	return c.JSON(dto.RedirectResponse{Redirect: string(h.rec.Last())})
}
