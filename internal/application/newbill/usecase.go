package newbill

import (
	"context"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/billed-client/internal/application/dto"
	"github.com/jhoicas/billed-client/internal/application/session"
	"github.com/jhoicas/billed-client/internal/domain"
	"github.com/jhoicas/billed-client/internal/domain/entity"
	"github.com/jhoicas/billed-client/internal/domain/gateway"
	"github.com/jhoicas/billed-client/pkg/logger"
)

// Estados del borrador en curso. El envío solo es válido desde uploaded;
// intentarlo desde empty o submitted es un error detectable, no un no-op.
type draftState int

const (
	stateEmpty     draftState = iota // sin justificante cargado
	stateUploaded                    // fase 1 completada, listo para enviar
	stateSubmitted                   // nota enviada al store remoto
)

// Extensiones de justificante aceptadas. Se evalúa el nombre del archivo,
// nunca el MIME que reporte el navegador.
var acceptedExtensions = map[string]bool{"jpg": true, "jpeg": true, "png": true}

// DefaultPct porcentaje aplicado cuando el campo llega vacío.
const DefaultPct = 20

// UseCase flujo de creación de una nota de frais en dos fases: carga del
// justificante (validación + create remoto) y envío del formulario (armado
// del registro + update remoto). El estado de la fase 1 vive en la instancia
// y lo consume la fase 2.
type UseCase struct {
	gw       gateway.BillsGateway
	store    gateway.SessionStore
	navigate domain.Navigator
	log      *logger.Logger

	mu       sync.Mutex
	state    draftState
	draftID  string
	fileURL  string
	fileName string
}

// NewUseCase construye el flujo con el borrador vacío.
func NewUseCase(gw gateway.BillsGateway, store gateway.SessionStore, navigate domain.Navigator, log *logger.Logger) *UseCase {
	return &UseCase{gw: gw, store: store, navigate: navigate, log: log}
}

// HandleFile fase 1: valida la extensión del justificante y lo sube al store
// remoto junto con el email de la sesión. Con extensión inválida devuelve
// domain.ErrFormatoJustificante sin tocar el gateway. Si el create remoto
// falla se propaga el error original y no queda estado parcial: la fase 2
// sigue bloqueada.
func (uc *UseCase) HandleFile(ctx context.Context, fileName string, content io.Reader) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	if !acceptedExtensions[ext] {
		return domain.ErrFormatoJustificante
	}

	sess, err := session.Current(uc.store)
	if err != nil {
		return err
	}

	res, err := uc.gw.Create(ctx, gateway.CreateBillInput{
		FileName: fileName,
		Content:  content,
		Email:    sess.Email,
	})
	if err != nil {
		uc.log.Error().Err(err).Str("file", fileName).Msg("alta del justificante")
		return err
	}

	uc.mu.Lock()
	uc.state = stateUploaded
	uc.draftID = res.Key
	uc.fileURL = res.FileURL
	uc.fileName = fileName
	uc.mu.Unlock()

	uc.log.Debug().Str("draft", res.Key).Str("file", fileName).Msg("justificante cargado")
	return nil
}

// Submit fase 2: arma la nota completa con los campos del formulario más el
// estado que dejó la fase 1 y la envía como update del borrador. El email sale
// siempre de la sesión, nunca del formulario, para no suplantar al dueño.
// Si el update falla se registra el error tal cual y la nota queda sin enviar;
// el usuario reintenta o abandona. Solo el camino feliz navega.
func (uc *UseCase) Submit(ctx context.Context, form dto.BillForm) error {
	uc.mu.Lock()
	if uc.state != stateUploaded {
		uc.mu.Unlock()
		return domain.ErrCargaRequerida
	}
	draftID, fileURL, fileName := uc.draftID, uc.fileURL, uc.fileName
	uc.mu.Unlock()

	amount, err := decimal.NewFromString(form.Amount)
	if err != nil || amount.IsNegative() {
		return domain.ErrMontoInvalido
	}
	pct := DefaultPct
	if form.Pct != "" {
		pct, err = strconv.Atoi(form.Pct)
		if err != nil {
			return domain.ErrEntradaInvalida
		}
	}

	sess, err := session.Current(uc.store)
	if err != nil {
		return err
	}

	bill := &entity.Bill{
		Email:      sess.Email,
		Type:       form.Type,
		Name:       form.Name,
		Amount:     amount,
		Date:       form.Date,
		VAT:        form.VAT,
		Pct:        pct,
		Commentary: form.Commentary,
		FileURL:    fileURL,
		FileName:   fileName,
		Status:     entity.StatusPending,
	}

	if _, err := uc.gw.Update(ctx, draftID, bill); err != nil {
		uc.log.Error().Err(err).Str("draft", draftID).Msg("envío de la nota")
		return err
	}

	uc.mu.Lock()
	uc.state = stateSubmitted
	uc.mu.Unlock()

	uc.log.Info().Str("draft", draftID).Msg("nota de frais enviada")
	uc.navigate(domain.RouteBills)
	return nil
}

// DraftID identificador del borrador; vacío hasta que la fase 1 termina bien.
func (uc *UseCase) DraftID() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.draftID
}

// FileURL URL del justificante cargado; vacía hasta que la fase 1 termina bien.
func (uc *UseCase) FileURL() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.fileURL
}

// FileName nombre original del justificante cargado.
func (uc *UseCase) FileName() string {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.fileName
}
