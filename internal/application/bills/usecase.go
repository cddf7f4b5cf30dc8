package bills

import (
	"context"

	"github.com/jhoicas/billed-client/internal/application/dto"
	"github.com/jhoicas/billed-client/internal/domain/entity"
	"github.com/jhoicas/billed-client/internal/domain/gateway"
	"github.com/jhoicas/billed-client/pkg/logger"
)

// ListUseCase consulta de la lista de notas de frais de la sesión actual.
type ListUseCase struct {
	gw  gateway.BillsGateway
	log *logger.Logger
}

// NewListUseCase construye el caso de uso. El gateway puede ser nil: entornos
// sin conectividad remota operan en modo degradado.
func NewListUseCase(gw gateway.BillsGateway, log *logger.Logger) *ListUseCase {
	return &ListUseCase{gw: gw, log: log}
}

// FetchBills pide la lista completa al store remoto y la proyecta
// lista-para-mostrar, conservando el orden del gateway (sin reordenar ni
// deduplicar: ordenar es asunto de la vista). Sin gateway configurado es un
// no-op y devuelve (nil, nil).
func (uc *ListUseCase) FetchBills(ctx context.Context) ([]dto.BillView, error) {
	if uc.gw == nil {
		return nil, nil
	}
	list, err := uc.gw.List(ctx)
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Int("bills", len(list)).Msg("notas de frais recibidas")

	views := make([]dto.BillView, 0, len(list))
	for _, b := range list {
		views = append(views, uc.toView(b))
	}
	return views, nil
}

// toView normaliza un registro para la vista. Una fecha corrupta no tumba la
// lista: se registra la anomalía y se conserva el valor crudo de ese registro.
func (uc *ListUseCase) toView(b entity.Bill) dto.BillView {
	date, err := FormatDate(b.Date)
	if err != nil {
		uc.log.Warn().Err(err).Str("bill_id", b.ID).Str("date", b.Date).
			Msg("fecha no parseable, se conserva el valor crudo")
		date = b.Date
	}
	return dto.BillView{
		ID:           b.ID,
		Type:         b.Type,
		Name:         b.Name,
		Date:         date,
		Amount:       b.Amount.String(),
		Status:       FormatStatus(b.Status),
		Email:        b.Email,
		FileURL:      b.FileURL,
		FileName:     b.FileName,
		Commentary:   b.Commentary,
		CommentAdmin: b.CommentAdmin,
	}
}
