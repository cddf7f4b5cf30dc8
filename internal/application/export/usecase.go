package export

import (
	"context"

	"github.com/jhoicas/billed-client/internal/application/bills"
	"github.com/jhoicas/billed-client/internal/application/dto"
	"github.com/jhoicas/billed-client/internal/application/session"
	"github.com/jhoicas/billed-client/internal/domain/gateway"
)

// BillsPDFGenerator puerto del generador de la representación imprimible.
type BillsPDFGenerator interface {
	GenerateBillsPDF(ctx context.Context, owner string, bills []dto.BillView) ([]byte, error)
}

// UseCase exporta la lista normalizada de notas de frais como PDF.
type UseCase struct {
	list  *bills.ListUseCase
	store gateway.SessionStore
	gen   BillsPDFGenerator
}

// NewUseCase construye el caso de uso de exportación.
func NewUseCase(list *bills.ListUseCase, store gateway.SessionStore, gen BillsPDFGenerator) *UseCase {
	return &UseCase{list: list, store: store, gen: gen}
}

// Export obtiene la misma proyección que ve la lista y la vuelca al PDF.
// Sin sesión el documento sale sin dueño en la cabecera, no es un error.
func (uc *UseCase) Export(ctx context.Context) ([]byte, error) {
	views, err := uc.list.FetchBills(ctx)
	if err != nil {
		return nil, err
	}
	owner := ""
	if s, err := session.Current(uc.store); err == nil {
		owner = s.Email
	}
	return uc.gen.GenerateBillsPDF(ctx, owner, views)
}
