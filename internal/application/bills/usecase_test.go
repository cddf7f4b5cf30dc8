package bills

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billed-client/internal/domain/entity"
	"github.com/jhoicas/billed-client/internal/domain/gateway"
	"github.com/jhoicas/billed-client/pkg/logger"
)

// mockGateway implementación de BillsGateway para tests: solo List.
type mockGateway struct {
	listFn    func(ctx context.Context) ([]entity.Bill, error)
	listCalls int
}

func (m *mockGateway) List(ctx context.Context) ([]entity.Bill, error) {
	m.listCalls++
	return m.listFn(ctx)
}

func (m *mockGateway) Create(context.Context, gateway.CreateBillInput) (*gateway.CreateBillResult, error) {
	return nil, errors.New("no implementado")
}

func (m *mockGateway) Update(context.Context, string, *entity.Bill) (*entity.Bill, error) {
	return nil, errors.New("no implementado")
}

func TestFetchBills_NormalizaFechaYEstado(t *testing.T) {
	gw := &mockGateway{listFn: func(context.Context) ([]entity.Bill, error) {
		return []entity.Bill{
			{ID: "b1", Date: "2021-06-04", Status: "pending", Name: "Vol Paris", Amount: decimal.NewFromInt(348)},
			{ID: "b2", Date: "2003-03-03", Status: "accepted", Name: "Hôtel", Amount: decimal.NewFromInt(200)},
			{ID: "b3", Date: "2002-02-02", Status: "refused", Name: "Taxi"},
		}, nil
	}}
	uc := NewListUseCase(gw, logger.Nop())

	views, err := uc.FetchBills(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 3)

	assert.Equal(t, "4 Juin 21", views[0].Date)
	assert.Equal(t, "En attente", views[0].Status)
	assert.Equal(t, "348", views[0].Amount)

	assert.Equal(t, "3 Mar. 03", views[1].Date)
	assert.Equal(t, "Accepté", views[1].Status)

	assert.Equal(t, "2 Fév. 02", views[2].Date)
	assert.Equal(t, "Refused", views[2].Status)
}

// Una fecha corrupta no aborta la lista: ese registro conserva el valor crudo
// y el resto se normaliza igual.
func TestFetchBills_FechaCorrupta_ConservaElValorCrudo(t *testing.T) {
	gw := &mockGateway{listFn: func(context.Context) ([]entity.Bill, error) {
		return []entity.Bill{
			{ID: "123", Date: "invalid-date", Status: "pending", Name: "test bill", Amount: decimal.NewFromInt(100)},
			{ID: "456", Date: "2021-06-04", Status: "accepted"},
		}, nil
	}}
	uc := NewListUseCase(gw, logger.Nop())

	views, err := uc.FetchBills(context.Background())
	require.NoError(t, err, "un registro malformado no debe tumbar la lista")
	require.Len(t, views, 2)

	assert.Equal(t, "invalid-date", views[0].Date, "el valor crudo debe pasar sin cambio")
	assert.Equal(t, "En attente", views[0].Status, "el estado se normaliza aunque la fecha no parsee")
	assert.Equal(t, "4 Juin 21", views[1].Date)
}

// Sin gateway configurado la operación es un no-op: ni error ni llamada remota.
func TestFetchBills_SinGateway_EsNoop(t *testing.T) {
	uc := NewListUseCase(nil, logger.Nop())

	views, err := uc.FetchBills(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, views)
}

func TestFetchBills_ConservaElOrdenDelGateway(t *testing.T) {
	gw := &mockGateway{listFn: func(context.Context) ([]entity.Bill, error) {
		return []entity.Bill{
			{ID: "b3", Date: "2003-03-03", Status: "pending"},
			{ID: "b1", Date: "2001-01-01", Status: "pending"},
			{ID: "b2", Date: "2002-02-02", Status: "pending"},
		}, nil
	}}
	uc := NewListUseCase(gw, logger.Nop())

	views, err := uc.FetchBills(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "b3", views[0].ID, "sin reordenar ni deduplicar")
	assert.Equal(t, "b1", views[1].ID)
	assert.Equal(t, "b2", views[2].ID)
	assert.Equal(t, 1, gw.listCalls)
}

func TestFetchBills_ErrorRemoto_SePropaga(t *testing.T) {
	remoteErr := errors.New("Erreur 500")
	gw := &mockGateway{listFn: func(context.Context) ([]entity.Bill, error) {
		return nil, remoteErr
	}}
	uc := NewListUseCase(gw, logger.Nop())

	views, err := uc.FetchBills(context.Background())
	assert.ErrorIs(t, err, remoteErr, "el error original debe conservarse")
	assert.Nil(t, views)
}
