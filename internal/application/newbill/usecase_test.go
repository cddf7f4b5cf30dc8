package newbill

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billed-client/internal/application/dto"
	"github.com/jhoicas/billed-client/internal/domain"
	"github.com/jhoicas/billed-client/internal/domain/entity"
	"github.com/jhoicas/billed-client/internal/domain/gateway"
	"github.com/jhoicas/billed-client/pkg/logger"
)

// memStore SessionStore en memoria con la sesión ya conectada.
type memStore struct {
	items map[string]string
}

func storeWithSession(email string) *memStore {
	return &memStore{items: map[string]string{
		"user": `{"type":"Employee","email":"` + email + `","password":"azerty","status":"connected"}`,
	}}
}

func (s *memStore) GetItem(key string) (string, error) { return s.items[key], nil }
func (s *memStore) SetItem(key, value string) error    { s.items[key] = value; return nil }
func (s *memStore) RemoveItem(key string) error        { delete(s.items, key); return nil }
func (s *memStore) Clear() error                       { s.items = map[string]string{}; return nil }

// mockGateway BillsGateway con ganchos por operación y captura de argumentos.
type mockGateway struct {
	createFn     func(ctx context.Context, in gateway.CreateBillInput) (*gateway.CreateBillResult, error)
	createCalls  int
	lastCreate   gateway.CreateBillInput
	updateFn     func(ctx context.Context, id string, b *entity.Bill) (*entity.Bill, error)
	updateCalls  int
	lastUpdateID string
	lastBill     *entity.Bill
}

func (m *mockGateway) List(context.Context) ([]entity.Bill, error) {
	return nil, errors.New("no implementado")
}

func (m *mockGateway) Create(ctx context.Context, in gateway.CreateBillInput) (*gateway.CreateBillResult, error) {
	m.createCalls++
	m.lastCreate = in
	if m.createFn == nil {
		return &gateway.CreateBillResult{
			FileURL: "https://localhost:3456/images/test-uploaded.png",
			Key:     "bill123",
		}, nil
	}
	return m.createFn(ctx, in)
}

func (m *mockGateway) Update(ctx context.Context, id string, b *entity.Bill) (*entity.Bill, error) {
	m.updateCalls++
	m.lastUpdateID = id
	m.lastBill = b
	if m.updateFn == nil {
		return b, nil
	}
	return m.updateFn(ctx, id, b)
}

func newTestUseCase(gw *mockGateway, routes *[]domain.Route) *UseCase {
	nav := func(to domain.Route) { *routes = append(*routes, to) }
	return NewUseCase(gw, storeWithSession("employee@test.com"), nav, logger.Nop())
}

func TestHandleFile_ExtensionInvalida_RechazaSinLlamarAlGateway(t *testing.T) {
	gw := &mockGateway{}
	var routes []domain.Route
	uc := newTestUseCase(gw, &routes)

	for _, name := range []string{"test.pdf", "facture.gif", "sinextension"} {
		err := uc.HandleFile(context.Background(), name, strings.NewReader("x"))
		require.ErrorIs(t, err, domain.ErrFormatoJustificante, "archivo %q", name)
	}

	assert.Equal(t, 0, gw.createCalls, "un justificante rechazado nunca llega al gateway")
	assert.Empty(t, uc.DraftID())
	assert.Empty(t, uc.FileURL())
}

func TestHandleFile_MensajeDeAlertaExacto(t *testing.T) {
	uc := newTestUseCase(&mockGateway{}, &[]domain.Route{})

	err := uc.HandleFile(context.Background(), "test.pdf", strings.NewReader("x"))
	require.Error(t, err)
	assert.Equal(t, "Veuillez sélectionner un fichier au format jpg, jpeg ou png.", err.Error())
}

func TestHandleFile_ExtensionValida_CargaYGuardaElBorrador(t *testing.T) {
	gw := &mockGateway{}
	var routes []domain.Route
	uc := newTestUseCase(gw, &routes)

	err := uc.HandleFile(context.Background(), "test-uploaded.png", strings.NewReader("imagen"))
	require.NoError(t, err)

	assert.Equal(t, 1, gw.createCalls)
	assert.Equal(t, "test-uploaded.png", gw.lastCreate.FileName)
	assert.Equal(t, "employee@test.com", gw.lastCreate.Email, "el email sale de la sesión")

	assert.Equal(t, "bill123", uc.DraftID())
	assert.Equal(t, "https://localhost:3456/images/test-uploaded.png", uc.FileURL())
	assert.Equal(t, "test-uploaded.png", uc.FileName())
	assert.Empty(t, routes, "la fase 1 no navega")
}

func TestHandleFile_ExtensionEnMayusculas_SeAcepta(t *testing.T) {
	gw := &mockGateway{}
	uc := newTestUseCase(gw, &[]domain.Route{})

	err := uc.HandleFile(context.Background(), "photo.JPG", strings.NewReader("imagen"))
	require.NoError(t, err)
	assert.Equal(t, 1, gw.createCalls)
}

func TestHandleFile_CreateRemotoFalla_NoQuedaEstadoParcial(t *testing.T) {
	remoteErr := errors.New("Erreur 500")
	gw := &mockGateway{createFn: func(context.Context, gateway.CreateBillInput) (*gateway.CreateBillResult, error) {
		return nil, remoteErr
	}}
	var routes []domain.Route
	uc := newTestUseCase(gw, &routes)

	err := uc.HandleFile(context.Background(), "test.png", strings.NewReader("imagen"))
	assert.ErrorIs(t, err, remoteErr)
	assert.Empty(t, uc.DraftID())
	assert.Empty(t, uc.FileURL())

	// la fase 2 sigue bloqueada
	err = uc.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, domain.ErrCargaRequerida)
}

func validForm() dto.BillForm {
	return dto.BillForm{
		Type:       "Transports",
		Name:       "Vol Paris Londres",
		Amount:     "348",
		Date:       "2021-06-04",
		VAT:        "70",
		Pct:        "20",
		Commentary: "déplacement client",
	}
}

func TestSubmit_SinCargaPrevia(t *testing.T) {
	gw := &mockGateway{}
	uc := newTestUseCase(gw, &[]domain.Route{})

	err := uc.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, domain.ErrCargaRequerida)
	assert.Equal(t, 0, gw.updateCalls)
}

func TestSubmit_ArmaLaNotaYNavegaABills(t *testing.T) {
	gw := &mockGateway{}
	var routes []domain.Route
	uc := newTestUseCase(gw, &routes)
	require.NoError(t, uc.HandleFile(context.Background(), "justificatif.jpeg", strings.NewReader("imagen")))

	err := uc.Submit(context.Background(), validForm())
	require.NoError(t, err)

	require.Equal(t, 1, gw.updateCalls)
	assert.Equal(t, "bill123", gw.lastUpdateID)

	b := gw.lastBill
	require.NotNil(t, b)
	assert.Equal(t, "employee@test.com", b.Email, "el email sale de la sesión, nunca del formulario")
	assert.Equal(t, "Transports", b.Type)
	assert.Equal(t, "Vol Paris Londres", b.Name)
	assert.True(t, decimal.NewFromInt(348).Equal(b.Amount))
	assert.Equal(t, "2021-06-04", b.Date, "la fecha viaja cruda, sin formato de pantalla")
	assert.Equal(t, 20, b.Pct)
	assert.Equal(t, "https://localhost:3456/images/test-uploaded.png", b.FileURL)
	assert.Equal(t, "justificatif.jpeg", b.FileName)
	assert.Equal(t, entity.StatusPending, b.Status)

	require.Len(t, routes, 1)
	assert.Equal(t, domain.RouteBills, routes[0])
}

func TestSubmit_PctVacio_AplicaElPorcentajePorDefecto(t *testing.T) {
	gw := &mockGateway{}
	var routes []domain.Route
	uc := newTestUseCase(gw, &routes)
	require.NoError(t, uc.HandleFile(context.Background(), "a.png", strings.NewReader("x")))

	form := validForm()
	form.Pct = ""
	require.NoError(t, uc.Submit(context.Background(), form))
	assert.Equal(t, DefaultPct, gw.lastBill.Pct)
}

func TestSubmit_MontoInvalido(t *testing.T) {
	gw := &mockGateway{}
	uc := newTestUseCase(gw, &[]domain.Route{})
	require.NoError(t, uc.HandleFile(context.Background(), "a.png", strings.NewReader("x")))

	for _, amount := range []string{"", "abc", "-10"} {
		form := validForm()
		form.Amount = amount
		err := uc.Submit(context.Background(), form)
		assert.ErrorIs(t, err, domain.ErrMontoInvalido, "monto %q", amount)
	}
	assert.Equal(t, 0, gw.updateCalls)
}

func TestSubmit_UpdateRemotoFalla_NoNavega(t *testing.T) {
	remoteErr := errors.New("Erreur 404")
	gw := &mockGateway{updateFn: func(context.Context, string, *entity.Bill) (*entity.Bill, error) {
		return nil, remoteErr
	}}
	var routes []domain.Route
	uc := newTestUseCase(gw, &routes)
	require.NoError(t, uc.HandleFile(context.Background(), "a.png", strings.NewReader("x")))

	err := uc.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, remoteErr)
	assert.Empty(t, routes, "con update fallido no se navega")

	// la nota sigue sin enviar: el reintento es válido
	gw.updateFn = nil
	require.NoError(t, uc.Submit(context.Background(), validForm()))
	require.Len(t, routes, 1)
	assert.Equal(t, domain.RouteBills, routes[0])
}

func TestSubmit_Doble_SeRechaza(t *testing.T) {
	gw := &mockGateway{}
	var routes []domain.Route
	uc := newTestUseCase(gw, &routes)
	require.NoError(t, uc.HandleFile(context.Background(), "a.png", strings.NewReader("x")))
	require.NoError(t, uc.Submit(context.Background(), validForm()))

	err := uc.Submit(context.Background(), validForm())
	assert.ErrorIs(t, err, domain.ErrCargaRequerida, "una nota ya enviada no se reenvía")
	assert.Equal(t, 1, gw.updateCalls)
}
