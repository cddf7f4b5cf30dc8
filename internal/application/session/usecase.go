package session

import (
	"context"
	"encoding/json"

	"github.com/jhoicas/billed-client/internal/domain"
	"github.com/jhoicas/billed-client/internal/domain/entity"
	"github.com/jhoicas/billed-client/internal/domain/gateway"
	"github.com/jhoicas/billed-client/pkg/logger"
)

// LoginUseCase identifica al usuario en uno de los dos roles y establece la
// sesión local que el resto de los flujos lee.
type LoginUseCase struct {
	gw       gateway.UsersGateway
	store    gateway.SessionStore
	navigate domain.Navigator
	log      *logger.Logger
}

// NewLoginUseCase construye el caso de uso de sesión.
func NewLoginUseCase(gw gateway.UsersGateway, store gateway.SessionStore, navigate domain.Navigator, log *logger.Logger) *LoginUseCase {
	return &LoginUseCase{gw: gw, store: store, navigate: navigate, log: log}
}

// landing vista inicial de cada rol.
func landing(role string) domain.Route {
	if role == entity.RoleAdmin {
		return domain.RouteDashboard
	}
	return domain.RouteBills
}

// Login construye la sesión con las credenciales tal cual llegan y la persiste
// ANTES de intentar el login remoto (contrato de la app original: el registro
// local se escribe siempre, un nuevo login simplemente lo sobreescribe).
// Si el store remoto rechaza el login se intenta el alta del usuario con las
// mismas credenciales y se continúa; solo un alta fallida corta el flujo.
func (uc *LoginUseCase) Login(ctx context.Context, role, email, password string) error {
	if role != entity.RoleEmployee && role != entity.RoleAdmin {
		return domain.ErrRolInvalido
	}

	s := &entity.Session{
		Type:     role,
		Email:    email,
		Password: password,
		Status:   entity.SessionConnected,
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := uc.store.SetItem(gateway.SessionKey, string(raw)); err != nil {
		return err
	}

	if err := uc.gw.Login(ctx, email, password); err != nil {
		uc.log.Warn().Err(err).Str("email", email).Msg("login rechazado, se intenta alta de usuario")
		if err := uc.gw.CreateUser(ctx, s); err != nil {
			uc.log.Error().Err(err).Str("email", email).Msg("alta de usuario")
			return err
		}
	}

	uc.log.Info().Str("email", email).Str("role", role).Msg("sesión establecida")
	uc.navigate(landing(role))
	return nil
}

// Logout elimina la sesión local. No hay invalidación remota que hacer.
func (uc *LoginUseCase) Logout() error {
	return uc.store.RemoveItem(gateway.SessionKey)
}
