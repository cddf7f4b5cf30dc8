package gateway

import (
	"context"
	"io"

	"github.com/jhoicas/billed-client/internal/domain/entity"
)

// CreateBillInput carga multipart de la fase 1: el archivo del justificante
// más el email de la sesión para la atribución.
type CreateBillInput struct {
	FileName string
	Content  io.Reader
	Email    string
}

// CreateBillResult respuesta del alta del justificante. Key es el identificador
// del borrador que la fase 2 usa como selector del update.
type CreateBillResult struct {
	FileURL string `json:"fileUrl"`
	Key     string `json:"key"`
}

// BillsGateway puerto del recurso bills del store remoto. Frontera RPC opaca:
// el cliente no asume nada del protocolo real.
type BillsGateway interface {
	List(ctx context.Context) ([]entity.Bill, error)
	Create(ctx context.Context, in CreateBillInput) (*CreateBillResult, error)
	Update(ctx context.Context, id string, bill *entity.Bill) (*entity.Bill, error)
}

// UsersGateway puerto de identificación y alta de usuarios del store remoto.
type UsersGateway interface {
	Login(ctx context.Context, email, password string) error
	CreateUser(ctx context.Context, s *entity.Session) error
}
