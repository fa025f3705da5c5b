//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=requestevent_test
package requestevent

import (
	"context"

	"github.com/google/uuid"
)

type (
	ExecuteFn      func(ctx context.Context, requestID uuid.UUID) error
	HandlerFactory interface {
		GetHandler(status string) (ExecuteFn, error)
	}
)
