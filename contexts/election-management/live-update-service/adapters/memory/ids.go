package memory

import (
	"context"

	"github.com/google/uuid"
)

// UUIDGenerator implements ports.IDGenerator using random UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
