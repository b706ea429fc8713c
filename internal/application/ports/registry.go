package ports

import (
	"context"

	"vg-ms-user/internal/domain/registry"
)

// Registry reads the institution service. A nil record with a nil error means "does not exist".
type Registry interface {
	FetchInstitution(ctx context.Context, id string) (*registry.Institution, error)
	FetchHeadquarter(ctx context.Context, id string) (*registry.Headquarter, error)
}
