package parcel

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

// ErrPackageIsNotConstructed is returned when a zero-value Package is used.
var ErrPackageIsNotConstructed = errors.New("Package must be created via NewPackage constructor")

// Package is one generated parcel. It is immutable once created; ownership
// passes to the package stream that emits it.
type Package struct {
	id          kernel.UUID
	packageType Type
	guard       guard.ConstructorGuard
}

// NewPackage builds a Package from a minted ID and a catalog type.
func NewPackage(id kernel.UUID, packageType Type) (Package, error) {
	if err := errors.Join(id.Validate(), packageType.Validate()); err != nil {
		return Package{}, err
	}

	return Package{
		id:          id,
		packageType: packageType,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate reports whether the value was built by NewPackage.
func (p Package) Validate() error {
	return p.guard.Validate(ErrPackageIsNotConstructed)
}

func (p Package) ID() kernel.UUID {
	return p.id
}

func (p Package) Type() Type {
	return p.packageType
}
