package ports

import "github.com/bnema/asne/internal/domain"

type BinaryResolver interface {
	Resolve(os domain.OS, arch domain.Arch) (string, error)
}
