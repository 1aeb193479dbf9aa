package ports

import "github.com/aalvaropc/multirange/internal/domain"

type ConfigInitializer interface {
	Init(spec domain.InitSpec, force bool) error
}
