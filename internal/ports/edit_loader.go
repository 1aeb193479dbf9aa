package ports

import "github.com/aalvaropc/multirange/internal/domain"

// EditScriptLoader loads a scripted list of store mutations.
type EditScriptLoader interface {
	LoadEdits(path string) (domain.EditScript, error)
}
