package interfaces

import "newsreader-core/core/domain"

// Navigator is the view-layer sink for resolved deep links.
type Navigator interface {
	Navigate(dest domain.Destination)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(dest domain.Destination)

// Navigate calls f(dest).
func (f NavigatorFunc) Navigate(dest domain.Destination) { f(dest) }
