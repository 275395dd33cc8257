package animsync

import (
	"errors"
	"fmt"
)

// InvalidSelectionInputError is returned by Select for inputs which are
// neither a selector string, an element, a slice of elements nor a node list.
type InvalidSelectionInputError struct {
	Input any
}

func (e *InvalidSelectionInputError) Error() string {
	return fmt.Sprintf("invalid selection input of type %T; expected selector string, element, "+
		"element slice or node list", e.Input)
}

// ErrNoDocument is returned when selecting by CSS selector without a document.
var ErrNoDocument = errors.New("no document to query")
