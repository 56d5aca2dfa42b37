package exchange

import "errors"

var (
	ErrDocumentIDRequired   = errors.New("exchange: document id required")
	ErrLanguageIDRequired   = errors.New("exchange: language id required")
	ErrCSVRequired          = errors.New("exchange: csv payload required")
	ErrCSVEmpty             = errors.New("exchange: csv input is empty")
	ErrCSVHeaderInvalid     = errors.New("exchange: csv header row is invalid")
	ErrCSVUnterminatedQuote = errors.New("exchange: csv has an unterminated quoted field")
)
