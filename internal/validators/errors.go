package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidOwnerID       = errors.New("invalid owner ID")
	ErrEmptyName            = errors.New("name is required")
	ErrNameTooLong          = errors.New("name is too long")
	ErrInvalidTargetAmount  = errors.New("target amount must be positive")
	ErrInvalidCurrentAmount = errors.New("current amount cannot be negative")
	ErrInvalidStatus        = errors.New("invalid goal status")
	ErrNoFieldsToUpdate     = errors.New("at least one field must be provided for update")
	ErrInvalidContribution  = errors.New("contribution amount must be positive")
)
