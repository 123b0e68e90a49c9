package guidctl

import "github.com/VitamPoc/VitamCommon/pkg/errors"

var (
	// ErrInvalidCount is returned for a non-positive or oversized batch.
	ErrInvalidCount = errors.NewRequestError(errors.ServiceCLI, 2).
			Message("Invalid identifier count", "标识符数量无效").
			MustBuild()

	// ErrInvalidIdentifiers is returned when some inputs do not decode.
	ErrInvalidIdentifiers = errors.NewRequestError(errors.ServiceCLI, 3).
				Message("Invalid identifiers", "标识符无效").
				MustBuild()

	// ErrUnknownOperation is returned for an unsupported path operation
	// or output format.
	ErrUnknownOperation = errors.NewRequestError(errors.ServiceCLI, 4).
				Message("Unknown operation", "未知的操作").
				MustBuild()
)
