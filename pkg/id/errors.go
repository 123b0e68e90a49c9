package id

import "github.com/VitamPoc/VitamCommon/pkg/errors"

// ErrUnknownType is returned for an unsupported scheme name.
var ErrUnknownType = errors.NewRequestError(errors.ServiceCLI, 1).
	Message("Unknown ID type", "未知的 ID 类型").
	MustBuild()
