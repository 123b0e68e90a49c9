package guid

import "github.com/VitamPoc/VitamCommon/pkg/errors"

// ErrInvalidFormat is returned when bytes or text cannot be decoded into
// a GUID or a path. Returned values carry the offending input in their
// message; match them with errors.Is.
var ErrInvalidFormat = errors.NewRequestError(errors.ServiceGUID, 1).
	Message("Invalid GUID format", "GUID 格式无效").
	MustBuild()
