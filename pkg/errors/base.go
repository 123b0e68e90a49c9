package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// OK represents a successful operation.
var OK = Register(&Errno{
	Code:      0,
	HTTP:      http.StatusOK,
	GRPCCode:  codes.OK,
	MessageEN: "Success",
	MessageZH: "成功",
})

// ============================================================================
// Request Errors (Category: 01)
// ============================================================================

var (
	// ErrBadRequest indicates a malformed request.
	ErrBadRequest = Register(&Errno{
		Code:      MakeCode(ServiceCommon, CategoryRequest, 0),
		HTTP:      http.StatusBadRequest,
		GRPCCode:  codes.InvalidArgument,
		MessageEN: "Bad request",
		MessageZH: "请求错误",
	})

	// ErrInvalidParam indicates an invalid parameter.
	ErrInvalidParam = Register(&Errno{
		Code:      MakeCode(ServiceCommon, CategoryRequest, 1),
		HTTP:      http.StatusBadRequest,
		GRPCCode:  codes.InvalidArgument,
		MessageEN: "Invalid parameter",
		MessageZH: "参数无效",
	})
)

// ============================================================================
// Resource Errors (Category: 04)
// ============================================================================

// ErrNotFound indicates a missing resource.
var ErrNotFound = Register(&Errno{
	Code:      MakeCode(ServiceCommon, CategoryResource, 0),
	HTTP:      http.StatusNotFound,
	GRPCCode:  codes.NotFound,
	MessageEN: "Resource not found",
	MessageZH: "资源不存在",
})

// ============================================================================
// Rate Limit Errors (Category: 06)
// ============================================================================

// ErrTooManyRequests indicates the caller exceeded a capacity limit.
var ErrTooManyRequests = Register(&Errno{
	Code:      MakeCode(ServiceCommon, CategoryRateLimit, 0),
	HTTP:      http.StatusTooManyRequests,
	GRPCCode:  codes.ResourceExhausted,
	MessageEN: "Too many requests",
	MessageZH: "请求过多",
})

// ============================================================================
// Internal Errors (Category: 07)
// ============================================================================

var (
	// ErrInternal indicates an unexpected internal failure.
	ErrInternal = Register(&Errno{
		Code:      MakeCode(ServiceCommon, CategoryInternal, 0),
		HTTP:      http.StatusInternalServerError,
		GRPCCode:  codes.Internal,
		MessageEN: "Internal server error",
		MessageZH: "服务器内部错误",
	})

	// ErrUnavailable indicates a component was closed or is not ready.
	ErrUnavailable = Register(&Errno{
		Code:      MakeCode(ServiceCommon, CategoryInternal, 1),
		HTTP:      http.StatusServiceUnavailable,
		GRPCCode:  codes.Unavailable,
		MessageEN: "Service unavailable",
		MessageZH: "服务不可用",
	})
)

// ErrTimeout indicates an operation did not complete in time.
var ErrTimeout = Register(&Errno{
	Code:      MakeCode(ServiceCommon, CategoryTimeout, 0),
	HTTP:      http.StatusGatewayTimeout,
	GRPCCode:  codes.DeadlineExceeded,
	MessageEN: "Operation timeout",
	MessageZH: "操作超时",
})

// ErrConfigInvalid indicates invalid configuration.
var ErrConfigInvalid = Register(&Errno{
	Code:      MakeCode(ServiceCommon, CategoryConfig, 0),
	HTTP:      http.StatusInternalServerError,
	GRPCCode:  codes.Internal,
	MessageEN: "Invalid configuration",
	MessageZH: "配置无效",
})
