// Package pool provides the ants-backed worker pool used for bulk
// identifier generation and benchmarking.
package pool

import "github.com/VitamPoc/VitamCommon/pkg/errors"

// 池相关错误定义
var (
	// ErrPoolClosed 池已关闭
	ErrPoolClosed = errors.NewInternalError(errors.ServiceCommon, 10).
			HTTP(503).
			Message("Worker pool is closed", "池已关闭").
			MustBuild()

	// ErrPoolOverload 池已满
	ErrPoolOverload = errors.NewRateLimitError(errors.ServiceCommon, 10).
			Message("Worker pool is overloaded", "池已满").
			MustBuild()

	// ErrInvalidPoolConfig 无效的池配置
	ErrInvalidPoolConfig = errors.NewConfigError(errors.ServiceCommon, 10).
				Message("Invalid worker pool configuration", "无效的池配置").
				MustBuild()
)
