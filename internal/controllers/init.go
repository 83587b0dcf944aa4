// Package controllers 提供传输层 Handler，负责处理外部请求并调用业务层。
// 该层负责参数校验、DTO 转换和错误映射。
package controllers

import (
	"github.com/google/wire"

	feedindexv1 "github.com/jaronheard/soonlist-turbo-sub000/api/feedindex/v1"
	"github.com/jaronheard/soonlist-turbo-sub000/internal/services"
)

// ProvideCaptureServiceAPI adapts CaptureService into CaptureServiceAPI for dependency injection.
func ProvideCaptureServiceAPI(s *services.CaptureService) CaptureServiceAPI { return s }

// ProviderSet collects controller constructors for Wire DI.
var ProviderSet = wire.NewSet(
	ProvideHandlerTimeouts,
	NewBaseHandler,
	ProvideCaptureServiceAPI,
	NewFeedHandler,
	wire.Bind(new(feedindexv1.FeedIndexServiceServer), new(*FeedHandler)),
)
