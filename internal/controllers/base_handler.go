package controllers

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"google.golang.org/grpc/metadata"

	"github.com/jaronheard/soonlist-turbo-sub000/internal/conf"
)

// userInfoHeader 是网关注入的已认证用户信息，值为 base64url 编码的 JSON claims。
const userInfoHeader = "x-apigateway-api-userinfo"

const (
	defaultQueryTimeout   = 3 * time.Second
	defaultCommandTimeout = 10 * time.Second
)

// HandlerType 区分查询与命令，用于选择超时。
type HandlerType int

const (
	HandlerTypeQuery HandlerType = iota
	HandlerTypeCommand
)

// HandlerTimeouts 定义各类 Handler 的超时，零值使用默认值。
type HandlerTimeouts struct {
	Query   time.Duration
	Command time.Duration
}

// ProvideHandlerTimeouts 从配置读取 Handler 超时。
func ProvideHandlerTimeouts(cfg *conf.Bootstrap) HandlerTimeouts {
	return HandlerTimeouts{
		Query:   cfg.Handlers.QueryTimeout,
		Command: cfg.Handlers.CommandTimeout,
	}
}

// RequestMetadata 是从 gRPC metadata 中解析出的调用者信息。
type RequestMetadata struct {
	UserID          string
	InvalidUserInfo bool
}

// BaseHandler 提供所有 Handler 共用的元数据解析与超时控制。
type BaseHandler struct {
	timeouts HandlerTimeouts
}

// NewBaseHandler 构造 BaseHandler。
func NewBaseHandler(timeouts HandlerTimeouts) *BaseHandler {
	if timeouts.Query <= 0 {
		timeouts.Query = defaultQueryTimeout
	}
	if timeouts.Command <= 0 {
		timeouts.Command = defaultCommandTimeout
	}
	return &BaseHandler{timeouts: timeouts}
}

// ExtractMetadata 解析网关用户信息；头缺失时返回零值，格式错误时置 InvalidUserInfo。
func (h *BaseHandler) ExtractMetadata(ctx context.Context) RequestMetadata {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return RequestMetadata{}
	}
	values := md.Get(userInfoHeader)
	if len(values) == 0 || strings.TrimSpace(values[0]) == "" {
		return RequestMetadata{}
	}
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(values[0], "="))
	if err != nil {
		return RequestMetadata{InvalidUserInfo: true}
	}
	var claims struct {
		Sub string `json:"sub"`
	}
	if err := json.Unmarshal(raw, &claims); err != nil {
		return RequestMetadata{InvalidUserInfo: true}
	}
	return RequestMetadata{UserID: strings.TrimSpace(claims.Sub)}
}

// WithTimeout 按 Handler 类型派生带超时的 context。
func (h *BaseHandler) WithTimeout(ctx context.Context, typ HandlerType) (context.Context, context.CancelFunc) {
	timeout := h.timeouts.Query
	if typ == HandlerTypeCommand {
		timeout = h.timeouts.Command
	}
	return context.WithTimeout(ctx, timeout)
}
