package services

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// keysetCursor 是分页游标的内部状态，对外编码为不透明的 base64 JSON。
type keysetCursor struct {
	Primary   string `json:"p"`
	Secondary string `json:"s"`
}

func encodeCursor(c keysetCursor) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("marshal cursor: %w", err)
	}
	return base64.URLEncoding.EncodeToString(data), nil
}

// decodeCursor 解析游标；空串表示从头开始。
func decodeCursor(token string) (keysetCursor, error) {
	if token == "" {
		return keysetCursor{}, nil
	}
	data, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return keysetCursor{}, fmt.Errorf("%w: decode cursor: %v", ErrInvalidArgument, err)
	}
	var c keysetCursor
	if err := json.Unmarshal(data, &c); err != nil {
		return keysetCursor{}, fmt.Errorf("%w: unmarshal cursor: %v", ErrInvalidArgument, err)
	}
	return c, nil
}
