package provider

import "context"

// ChatPayload 是一次聊天补全调用的输入。
type ChatPayload struct {
	System string
	User   string
}

// ModelProvider 抽象一个可调用的聊天模型。
type ModelProvider interface {
	ID() string
	Call(ctx context.Context, payload ChatPayload) (string, error)
}
