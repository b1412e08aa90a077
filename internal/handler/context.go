package handler

type ContextKey string

var (
	SubCtxKey      ContextKey = "sub"
	UserCtxKey     ContextKey = "user"
	ProviderCtxKey ContextKey = "provider"
)
