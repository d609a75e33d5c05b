// Package llm wraps chat completion behind the Completer interface.
//
// GeminiCompleter is the shipped implementation. Per call Params are merged
// over the configured defaults (model gemini-2.5-flash, temperature 0,
// 1000 output tokens, top-p 1). Provider failures are classified:
// 401 and 403 wrap ErrAuthentication, 429 wraps ErrRateLimit. There is no
// retry logic.
//
//	cfg := llm.NewConfigFromEnv()
//	c, err := llm.NewGeminiCompleter(ctx, cfg)
//	reply, err := c.Complete(ctx, []llm.Message{{Role: llm.RoleUser, Content: "hi"}}, llm.Params{})
package llm
