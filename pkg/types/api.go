package types

// GenerateRequest is the payload accepted by POST /generate and POST /ask.
type GenerateRequest struct {
	// Optional model identifier. Empty or the legacy "local-model" value
	// resolve to the server's default model.
	// example: llama3.2:1b
	Model string `json:"model,omitempty" example:"llama3.2:1b"`
	// Prompt text to generate a completion for.
	// example: Write a haiku about the ocean.
	Prompt string `json:"prompt" example:"Write a haiku about the ocean."`
}

// GenerateResponse wraps the gateway's answer. The response field is always
// populated: either generated text, or a fallback message starting with
// "Error:".
type GenerateResponse struct {
	// example: The ocean breathes in waves.
	Response string `json:"response" example:"The ocean breathes in waves."`
}

// HealthResponse is returned by GET /.
type HealthResponse struct {
	// example: Ollama LLM container is up
	Message string `json:"message" example:"Ollama LLM container is up"`
}

// ModelsResponse wraps the installed-model list returned by GET /models.
type ModelsResponse struct {
	Models []string `json:"models"`
}

// ErrorResponse is the body of transport-level error replies.
type ErrorResponse struct {
	// Error detail.
	// example: invalid JSON body
	Detail string `json:"detail" example:"invalid JSON body"`
}
