package dto

type ChatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

type ChatResponse struct {
	Response string `json:"response"`
	Language string `json:"language"`
}
