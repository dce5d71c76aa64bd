package metadomain

import "fmt"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id"`
}

// APIError é um erro bem-formado retornado pela API do Meta. Diferente de um
// erro de transporte, ele carrega a mensagem visível ao usuário e não é
// substituído por uma contribuição vazia.
type APIError struct {
	Details ErrorDetails
}

func (e *APIError) Error() string {
	if e.Details.ErrorSubcode != 0 {
		return fmt.Sprintf("meta api: %s (code %d, subcode %d)", e.Details.Message, e.Details.Code, e.Details.ErrorSubcode)
	}
	return fmt.Sprintf("meta api: %s (code %d)", e.Details.Message, e.Details.Code)
}

// TransportError é uma falha de rede, timeout ou resposta não decodificável.
// No fetch hierárquico ela é recuperada por campanha, nunca fatal ao relatório.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("meta transport: %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
