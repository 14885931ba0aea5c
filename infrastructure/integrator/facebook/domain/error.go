package fbdomain

// ErrorResponse representa a estrutura de erro da Graph API do Facebook
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da Graph API
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsRateLimited verifica se o erro é de limite de requisições.
// Os códigos 4, 17 e 613 representam throttling nas respostas da Graph API.
func (e *ErrorResponse) IsRateLimited() bool {
	return e.Error.Code == 4 || e.Error.Code == 17 || e.Error.Code == 613
}

// IsTokenExpired verifica se o erro é de token expirado.
// O código 190 representa "token expirado"; subcódigos relacionados: 460, 463, 467.
func (e *ErrorResponse) IsTokenExpired() bool {
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}
