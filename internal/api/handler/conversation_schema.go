package handler

// Wire roles on the frontend contract: the assistant renders as "bot".
const (
	wireRoleUser = "user"
	wireRoleBot  = "bot"
)

type conversationRequest struct {
	UserID string `json:"user_id"`
}

type conversationMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type conversationResponse struct {
	Messages []conversationMessage `json:"messages"`
}

type turnRequest struct {
	UserID   string `json:"user_id"  validate:"required"`
	Mensagem string `json:"mensagem" validate:"required"`
}

type turnResponse struct {
	Resposta             string `json:"resposta"`
	MostrarOportunidades bool   `json:"mostrar_oportunidades"`
}

type opportunitiesRequest struct {
	UserID string `json:"user_id"`
}

type opportunityItem struct {
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
	Link      string `json:"link"`
}

type opportunitiesResponse struct {
	Oportunidades []opportunityItem `json:"oportunidades"`
}
