package request

type DocumentTemplateRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Content  string `json:"content" binding:"required"`
	Active   *bool  `json:"active"`
}
