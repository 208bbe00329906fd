package models

// Module is a static content unit of the course catalog.
type Module struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Icon        string `json:"icon"`
	OrderIndex  int    `json:"order_index"`
}

// Question belongs to exactly one module. The correct answer index is never
// serialized; clients only learn it through a quiz result.
type Question struct {
	ID            string   `json:"id"`
	ModuleID      string   `json:"module_id"`
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"-"`
	OrderIndex    int      `json:"order_index"`
}
