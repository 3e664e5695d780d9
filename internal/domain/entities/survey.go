package entities

import (
	"strings"
	"time"
)

// Tipos de pergunta suportados pelos checklists
const (
	QuestionTypeText           = "text"
	QuestionTypeShortText      = "short_text"
	QuestionTypeRadio          = "radio"
	QuestionTypeSelect         = "select"
	QuestionTypeSelectMultiple = "select_multiple"
	QuestionTypeSelectImage    = "select_image"
	QuestionTypeInteger        = "integer"
)

// Survey representa um checklist no sistema
type Survey struct {
	ID          uint      `json:"id" gorm:"primaryKey;column:id"`
	Name        string    `json:"name" gorm:"column:name"`
	Description string    `json:"description" gorm:"column:description;type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Relações
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE"`
	Responses []Response `json:"responses,omitempty" gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE"`
}

// Question representa uma pergunta de um checklist.
// Choices e KeyChoices são armazenados como texto com rótulos separados por ";".
// Uma pergunta é "chave" quando KeyChoices não está vazio: suas respostas
// disparam a geração de notas no relatório agregado.
type Question struct {
	ID         uint   `json:"id" gorm:"primaryKey;column:id"`
	SurveyID   uint   `json:"survey" gorm:"column:survey_id;index:idx_questions_survey_order,unique"`
	Text       string `json:"text" gorm:"column:text;type:text"`
	Order      int    `json:"order" gorm:"column:order;index:idx_questions_survey_order,unique"`
	Required   bool   `json:"required" gorm:"column:required"`
	Type       string `json:"type" gorm:"column:type"`
	Choices    string `json:"choices" gorm:"column:choices;type:text"`
	KeyChoices string `json:"key_choices" gorm:"column:key_choices;type:text"`
	IsKey      bool   `json:"is_key" gorm:"column:is_key"`
}

// ChoiceList retorna os rótulos de opção na ordem configurada
func (q Question) ChoiceList() []string {
	if q.Choices == "" {
		return []string{}
	}
	return strings.Split(q.Choices, ";")
}

// TriggerChoices retorna os rótulos que disparam notas no relatório.
// A comparação com o corpo da resposta é por igualdade exata do token,
// sem normalização de espaços.
func (q Question) TriggerChoices() []string {
	if q.KeyChoices == "" {
		return []string{}
	}
	return strings.Split(q.KeyChoices, ";")
}
