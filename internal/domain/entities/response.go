package entities

import (
	"time"
)

// Response representa uma coleta de campo: o conjunto de respostas de um
// entrevistado a um checklist, identificado por um interview_uuid gerado no
// cliente (não há garantia de unicidade global entre retentativas).
type Response struct {
	ID            uint      `json:"id" gorm:"primaryKey;column:id"`
	SurveyID      uint      `json:"survey" gorm:"column:survey_id;index"`
	UserID        *uint     `json:"user" gorm:"column:user_id"`
	InterviewUUID string    `json:"interview_uuid" gorm:"column:interview_uuid;size:36"`
	CreatedAt     time.Time `json:"created" gorm:"column:created_at;index"`
	UpdatedAt     time.Time `json:"updated" gorm:"column:updated_at"`

	// Relações
	Answers     []Answer     `json:"answers,omitempty" gorm:"foreignKey:ResponseID;constraint:OnDelete:CASCADE"`
	Attachments []Attachment `json:"attachments,omitempty" gorm:"foreignKey:ResponseID;constraint:OnDelete:CASCADE"`
}

// Answer representa a resposta individual a uma pergunta. Para perguntas de
// escolha, Body contém um dos rótulos configurados na pergunta.
type Answer struct {
	ID         uint      `json:"id" gorm:"primaryKey;column:id"`
	ResponseID uint      `json:"response" gorm:"column:response_id;index:idx_answers_response_question,unique"`
	QuestionID uint      `json:"question" gorm:"column:question_id;index:idx_answers_response_question,unique"`
	Body       string    `json:"body" gorm:"column:body;type:text"`
	CreatedAt  time.Time `json:"created" gorm:"column:created_at"`
	UpdatedAt  time.Time `json:"updated" gorm:"column:updated_at"`
}

// Attachment representa uma foto anexada a uma coleta. File guarda o caminho
// do objeto no bucket de armazenamento; a URL pública é derivada pelo serviço
// de storage na montagem do relatório.
type Attachment struct {
	ID         uint      `json:"id" gorm:"primaryKey;column:id"`
	ResponseID uint      `json:"response" gorm:"column:response_id;index"`
	Name       string    `json:"name" gorm:"column:name"`
	File       string    `json:"file" gorm:"column:file"`
	CreatedAt  time.Time `json:"created" gorm:"column:created_at"`
}
