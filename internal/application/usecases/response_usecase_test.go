package usecases

import (
	"testing"

	"github.com/DOXOPOKC/checklists/internal/domain/entities"
	"github.com/stretchr/testify/assert"
)

func submissionQuestions() []entities.Question {
	return []entities.Question{
		{ID: 10, SurveyID: 1, Text: "Qual a cor da fachada?", Order: 1, Type: entities.QuestionTypeText, Required: true},
		{ID: 20, SurveyID: 1, Text: "A loja estava aberta?", Order: 2, Type: entities.QuestionTypeRadio, Choices: "Yes;No"},
	}
}

func TestValidateSubmission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		answers []SubmitAnswerInput
		wantErr bool
	}{
		{
			name: "submissão completa",
			answers: []SubmitAnswerInput{
				{QuestionID: 10, Body: "red"},
				{QuestionID: 20, Body: "Yes"},
			},
		},
		{
			name: "pergunta opcional pode ficar sem resposta",
			answers: []SubmitAnswerInput{
				{QuestionID: 10, Body: "red"},
			},
		},
		{
			name: "pergunta obrigatória sem resposta",
			answers: []SubmitAnswerInput{
				{QuestionID: 20, Body: "No"},
			},
			wantErr: true,
		},
		{
			name: "pergunta obrigatória com corpo vazio",
			answers: []SubmitAnswerInput{
				{QuestionID: 10, Body: ""},
				{QuestionID: 20, Body: "No"},
			},
			wantErr: true,
		},
		{
			name: "pergunta de outro checklist",
			answers: []SubmitAnswerInput{
				{QuestionID: 10, Body: "red"},
				{QuestionID: 99, Body: "x"},
			},
			wantErr: true,
		},
		{
			name: "mesma pergunta respondida duas vezes",
			answers: []SubmitAnswerInput{
				{QuestionID: 10, Body: "red"},
				{QuestionID: 10, Body: "blue"},
			},
			wantErr: true,
		},
		{
			name: "resposta de escolha fora das opções",
			answers: []SubmitAnswerInput{
				{QuestionID: 10, Body: "red"},
				{QuestionID: 20, Body: "Talvez"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validateSubmission(submissionQuestions(), tt.answers)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSubmission)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
