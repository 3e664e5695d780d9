package usecases

import (
	"context"
	"errors"

	"github.com/DOXOPOKC/checklists/internal/domain/entities"
	"github.com/DOXOPOKC/checklists/internal/domain/repositories"
)

// ErrInvalidQuestion indica uma pergunta rejeitada na validação
var ErrInvalidQuestion = errors.New("pergunta inválida")

var questionTypes = map[string]bool{
	entities.QuestionTypeText:           true,
	entities.QuestionTypeShortText:      true,
	entities.QuestionTypeRadio:          true,
	entities.QuestionTypeSelect:         true,
	entities.QuestionTypeSelectMultiple: true,
	entities.QuestionTypeSelectImage:    true,
	entities.QuestionTypeInteger:        true,
}

// SurveyUseCase implementa os casos de uso relacionados a checklists
type SurveyUseCase struct {
	surveyRepo *repositories.SurveyRepository
}

// NewSurveyUseCase cria uma nova instância de SurveyUseCase
func NewSurveyUseCase(surveyRepo *repositories.SurveyRepository) *SurveyUseCase {
	return &SurveyUseCase{
		surveyRepo: surveyRepo,
	}
}

// GetSurveys retorna todos os checklists com paginação
func (u *SurveyUseCase) GetSurveys(ctx context.Context, page, limit int) ([]entities.Survey, int64, error) {
	return u.surveyRepo.GetSurveys(ctx, page, limit)
}

// GetSurvey retorna um checklist com suas perguntas ordenadas
func (u *SurveyUseCase) GetSurvey(ctx context.Context, id uint) (entities.Survey, error) {
	return u.surveyRepo.GetSurvey(ctx, id)
}

// CreateSurvey cria um novo checklist
func (u *SurveyUseCase) CreateSurvey(ctx context.Context, survey *entities.Survey) error {
	return u.surveyRepo.CreateSurvey(ctx, survey)
}

// UpdateSurvey atualiza um checklist existente
func (u *SurveyUseCase) UpdateSurvey(ctx context.Context, survey *entities.Survey) error {
	return u.surveyRepo.UpdateSurvey(ctx, survey)
}

// DeleteSurvey remove um checklist
func (u *SurveyUseCase) DeleteSurvey(ctx context.Context, id uint) error {
	return u.surveyRepo.DeleteSurvey(ctx, id)
}

// CreateQuestion valida e adiciona uma pergunta a um checklist
func (u *SurveyUseCase) CreateQuestion(ctx context.Context, question *entities.Question) error {
	if err := validateQuestion(question); err != nil {
		return err
	}
	return u.surveyRepo.CreateQuestion(ctx, question)
}

// UpdateQuestion valida e atualiza uma pergunta existente
func (u *SurveyUseCase) UpdateQuestion(ctx context.Context, question *entities.Question) error {
	if err := validateQuestion(question); err != nil {
		return err
	}
	return u.surveyRepo.UpdateQuestion(ctx, question)
}

// DeleteQuestion remove uma pergunta
func (u *SurveyUseCase) DeleteQuestion(ctx context.Context, id uint) error {
	return u.surveyRepo.DeleteQuestion(ctx, id)
}

func validateQuestion(question *entities.Question) error {
	if question.Text == "" {
		return errors.Join(ErrInvalidQuestion, errors.New("texto é obrigatório"))
	}
	if !questionTypes[question.Type] {
		return errors.Join(ErrInvalidQuestion, errors.New("tipo desconhecido: "+question.Type))
	}
	return nil
}
