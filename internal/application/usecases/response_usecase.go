package usecases

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"

	"github.com/DOXOPOKC/checklists/internal/domain/entities"
	"github.com/DOXOPOKC/checklists/internal/domain/repositories"
	"github.com/google/uuid"
)

// ErrInvalidSubmission indica uma coleta rejeitada na validação
var ErrInvalidSubmission = errors.New("coleta inválida")

// PhotoStorage define o armazenamento externo das fotos anexadas
type PhotoStorage interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) error
	PublicURL(path string) string
}

// ResponseUseCase implementa os casos de uso de coletas de campo
type ResponseUseCase struct {
	responseRepo *repositories.ResponseRepository
	surveyRepo   *repositories.SurveyRepository
	storage      PhotoStorage
}

// NewResponseUseCase cria uma nova instância de ResponseUseCase
func NewResponseUseCase(responseRepo *repositories.ResponseRepository, surveyRepo *repositories.SurveyRepository, storage PhotoStorage) *ResponseUseCase {
	return &ResponseUseCase{
		responseRepo: responseRepo,
		surveyRepo:   surveyRepo,
		storage:      storage,
	}
}

// SubmitAnswerInput carrega uma resposta individual de uma submissão
type SubmitAnswerInput struct {
	QuestionID uint   `json:"question"`
	Body       string `json:"body"`
}

// SubmitResponseInput carrega os campos de submissão de uma coleta
type SubmitResponseInput struct {
	SurveyID      uint                `json:"survey"`
	UserID        *uint               `json:"user"`
	InterviewUUID string              `json:"interview_uuid"`
	Answers       []SubmitAnswerInput `json:"answers"`
}

// SubmitResponse valida e grava uma coleta de campo. Perguntas obrigatórias
// precisam de corpo não vazio; respostas de escolha precisam pertencer aos
// rótulos configurados na pergunta. Quando o cliente não envia um
// interview_uuid, um novo é gerado aqui.
func (u *ResponseUseCase) SubmitResponse(ctx context.Context, input SubmitResponseInput) (entities.Response, error) {
	survey, err := u.surveyRepo.GetSurvey(ctx, input.SurveyID)
	if err != nil {
		return entities.Response{}, err
	}

	if err := validateSubmission(survey.Questions, input.Answers); err != nil {
		return entities.Response{}, err
	}

	interviewUUID := input.InterviewUUID
	if interviewUUID == "" {
		interviewUUID = uuid.New().String()
	}

	answers := make([]entities.Answer, 0, len(input.Answers))
	for _, answer := range input.Answers {
		answers = append(answers, entities.Answer{
			QuestionID: answer.QuestionID,
			Body:       answer.Body,
		})
	}

	response := entities.Response{
		SurveyID:      survey.ID,
		UserID:        input.UserID,
		InterviewUUID: interviewUUID,
		Answers:       answers,
	}
	if err := u.responseRepo.CreateResponse(ctx, &response); err != nil {
		return entities.Response{}, err
	}

	return response, nil
}

// GetResponses retorna as coletas com paginação e filtro opcional por checklist
func (u *ResponseUseCase) GetResponses(ctx context.Context, page, limit int, surveyID uint) ([]entities.Response, int64, error) {
	return u.responseRepo.GetResponses(ctx, page, limit, surveyID)
}

// GetResponse retorna uma coleta com respostas e anexos
func (u *ResponseUseCase) GetResponse(ctx context.Context, id uint) (entities.Response, error) {
	return u.responseRepo.GetResponse(ctx, id)
}

// AttachPhoto envia a foto para o bucket e registra o anexo na coleta
func (u *ResponseUseCase) AttachPhoto(ctx context.Context, responseID uint, filename string, data []byte) (entities.Attachment, error) {
	response, err := u.responseRepo.GetResponse(ctx, responseID)
	if err != nil {
		return entities.Attachment{}, err
	}

	ext := filepath.Ext(filename)
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	path := fmt.Sprintf("responses/%d/%s%s", response.ID, uuid.New().String(), ext)
	if err := u.storage.Upload(ctx, path, data, contentType); err != nil {
		return entities.Attachment{}, fmt.Errorf("erro ao enviar foto: %w", err)
	}

	attachment := entities.Attachment{
		ResponseID: response.ID,
		Name:       filename,
		File:       path,
	}
	if err := u.responseRepo.AddAttachment(ctx, &attachment); err != nil {
		return entities.Attachment{}, err
	}

	return attachment, nil
}

// validateSubmission confere as respostas de uma submissão contra as
// perguntas do checklist
func validateSubmission(questions []entities.Question, answers []SubmitAnswerInput) error {
	byID := make(map[uint]entities.Question, len(questions))
	for _, question := range questions {
		byID[question.ID] = question
	}

	answered := make(map[uint]bool, len(answers))
	for _, answer := range answers {
		question, ok := byID[answer.QuestionID]
		if !ok {
			return errors.Join(ErrInvalidSubmission, fmt.Errorf("pergunta %d não pertence ao checklist", answer.QuestionID))
		}
		if answered[answer.QuestionID] {
			return errors.Join(ErrInvalidSubmission, fmt.Errorf("pergunta %d respondida mais de uma vez", answer.QuestionID))
		}
		answered[answer.QuestionID] = true

		if err := validateChoiceAnswer(question, answer.Body); err != nil {
			return err
		}
	}

	for _, question := range questions {
		if question.Required && !answered[question.ID] {
			return errors.Join(ErrInvalidSubmission, fmt.Errorf("pergunta obrigatória %d sem resposta", question.ID))
		}
		if question.Required && answered[question.ID] {
			for _, answer := range answers {
				if answer.QuestionID == question.ID && answer.Body == "" {
					return errors.Join(ErrInvalidSubmission, fmt.Errorf("pergunta obrigatória %d com resposta vazia", question.ID))
				}
			}
		}
	}

	return nil
}

func validateChoiceAnswer(question entities.Question, body string) error {
	switch question.Type {
	case entities.QuestionTypeRadio, entities.QuestionTypeSelect:
		if body != "" && !containsLabel(question.ChoiceList(), body) {
			return errors.Join(ErrInvalidSubmission, fmt.Errorf("resposta %q fora das opções da pergunta %d", body, question.ID))
		}
	}
	return nil
}
