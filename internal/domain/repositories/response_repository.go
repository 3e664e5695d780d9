package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/DOXOPOKC/checklists/internal/domain/entities"
	"github.com/DOXOPOKC/checklists/internal/utils"
	"gorm.io/gorm"
)

// ResponseRepository implementa métodos para acesso a dados de coletas
type ResponseRepository struct {
	db *gorm.DB
}

// NewResponseRepository cria uma nova instância de ResponseRepository
func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{
		db: db,
	}
}

// CreateResponse grava a coleta e suas respostas em uma única transação
func (r *ResponseRepository) CreateResponse(ctx context.Context, response *entities.Response) error {
	if err := r.db.WithContext(ctx).Create(response).Error; err != nil {
		return fmt.Errorf("erro ao gravar coleta: %w", err)
	}
	return nil
}

// GetResponses retorna coletas com paginação e filtro opcional por checklist
func (r *ResponseRepository) GetResponses(ctx context.Context, page, limit int, surveyID uint) ([]entities.Response, int64, error) {
	var responses []entities.Response
	var total int64

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	query := r.db.WithContext(ctx).Model(&entities.Response{})
	if surveyID > 0 {
		query = query.Where("survey_id = ?", surveyID)
	}

	query.Count(&total)

	offset := (page - 1) * limit
	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&responses).Error; err != nil {
		return nil, 0, fmt.Errorf("erro ao buscar coletas: %w", err)
	}

	return responses, total, nil
}

// GetResponse retorna uma coleta com respostas e anexos
func (r *ResponseRepository) GetResponse(ctx context.Context, id uint) (entities.Response, error) {
	var response entities.Response

	err := r.db.WithContext(ctx).
		Preload("Answers").
		Preload("Attachments").
		First(&response, id).Error
	if err != nil {
		return entities.Response{}, fmt.Errorf("coleta não encontrada: %w", err)
	}

	return response, nil
}

// AddAttachment registra uma foto anexada a uma coleta
func (r *ResponseRepository) AddAttachment(ctx context.Context, attachment *entities.Attachment) error {
	if err := r.db.WithContext(ctx).Create(attachment).Error; err != nil {
		return fmt.Errorf("erro ao registrar anexo: %w", err)
	}
	return nil
}

// GetResponsesInWindow retorna as coletas dos checklists informados criadas
// dentro do intervalo inclusivo [from, to]. Um intervalo invertido resulta em
// um conjunto vazio, nunca em erro.
func (r *ResponseRepository) GetResponsesInWindow(ctx context.Context, surveyIDs []uint, from, to time.Time) ([]entities.Response, error) {
	responses := []entities.Response{}
	if len(surveyIDs) == 0 {
		return responses, nil
	}

	err := r.db.WithContext(ctx).
		Where("survey_id IN ?", surveyIDs).
		Where("created_at BETWEEN ? AND ?", utils.StartOfDay(from), utils.EndOfDay(to)).
		Order("created_at asc").
		Find(&responses).Error
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar coletas do intervalo: %w", err)
	}

	return responses, nil
}

// GetAnswersByResponseIDs retorna as respostas pertencentes às coletas informadas
func (r *ResponseRepository) GetAnswersByResponseIDs(ctx context.Context, responseIDs []uint) ([]entities.Answer, error) {
	answers := []entities.Answer{}
	if len(responseIDs) == 0 {
		return answers, nil
	}

	err := r.db.WithContext(ctx).
		Where("response_id IN ?", responseIDs).
		Order("response_id asc, id asc").
		Find(&answers).Error
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar respostas: %w", err)
	}

	return answers, nil
}

// GetQuestionsBySurveyIDs retorna as perguntas dos checklists informados.
// A ordenação de exibição é rederivada pelo consumidor a partir do campo order.
func (r *ResponseRepository) GetQuestionsBySurveyIDs(ctx context.Context, surveyIDs []uint) ([]entities.Question, error) {
	questions := []entities.Question{}
	if len(surveyIDs) == 0 {
		return questions, nil
	}

	err := r.db.WithContext(ctx).
		Where("survey_id IN ?", surveyIDs).
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar perguntas: %w", err)
	}

	return questions, nil
}

// GetAttachmentsByResponseIDs retorna as fotos anexadas às coletas informadas
func (r *ResponseRepository) GetAttachmentsByResponseIDs(ctx context.Context, responseIDs []uint) ([]entities.Attachment, error) {
	attachments := []entities.Attachment{}
	if len(responseIDs) == 0 {
		return attachments, nil
	}

	err := r.db.WithContext(ctx).
		Where("response_id IN ?", responseIDs).
		Order("id asc").
		Find(&attachments).Error
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar anexos: %w", err)
	}

	return attachments, nil
}
