package repositories

import (
	"context"
	"fmt"

	"github.com/DOXOPOKC/checklists/internal/domain/entities"
	"gorm.io/gorm"
)

// SurveyRepository implementa métodos para acesso a dados de checklists
type SurveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository cria uma nova instância de SurveyRepository
func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{
		db: db,
	}
}

// GetSurveys retorna todos os checklists com paginação
func (r *SurveyRepository) GetSurveys(ctx context.Context, page, limit int) ([]entities.Survey, int64, error) {
	var surveys []entities.Survey
	var total int64

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	query := r.db.WithContext(ctx).Model(&entities.Survey{})

	// Contar total de registros antes da paginação
	query.Count(&total)

	offset := (page - 1) * limit
	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&surveys).Error; err != nil {
		return nil, 0, fmt.Errorf("erro ao buscar checklists: %w", err)
	}

	return surveys, total, nil
}

// GetSurvey retorna um checklist com suas perguntas na ordem de exibição
func (r *SurveyRepository) GetSurvey(ctx context.Context, id uint) (entities.Survey, error) {
	var survey entities.Survey

	err := r.db.WithContext(ctx).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" asc`)
		}).
		First(&survey, id).Error
	if err != nil {
		return entities.Survey{}, fmt.Errorf("checklist não encontrado: %w", err)
	}

	return survey, nil
}

// CreateSurvey cria um novo checklist
func (r *SurveyRepository) CreateSurvey(ctx context.Context, survey *entities.Survey) error {
	if err := r.db.WithContext(ctx).Create(survey).Error; err != nil {
		return fmt.Errorf("erro ao criar checklist: %w", err)
	}
	return nil
}

// UpdateSurvey atualiza nome e descrição de um checklist
func (r *SurveyRepository) UpdateSurvey(ctx context.Context, survey *entities.Survey) error {
	err := r.db.WithContext(ctx).Model(survey).
		Select("name", "description").
		Updates(survey).Error
	if err != nil {
		return fmt.Errorf("erro ao atualizar checklist: %w", err)
	}
	return nil
}

// DeleteSurvey remove um checklist e, em cascata, suas perguntas e coletas
func (r *SurveyRepository) DeleteSurvey(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.Survey{}, id)
	if result.Error != nil {
		return fmt.Errorf("erro ao remover checklist: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CreateQuestion adiciona uma pergunta a um checklist, mantendo o marcador
// is_key consistente com a presença de key_choices
func (r *SurveyRepository) CreateQuestion(ctx context.Context, question *entities.Question) error {
	question.IsKey = question.KeyChoices != ""
	if err := r.db.WithContext(ctx).Create(question).Error; err != nil {
		return fmt.Errorf("erro ao criar pergunta: %w", err)
	}
	return nil
}

// UpdateQuestion atualiza uma pergunta existente
func (r *SurveyRepository) UpdateQuestion(ctx context.Context, question *entities.Question) error {
	question.IsKey = question.KeyChoices != ""
	err := r.db.WithContext(ctx).Model(question).
		Select("text", "order", "required", "type", "choices", "key_choices", "is_key").
		Updates(question).Error
	if err != nil {
		return fmt.Errorf("erro ao atualizar pergunta: %w", err)
	}
	return nil
}

// DeleteQuestion remove uma pergunta de um checklist
func (r *SurveyRepository) DeleteQuestion(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.Question{}, id)
	if result.Error != nil {
		return fmt.Errorf("erro ao remover pergunta: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
