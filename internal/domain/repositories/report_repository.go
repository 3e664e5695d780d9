package repositories

import (
	"context"
	"fmt"

	"github.com/DOXOPOKC/checklists/internal/domain/entities"
	"gorm.io/gorm"
)

// ReportRepository implementa métodos para acesso a definições de relatório
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository cria uma nova instância de ReportRepository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{
		db: db,
	}
}

// CreateReport grava a definição do relatório e suas associações de checklist
func (r *ReportRepository) CreateReport(ctx context.Context, report *entities.Report) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return fmt.Errorf("erro ao criar relatório: %w", err)
	}
	return nil
}

// GetReports retorna as definições de relatório com paginação
func (r *ReportRepository) GetReports(ctx context.Context, page, limit int) ([]entities.Report, int64, error) {
	var reports []entities.Report
	var total int64

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	query := r.db.WithContext(ctx).Model(&entities.Report{})
	query.Count(&total)

	offset := (page - 1) * limit
	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&reports).Error; err != nil {
		return nil, 0, fmt.Errorf("erro ao buscar relatórios: %w", err)
	}

	return reports, total, nil
}

// GetReport retorna uma definição de relatório com os checklists referenciados
func (r *ReportRepository) GetReport(ctx context.Context, id uint) (entities.Report, error) {
	var report entities.Report

	err := r.db.WithContext(ctx).
		Preload("Checklists").
		First(&report, id).Error
	if err != nil {
		return entities.Report{}, fmt.Errorf("relatório não encontrado: %w", err)
	}

	return report, nil
}

// DeleteReport remove uma definição de relatório
func (r *ReportRepository) DeleteReport(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Select("Checklists").Delete(&entities.Report{ID: id})
	if result.Error != nil {
		return fmt.Errorf("erro ao remover relatório: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
