package repositories

import (
	"context"
	"fmt"

	"github.com/DOXOPOKC/checklists/internal/domain/entities"
	"gorm.io/gorm"
)

// UserRepository implementa métodos para acesso a perfis de operadores
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria uma nova instância de UserRepository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// GetUsers retorna os perfis de operadores com paginação
func (r *UserRepository) GetUsers(ctx context.Context, page, limit int) ([]entities.UserProfile, int64, error) {
	var users []entities.UserProfile
	var total int64

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	query := r.db.WithContext(ctx).Model(&entities.UserProfile{})
	query.Count(&total)

	offset := (page - 1) * limit
	if err := query.Order("id asc").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("erro ao buscar operadores: %w", err)
	}

	return users, total, nil
}

// GetUser retorna um perfil de operador pelo id
func (r *UserRepository) GetUser(ctx context.Context, id uint) (entities.UserProfile, error) {
	var user entities.UserProfile

	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return entities.UserProfile{}, fmt.Errorf("operador não encontrado: %w", err)
	}

	return user, nil
}
