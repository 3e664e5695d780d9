package handlers

import (
	"errors"

	"github.com/DOXOPOKC/checklists/internal/domain/repositories"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserHandler lida com requisições de listagem de operadores de campo
type UserHandler struct {
	userRepo *repositories.UserRepository
}

// NewUserHandler cria uma nova instância de UserHandler
func NewUserHandler(userRepo *repositories.UserRepository) *UserHandler {
	return &UserHandler{
		userRepo: userRepo,
	}
}

// GetUsers retorna os perfis de operadores com paginação
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	page, limit, err := parsePagination(c)
	if err != nil {
		return err
	}

	users, total, err := h.userRepo.GetUsers(c.Context(), page, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao buscar operadores: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  users,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetUser retorna um perfil de operador pelo id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	user, err := h.userRepo.GetUser(c.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Operador não encontrado"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao buscar operador: " + err.Error()})
	}

	return c.JSON(user)
}
