package handlers

import (
	"errors"

	"github.com/DOXOPOKC/checklists/internal/application/usecases"
	"github.com/DOXOPOKC/checklists/internal/domain/entities"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SurveyHandler lida com requisições relacionadas a checklists
type SurveyHandler struct {
	surveyUseCase *usecases.SurveyUseCase
}

// NewSurveyHandler cria uma nova instância de SurveyHandler
func NewSurveyHandler(surveyUseCase *usecases.SurveyUseCase) *SurveyHandler {
	return &SurveyHandler{
		surveyUseCase: surveyUseCase,
	}
}

// GetSurveys retorna todos os checklists com paginação
// @Summary Lista os checklists
// @Tags surveys
// @Produce json
// @Param page query int false "Página atual" default(1)
// @Param limit query int false "Itens por página" default(10)
// @Router /surveys [get]
func (h *SurveyHandler) GetSurveys(c *fiber.Ctx) error {
	page, limit, err := parsePagination(c)
	if err != nil {
		return err
	}

	surveys, total, err := h.surveyUseCase.GetSurveys(c.Context(), page, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao buscar checklists: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  surveys,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetSurvey retorna um checklist com suas perguntas na ordem de exibição
// @Summary Detalha um checklist
// @Tags surveys
// @Produce json
// @Param id path int true "ID do checklist"
// @Router /surveys/{id} [get]
func (h *SurveyHandler) GetSurvey(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	survey, err := h.surveyUseCase.GetSurvey(c.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Checklist não encontrado"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao buscar checklist: " + err.Error()})
	}

	return c.JSON(survey)
}

// CreateSurvey cria um novo checklist
// @Summary Cria um checklist
// @Tags surveys
// @Accept json
// @Produce json
// @Router /surveys [post]
func (h *SurveyHandler) CreateSurvey(c *fiber.Ctx) error {
	var survey entities.Survey
	if err := c.BodyParser(&survey); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}
	if survey.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Nome é obrigatório"})
	}

	if err := h.surveyUseCase.CreateSurvey(c.Context(), &survey); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao criar checklist: " + err.Error()})
	}

	return c.Status(201).JSON(survey)
}

// UpdateSurvey atualiza nome e descrição de um checklist
func (h *SurveyHandler) UpdateSurvey(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var survey entities.Survey
	if err := c.BodyParser(&survey); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}
	survey.ID = id

	if err := h.surveyUseCase.UpdateSurvey(c.Context(), &survey); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao atualizar checklist: " + err.Error()})
	}

	return c.JSON(survey)
}

// DeleteSurvey remove um checklist e, em cascata, perguntas e coletas
func (h *SurveyHandler) DeleteSurvey(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.surveyUseCase.DeleteSurvey(c.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Checklist não encontrado"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao remover checklist: " + err.Error()})
	}

	return c.SendStatus(204)
}

// CreateQuestion adiciona uma pergunta a um checklist
func (h *SurveyHandler) CreateQuestion(c *fiber.Ctx) error {
	surveyID, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var question entities.Question
	if err := c.BodyParser(&question); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}
	question.SurveyID = surveyID

	if err := h.surveyUseCase.CreateQuestion(c.Context(), &question); err != nil {
		if errors.Is(err, usecases.ErrInvalidQuestion) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao criar pergunta: " + err.Error()})
	}

	return c.Status(201).JSON(question)
}

// UpdateQuestion atualiza uma pergunta existente
func (h *SurveyHandler) UpdateQuestion(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var question entities.Question
	if err := c.BodyParser(&question); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}
	question.ID = id

	if err := h.surveyUseCase.UpdateQuestion(c.Context(), &question); err != nil {
		if errors.Is(err, usecases.ErrInvalidQuestion) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao atualizar pergunta: " + err.Error()})
	}

	return c.JSON(question)
}

// DeleteQuestion remove uma pergunta
func (h *SurveyHandler) DeleteQuestion(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.surveyUseCase.DeleteQuestion(c.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Pergunta não encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao remover pergunta: " + err.Error()})
	}

	return c.SendStatus(204)
}
