package handlers

import (
	"errors"
	"io"
	"strconv"

	"github.com/DOXOPOKC/checklists/internal/application/usecases"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ResponseHandler lida com requisições relacionadas a coletas de campo
type ResponseHandler struct {
	responseUseCase *usecases.ResponseUseCase
}

// NewResponseHandler cria uma nova instância de ResponseHandler
func NewResponseHandler(responseUseCase *usecases.ResponseUseCase) *ResponseHandler {
	return &ResponseHandler{
		responseUseCase: responseUseCase,
	}
}

// GetResponses retorna as coletas com paginação e filtro opcional por checklist
// @Summary Lista as coletas
// @Tags responses
// @Produce json
// @Param page query int false "Página atual" default(1)
// @Param limit query int false "Itens por página" default(10)
// @Param survey_id query int false "Filtrar por checklist"
// @Router /responses [get]
func (h *ResponseHandler) GetResponses(c *fiber.Ctx) error {
	page, limit, err := parsePagination(c)
	if err != nil {
		return err
	}

	surveyID, _ := strconv.ParseUint(c.Query("survey_id", "0"), 10, 32)

	responses, total, err := h.responseUseCase.GetResponses(c.Context(), page, limit, uint(surveyID))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao buscar coletas: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  responses,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetResponse retorna uma coleta com respostas e anexos
func (h *ResponseHandler) GetResponse(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	response, err := h.responseUseCase.GetResponse(c.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Coleta não encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao buscar coleta: " + err.Error()})
	}

	return c.JSON(response)
}

// SubmitResponse grava uma nova coleta de campo
// @Summary Submete uma coleta
// @Tags responses
// @Accept json
// @Produce json
// @Router /responses [post]
func (h *ResponseHandler) SubmitResponse(c *fiber.Ctx) error {
	var input usecases.SubmitResponseInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}

	response, err := h.responseUseCase.SubmitResponse(c.Context(), input)
	if err != nil {
		if errors.Is(err, usecases.ErrInvalidSubmission) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Checklist não encontrado"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao gravar coleta: " + err.Error()})
	}

	return c.Status(201).JSON(response)
}

// AttachPhoto recebe uma foto via multipart e anexa à coleta
// @Summary Anexa uma foto a uma coleta
// @Tags responses
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "ID da coleta"
// @Param file formData file true "Foto"
// @Router /responses/{id}/photos [post]
func (h *ResponseHandler) AttachPhoto(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Arquivo 'file' é obrigatório"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Erro ao ler arquivo enviado"})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Erro ao ler arquivo enviado"})
	}

	attachment, err := h.responseUseCase.AttachPhoto(c.Context(), id, fileHeader.Filename, data)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Coleta não encontrada"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao anexar foto: " + err.Error()})
	}

	return c.Status(201).JSON(attachment)
}
