package handlers

import (
	"errors"
	"log"

	"github.com/DOXOPOKC/checklists/internal/application/usecases"
	"github.com/DOXOPOKC/checklists/internal/infrastructure/cache"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ReportHandler lida com requisições de definição e montagem de relatórios
type ReportHandler struct {
	reportUseCase *usecases.ReportUseCase
	reportCache   *cache.ReportCache
}

// NewReportHandler cria uma nova instância de ReportHandler
func NewReportHandler(reportUseCase *usecases.ReportUseCase, reportCache *cache.ReportCache) *ReportHandler {
	return &ReportHandler{
		reportUseCase: reportUseCase,
		reportCache:   reportCache,
	}
}

// GetReports retorna as definições de relatório com paginação
// @Summary Lista os relatórios
// @Tags reports
// @Produce json
// @Param page query int false "Página atual" default(1)
// @Param limit query int false "Itens por página" default(10)
// @Router /reports [get]
func (h *ReportHandler) GetReports(c *fiber.Ctx) error {
	page, limit, err := parsePagination(c)
	if err != nil {
		return err
	}

	reports, total, err := h.reportUseCase.GetReports(c.Context(), page, limit)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao buscar relatórios: " + err.Error()})
	}

	return c.JSON(fiber.Map{
		"data":  reports,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

// GetReport retorna uma definição de relatório com seus checklists
func (h *ReportHandler) GetReport(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	report, err := h.reportUseCase.GetReport(c.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Relatório não encontrado"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao buscar relatório: " + err.Error()})
	}

	return c.JSON(report)
}

// CreateReport grava uma definição de relatório
// @Summary Cria um relatório
// @Tags reports
// @Accept json
// @Produce json
// @Router /reports [post]
func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	var input usecases.CreateReportInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Corpo da requisição inválido"})
	}

	report, err := h.reportUseCase.CreateReport(c.Context(), input)
	if err != nil {
		if errors.Is(err, usecases.ErrInvalidReport) {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao criar relatório: " + err.Error()})
	}

	return c.Status(201).JSON(report)
}

// DeleteReport remove uma definição de relatório
func (h *ReportHandler) DeleteReport(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.reportUseCase.DeleteReport(c.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Relatório não encontrado"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Erro ao remover relatório: " + err.Error()})
	}

	h.reportCache.Delete(id)
	return c.SendStatus(204)
}

// GetReportDocument monta e retorna o documento agregado de um relatório
// @Summary Monta o documento agregado de um relatório
// @Description Reorganiza checklists, perguntas, coletas, respostas e fotos do
// @Description intervalo do relatório em um documento aninhado com notas por pergunta
// @Tags reports
// @Produce json
// @Param id path int true "ID do relatório"
// @Success 200 {object} entities.ReportDocument "Documento agregado"
// @Failure 404 {object} map[string]interface{} "Relatório não encontrado"
// @Router /reports/{id}/document [get]
func (h *ReportHandler) GetReportDocument(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if document, found := h.reportCache.Get(id); found {
		return c.JSON(document)
	}

	document, err := h.reportUseCase.BuildReport(c.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Relatório não encontrado"})
		}

		// Registrar o erro no log para investigação
		log.Printf("❌ Erro ao montar documento do relatório %d: %v", id, err)
		return c.Status(500).JSON(fiber.Map{
			"error":     "Erro ao montar documento do relatório: " + err.Error(),
			"report_id": id,
		})
	}

	h.reportCache.Set(id, document)
	return c.JSON(document)
}
