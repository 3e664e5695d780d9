package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parseIDParam lê o parâmetro de rota :id como identificador numérico
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "ID inválido")
	}
	return uint(id), nil
}

// parsePagination lê os parâmetros de query page e limit com os padrões da API
func parsePagination(c *fiber.Ctx) (page, limit int, err error) {
	page, err = strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Parâmetro 'page' inválido")
	}

	limit, err = strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "Parâmetro 'limit' inválido")
	}

	return page, limit, nil
}
