package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/DOXOPOKC/checklists/internal/domain/entities"
)

// ErrInvalidReport indica uma definição de relatório rejeitada na validação
var ErrInvalidReport = errors.New("definição de relatório inválida")

// ReportDefinitionStore define o acesso às definições de relatório
type ReportDefinitionStore interface {
	CreateReport(ctx context.Context, report *entities.Report) error
	GetReports(ctx context.Context, page, limit int) ([]entities.Report, int64, error)
	GetReport(ctx context.Context, id uint) (entities.Report, error)
	DeleteReport(ctx context.Context, id uint) error
}

// SnapshotStore define as leituras do snapshot usadas na montagem do
// documento: as coleções buscadas são imutáveis durante a agregação
type SnapshotStore interface {
	GetResponsesInWindow(ctx context.Context, surveyIDs []uint, from, to time.Time) ([]entities.Response, error)
	GetAnswersByResponseIDs(ctx context.Context, responseIDs []uint) ([]entities.Answer, error)
	GetQuestionsBySurveyIDs(ctx context.Context, surveyIDs []uint) ([]entities.Question, error)
	GetAttachmentsByResponseIDs(ctx context.Context, responseIDs []uint) ([]entities.Attachment, error)
}

// PhotoResolver deriva a URL pública de uma foto anexada
type PhotoResolver interface {
	PublicURL(path string) string
}

// ReportUseCase implementa os casos de uso de relatórios, incluindo a
// montagem do documento agregado
type ReportUseCase struct {
	reports  ReportDefinitionStore
	snapshot SnapshotStore
	photos   PhotoResolver
}

// NewReportUseCase cria uma nova instância de ReportUseCase
func NewReportUseCase(reports ReportDefinitionStore, snapshot SnapshotStore, photos PhotoResolver) *ReportUseCase {
	return &ReportUseCase{
		reports:  reports,
		snapshot: snapshot,
		photos:   photos,
	}
}

// CreateReportInput carrega os campos de criação de uma definição de relatório
type CreateReportInput struct {
	Name         string `json:"name"`
	DateFrom     string `json:"date_from"`
	DateTo       string `json:"date_to"`
	ChecklistIDs []uint `json:"checklists"`
}

// CreateReport valida e grava uma definição de relatório. Um intervalo
// invertido (date_from > date_to) é aceito e resulta em um documento vazio.
func (u *ReportUseCase) CreateReport(ctx context.Context, input CreateReportInput) (entities.Report, error) {
	if input.Name == "" {
		return entities.Report{}, errors.Join(ErrInvalidReport, errors.New("nome é obrigatório"))
	}

	dateFrom, err := time.Parse("2006-01-02", input.DateFrom)
	if err != nil {
		return entities.Report{}, errors.Join(ErrInvalidReport, err)
	}
	dateTo, err := time.Parse("2006-01-02", input.DateTo)
	if err != nil {
		return entities.Report{}, errors.Join(ErrInvalidReport, err)
	}

	checklists := make([]entities.Survey, 0, len(input.ChecklistIDs))
	for _, id := range input.ChecklistIDs {
		checklists = append(checklists, entities.Survey{ID: id})
	}

	report := entities.Report{
		Name:       input.Name,
		DateFrom:   dateFrom,
		DateTo:     dateTo,
		Checklists: checklists,
	}
	if err := u.reports.CreateReport(ctx, &report); err != nil {
		return entities.Report{}, err
	}

	return report, nil
}

// GetReports retorna as definições de relatório com paginação
func (u *ReportUseCase) GetReports(ctx context.Context, page, limit int) ([]entities.Report, int64, error) {
	return u.reports.GetReports(ctx, page, limit)
}

// GetReport retorna uma definição de relatório com seus checklists
func (u *ReportUseCase) GetReport(ctx context.Context, id uint) (entities.Report, error) {
	return u.reports.GetReport(ctx, id)
}

// DeleteReport remove uma definição de relatório
func (u *ReportUseCase) DeleteReport(ctx context.Context, id uint) error {
	return u.reports.DeleteReport(ctx, id)
}

// BuildReport monta o documento agregado de um relatório: busca o snapshot
// das coleções cobertas pelo intervalo e reorganiza os dados relacionais em
// um documento aninhado, uma entrada por checklist. Conjuntos vazios geram um
// documento esparso, nunca erro; falhas de busca sobem como estão.
func (u *ReportUseCase) BuildReport(ctx context.Context, reportID uint) (*entities.ReportDocument, error) {
	report, err := u.reports.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}

	surveyIDs := make([]uint, 0, len(report.Checklists))
	for _, survey := range report.Checklists {
		surveyIDs = append(surveyIDs, survey.ID)
	}

	responses, err := u.snapshot.GetResponsesInWindow(ctx, surveyIDs, report.DateFrom, report.DateTo)
	if err != nil {
		return nil, err
	}

	responseIDs := make([]uint, 0, len(responses))
	for _, response := range responses {
		responseIDs = append(responseIDs, response.ID)
	}

	answers, err := u.snapshot.GetAnswersByResponseIDs(ctx, responseIDs)
	if err != nil {
		return nil, err
	}

	questions, err := u.snapshot.GetQuestionsBySurveyIDs(ctx, surveyIDs)
	if err != nil {
		return nil, err
	}

	attachments, err := u.snapshot.GetAttachmentsByResponseIDs(ctx, responseIDs)
	if err != nil {
		return nil, err
	}

	checklists := make([]entities.ChecklistReport, 0, len(report.Checklists))
	for _, survey := range report.Checklists {
		surveyResponses := []entities.Response{}
		responseSet := make(map[uint]bool)
		for _, response := range responses {
			if response.SurveyID == survey.ID {
				surveyResponses = append(surveyResponses, response)
				responseSet[response.ID] = true
			}
		}

		surveyAnswers := []entities.Answer{}
		for _, answer := range answers {
			if responseSet[answer.ResponseID] {
				surveyAnswers = append(surveyAnswers, answer)
			}
		}

		surveyQuestions := []entities.Question{}
		for _, question := range questions {
			if question.SurveyID == survey.ID {
				surveyQuestions = append(surveyQuestions, question)
			}
		}

		// Filtro secundário: só as fotos das coletas deste checklist
		photoURLs := []string{}
		for _, attachment := range attachments {
			if responseSet[attachment.ResponseID] {
				photoURLs = append(photoURLs, u.photos.PublicURL(attachment.File))
			}
		}

		checklists = append(checklists, buildChecklistReport(survey, surveyQuestions, surveyResponses, surveyAnswers, photoURLs))
	}

	return &entities.ReportDocument{
		ID:         report.ID,
		Name:       report.Name,
		DateFrom:   report.DateFrom.Format("2006-01-02"),
		DateTo:     report.DateTo.Format("2006-01-02"),
		Checklists: checklists,
	}, nil
}
