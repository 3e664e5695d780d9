package usecases

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DOXOPOKC/checklists/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t1 = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)
	t2 = time.Date(2024, 5, 11, 14, 0, 0, 0, time.UTC)
)

// inspectionChecklist monta o cenário base: Q1 regular (ordem 1) e Q2 chave
// (ordem 2, disparo "Yes"), com duas coletas — R1 responde "Yes" à pergunta
// chave, R2 responde "No"
func inspectionChecklist() (entities.Survey, []entities.Question, []entities.Response, []entities.Answer) {
	survey := entities.Survey{ID: 1, Name: "Inspeção de loja"}
	questions := []entities.Question{
		{ID: 10, SurveyID: 1, Text: "Qual a cor da fachada?", Order: 1, Type: entities.QuestionTypeText},
		{ID: 20, SurveyID: 1, Text: "A loja estava aberta?", Order: 2, Type: entities.QuestionTypeRadio, Choices: "Yes;No", KeyChoices: "Yes", IsKey: true},
	}
	responses := []entities.Response{
		{ID: 100, SurveyID: 1, CreatedAt: t1},
		{ID: 200, SurveyID: 1, CreatedAt: t2},
	}
	answers := []entities.Answer{
		{ID: 1, ResponseID: 100, QuestionID: 10, Body: "red"},
		{ID: 2, ResponseID: 100, QuestionID: 20, Body: "Yes"},
		{ID: 3, ResponseID: 200, QuestionID: 10, Body: "blue"},
		{ID: 4, ResponseID: 200, QuestionID: 20, Body: "No"},
	}
	return survey, questions, responses, answers
}

func TestGroupAnswersByResponse(t *testing.T) {
	t.Parallel()

	t.Run("entrada vazia produz índice vazio", func(t *testing.T) {
		t.Parallel()
		index := groupAnswersByResponse(nil)
		assert.Empty(t, index)
	})

	t.Run("preserva a ordem de inserção dentro de cada coleta", func(t *testing.T) {
		t.Parallel()
		answers := []entities.Answer{
			{ID: 1, ResponseID: 100, QuestionID: 20, Body: "b"},
			{ID: 2, ResponseID: 200, QuestionID: 10, Body: "c"},
			{ID: 3, ResponseID: 100, QuestionID: 10, Body: "a"},
		}
		index := groupAnswersByResponse(answers)
		require.Len(t, index, 2)
		require.Len(t, index[100], 2)
		assert.Equal(t, uint(20), index[100][0].QuestionID)
		assert.Equal(t, uint(10), index[100][1].QuestionID)
		assert.Len(t, index[200], 1)
	})
}

func TestSplitQuestions(t *testing.T) {
	t.Parallel()

	questions := []entities.Question{
		{ID: 1, Text: "a", Order: 1},
		{ID: 2, Text: "b", Order: 2, KeyChoices: "Sim", IsKey: true},
		{ID: 3, Text: "c", Order: 3, Type: entities.QuestionTypeSelectImage},
		{ID: 4, Text: "d", Order: 4},
		{ID: 5, Text: "e", Order: 5, KeyChoices: "Não;Talvez", IsKey: true},
	}

	regular, key := splitQuestions(questions)

	t.Run("perguntas de imagem ficam de fora das duas partições", func(t *testing.T) {
		t.Parallel()
		for _, q := range append(append([]entities.Question{}, regular...), key...) {
			assert.NotEqual(t, entities.QuestionTypeSelectImage, q.Type)
		}
	})

	t.Run("partições cobrem todas as perguntas sem sobreposição", func(t *testing.T) {
		t.Parallel()
		assert.Len(t, regular, 2)
		assert.Len(t, key, 2)

		seen := map[uint]bool{}
		for _, q := range append(append([]entities.Question{}, regular...), key...) {
			assert.False(t, seen[q.ID], "pergunta %d em mais de uma partição", q.ID)
			seen[q.ID] = true
		}
	})

	t.Run("ordem relativa da entrada é preservada", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, uint(1), regular[0].ID)
		assert.Equal(t, uint(4), regular[1].ID)
		assert.Equal(t, uint(2), key[0].ID)
		assert.Equal(t, uint(5), key[1].ID)
	})

	t.Run("checklist sem pergunta chave produz partição chave vazia", func(t *testing.T) {
		t.Parallel()
		regularOnly, keyEmpty := splitQuestions([]entities.Question{{ID: 1, Order: 1}})
		assert.Len(t, regularOnly, 1)
		assert.Empty(t, keyEmpty)
	})
}

func TestMatchNotes(t *testing.T) {
	t.Parallel()

	t.Run("cenário base: só a coleta que respondeu Yes dispara nota", func(t *testing.T) {
		t.Parallel()
		_, questions, responses, answers := inspectionChecklist()
		regular, key := splitQuestions(questions)
		index := groupAnswersByResponse(answers)

		notes, answer := matchNotes(key[0], responses, index, regular, nil)

		require.Len(t, notes, 1)
		assert.Equal(t, t1, notes[0].Created)
		require.Len(t, notes[0].Keys, 1)
		assert.Equal(t, "Qual a cor da fachada?", notes[0].Keys[0].Name)
		assert.Equal(t, "red", notes[0].Keys[0].Answer)

		// valor escalar vem da primeira coleta que respondeu a pergunta chave
		assert.Equal(t, "Yes", answer)
	})

	t.Run("múltiplos rótulos de disparo", func(t *testing.T) {
		t.Parallel()
		_, questions, responses, answers := inspectionChecklist()
		questions[1].KeyChoices = "Yes;Maybe"
		answers[3].Body = "Maybe"
		regular, key := splitQuestions(questions)
		index := groupAnswersByResponse(answers)

		notes, _ := matchNotes(key[0], responses, index, regular, nil)

		require.Len(t, notes, 2)
		assert.Equal(t, t1, notes[0].Created)
		assert.Equal(t, t2, notes[1].Created)
	})

	t.Run("comparação é exata, sem normalização de espaços", func(t *testing.T) {
		t.Parallel()
		_, questions, responses, answers := inspectionChecklist()
		questions[1].KeyChoices = "Yes ;Maybe"
		regular, key := splitQuestions(questions)
		index := groupAnswersByResponse(answers)

		notes, _ := matchNotes(key[0], responses, index, regular, nil)
		assert.Empty(t, notes, `"Yes" não coincide com o rótulo "Yes "`)
	})

	t.Run("coleta sem resposta à pergunta chave não dispara nota", func(t *testing.T) {
		t.Parallel()
		_, questions, responses, answers := inspectionChecklist()
		// R1 deixa de responder a pergunta chave
		answers = append(answers[:1], answers[2:]...)
		regular, key := splitQuestions(questions)
		index := groupAnswersByResponse(answers)

		notes, answer := matchNotes(key[0], responses, index, regular, nil)

		assert.Empty(t, notes)
		// o escalar passa a vir de R2, a primeira coleta com resposta
		assert.Equal(t, "No", answer)
	})

	t.Run("conjunto de disparo vazio nunca produz nota", func(t *testing.T) {
		t.Parallel()
		_, questions, responses, answers := inspectionChecklist()
		questions[1].KeyChoices = ""
		regular := questions[:1]
		index := groupAnswersByResponse(answers)

		notes, _ := matchNotes(questions[1], responses, index, regular, nil)
		assert.Empty(t, notes)
	})

	t.Run("pergunta regular não respondida fica fora da nota", func(t *testing.T) {
		t.Parallel()
		_, questions, responses, answers := inspectionChecklist()
		questions = append(questions, entities.Question{ID: 30, SurveyID: 1, Text: "Observações?", Order: 3, Type: entities.QuestionTypeText})
		regular, key := splitQuestions(questions)
		index := groupAnswersByResponse(answers)

		notes, _ := matchNotes(key[0], responses, index, regular, nil)

		require.Len(t, notes, 1)
		require.Len(t, notes[0].Keys, 1, "só a pergunta respondida entra na nota")
		assert.Equal(t, "Qual a cor da fachada?", notes[0].Keys[0].Name)
	})

	t.Run("toda a galeria de fotos entra em cada nota", func(t *testing.T) {
		t.Parallel()
		_, questions, responses, answers := inspectionChecklist()
		questions[1].KeyChoices = "Yes;No" // as duas coletas disparam
		regular, key := splitQuestions(questions)
		index := groupAnswersByResponse(answers)
		photos := []string{"https://cdn.test/a.jpg", "https://cdn.test/b.jpg"}

		notes, _ := matchNotes(key[0], responses, index, regular, photos)

		require.Len(t, notes, 2)
		for _, note := range notes {
			require.Len(t, note.Keys, 3)
			assert.Equal(t, "image", note.Keys[1].Name)
			assert.Equal(t, "https://cdn.test/a.jpg", note.Keys[1].Keys)
			assert.Equal(t, "image", note.Keys[2].Name)
			assert.Equal(t, "https://cdn.test/b.jpg", note.Keys[2].Keys)
		}
	})

	t.Run("notas nunca excedem o número de coletas e todo disparo pertence ao conjunto", func(t *testing.T) {
		t.Parallel()
		_, questions, responses, answers := inspectionChecklist()
		regular, key := splitQuestions(questions)
		index := groupAnswersByResponse(answers)

		notes, _ := matchNotes(key[0], responses, index, regular, nil)

		assert.LessOrEqual(t, len(notes), len(responses))
		triggers := key[0].TriggerChoices()
		for _, note := range notes {
			for _, response := range responses {
				if response.CreatedAt.Equal(note.Created) {
					body, ok := answerTo(index[response.ID], key[0].ID)
					require.True(t, ok)
					assert.Contains(t, triggers, body)
				}
			}
		}
	})
}

func TestBuildChecklistReport(t *testing.T) {
	t.Parallel()

	t.Run("linhas de saída são as perguntas regulares em ordem de exibição", func(t *testing.T) {
		t.Parallel()
		survey, questions, responses, answers := inspectionChecklist()
		questions = append(questions, entities.Question{ID: 5, SurveyID: 1, Text: "Data da visita?", Order: 0, Type: entities.QuestionTypeText})

		report := buildChecklistReport(survey, questions, responses, answers, nil)

		assert.Equal(t, survey.ID, report.ID)
		assert.Equal(t, survey.Name, report.Name)
		require.Len(t, report.Questions, 2, "a pergunta chave não vira linha")
		assert.Equal(t, uint(5), report.Questions[0].ID)
		assert.Equal(t, uint(10), report.Questions[1].ID)
	})

	t.Run("cenário base completo", func(t *testing.T) {
		t.Parallel()
		survey, questions, responses, answers := inspectionChecklist()

		report := buildChecklistReport(survey, questions, responses, answers, nil)

		require.Len(t, report.Questions, 1)
		row := report.Questions[0]
		assert.Equal(t, "Qual a cor da fachada?", row.Text)
		assert.Equal(t, "Yes", row.Answer)
		require.Len(t, row.Notes, 1)
		assert.Equal(t, t1, row.Notes[0].Created)
		require.Len(t, row.Notes[0].Keys, 1)
		assert.Equal(t, "red", row.Notes[0].Keys[0].Answer)
	})

	t.Run("notas de todas as perguntas chave aparecem em cada linha regular", func(t *testing.T) {
		t.Parallel()
		survey, questions, responses, answers := inspectionChecklist()
		questions = append(questions, entities.Question{ID: 30, SurveyID: 1, Text: "Havia fila?", Order: 3, Type: entities.QuestionTypeRadio, Choices: "Sim;Não", KeyChoices: "Sim", IsKey: true})
		answers = append(answers, entities.Answer{ID: 5, ResponseID: 200, QuestionID: 30, Body: "Sim"})

		report := buildChecklistReport(survey, questions, responses, answers, nil)

		require.Len(t, report.Questions, 1)
		require.Len(t, report.Questions[0].Notes, 2)
		assert.Equal(t, t1, report.Questions[0].Notes[0].Created)
		assert.Equal(t, t2, report.Questions[0].Notes[1].Created)
	})

	t.Run("checklist sem pergunta chave produz linhas sem notas", func(t *testing.T) {
		t.Parallel()
		survey, questions, responses, answers := inspectionChecklist()
		questions[1].KeyChoices = ""
		questions[1].IsKey = false

		report := buildChecklistReport(survey, questions, responses, answers, nil)

		require.Len(t, report.Questions, 2)
		for _, row := range report.Questions {
			assert.Empty(t, row.Notes)
			assert.Empty(t, row.Answer)
		}
	})

	t.Run("choices e key_choices saem como listas de rótulos", func(t *testing.T) {
		t.Parallel()
		survey, questions, responses, answers := inspectionChecklist()
		questions[0].Choices = "red;blue"

		report := buildChecklistReport(survey, questions, responses, answers, nil)

		require.Len(t, report.Questions, 1)
		assert.Equal(t, []string{"red", "blue"}, report.Questions[0].Choices)
		assert.Equal(t, []string{}, report.Questions[0].KeyChoices)
	})

	t.Run("mesma entrada produz saída byte a byte idêntica", func(t *testing.T) {
		t.Parallel()
		survey, questions, responses, answers := inspectionChecklist()
		photos := []string{"https://cdn.test/a.jpg"}

		first := buildChecklistReport(survey, questions, responses, answers, photos)
		second := buildChecklistReport(survey, questions, responses, answers, photos)

		require.Equal(t, first, second)

		firstJSON, err := json.Marshal(first)
		require.NoError(t, err)
		secondJSON, err := json.Marshal(second)
		require.NoError(t, err)
		assert.Equal(t, firstJSON, secondJSON)
	})
}
