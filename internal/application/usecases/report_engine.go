package usecases

import (
	"sort"

	"github.com/DOXOPOKC/checklists/internal/domain/entities"
)

// groupAnswersByResponse monta o índice de respostas por coleta, preservando
// a ordem de inserção da entrada. Quem precisar da ordem das perguntas deve
// reordenar por conta própria.
func groupAnswersByResponse(answers []entities.Answer) map[uint][]entities.Answer {
	index := make(map[uint][]entities.Answer, len(answers))
	for _, answer := range answers {
		index[answer.ResponseID] = append(index[answer.ResponseID], answer)
	}
	return index
}

// orderQuestions devolve uma cópia das perguntas ordenada pelo campo order
func orderQuestions(questions []entities.Question) []entities.Question {
	ordered := make([]entities.Question, len(questions))
	copy(ordered, questions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})
	return ordered
}

// splitQuestions particiona as perguntas de um checklist em regulares e
// chave, descartando perguntas de escolha por imagem. A ordem relativa da
// entrada é preservada em cada partição.
func splitQuestions(questions []entities.Question) (regular, key []entities.Question) {
	regular = []entities.Question{}
	key = []entities.Question{}
	for _, question := range questions {
		if question.Type == entities.QuestionTypeSelectImage {
			continue
		}
		if question.IsKey {
			key = append(key, question)
		} else {
			regular = append(regular, question)
		}
	}
	return regular, key
}

// answerTo procura o corpo da resposta de uma coleta à pergunta informada
func answerTo(answers []entities.Answer, questionID uint) (string, bool) {
	for _, answer := range answers {
		if answer.QuestionID == questionID {
			return answer.Body, true
		}
	}
	return "", false
}

func containsLabel(labels []string, value string) bool {
	for _, label := range labels {
		if label == value {
			return true
		}
	}
	return false
}

// matchNotes avalia uma pergunta chave contra as coletas do checklist. Quando
// o corpo da resposta coincide exatamente com um dos rótulos de disparo, emite
// uma nota com o conjunto completo de respostas daquela coleta, na ordem das
// perguntas regulares, mais uma pseudo-entrada por foto. Toda a galeria de
// fotos do checklist entra em cada nota, não apenas as fotos da coleta que
// disparou.
// Devolve também o valor escalar da pergunta chave: o corpo da primeira
// resposta encontrada, tenha ela disparado nota ou não.
func matchNotes(key entities.Question, responses []entities.Response, answersByResponse map[uint][]entities.Answer, regular []entities.Question, photoURLs []string) ([]entities.Note, string) {
	triggers := key.TriggerChoices()

	notes := []entities.Note{}
	var keyAnswer string
	answered := false

	for _, response := range responses {
		body, ok := answerTo(answersByResponse[response.ID], key.ID)
		if !ok {
			// coleta que nunca respondeu a pergunta chave não dispara nota
			continue
		}
		if !answered {
			keyAnswer = body
			answered = true
		}

		if !containsLabel(triggers, body) {
			continue
		}

		keys := make([]entities.NoteKey, 0, len(regular)+len(photoURLs))
		for _, question := range regular {
			if answerBody, ok := answerTo(answersByResponse[response.ID], question.ID); ok {
				keys = append(keys, entities.NoteKey{Name: question.Text, Answer: answerBody})
			}
		}
		for _, url := range photoURLs {
			keys = append(keys, entities.NoteKey{Name: "image", Keys: url})
		}

		notes = append(notes, entities.Note{Created: response.CreatedAt, Keys: keys})
	}

	return notes, keyAnswer
}

// buildChecklistReport monta a entrada do relatório para um checklist. As
// linhas de saída são exatamente as perguntas regulares; as notas são geradas
// percorrendo as perguntas chave e anexadas a cada linha regular, junto com o
// valor escalar da primeira pergunta chave respondida.
func buildChecklistReport(survey entities.Survey, questions []entities.Question, responses []entities.Response, answers []entities.Answer, photoURLs []string) entities.ChecklistReport {
	ordered := orderQuestions(questions)
	regular, keyQuestions := splitQuestions(ordered)
	answersByResponse := groupAnswersByResponse(answers)

	notes := []entities.Note{}
	var answer string
	for _, key := range keyQuestions {
		keyNotes, keyAnswer := matchNotes(key, responses, answersByResponse, regular, photoURLs)
		notes = append(notes, keyNotes...)
		if answer == "" && keyAnswer != "" {
			answer = keyAnswer
		}
	}

	rows := make([]entities.QuestionReport, 0, len(regular))
	for _, question := range regular {
		rows = append(rows, entities.QuestionReport{
			ID:         question.ID,
			Text:       question.Text,
			Order:      question.Order,
			Choices:    question.ChoiceList(),
			KeyChoices: question.TriggerChoices(),
			Notes:      notes,
			Answer:     answer,
		})
	}

	return entities.ChecklistReport{
		ID:        survey.ID,
		Name:      survey.Name,
		Questions: rows,
	}
}
