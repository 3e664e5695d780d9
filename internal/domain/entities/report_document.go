package entities

import (
	"time"
)

// ReportDocument representa o documento agregado montado para um relatório:
// uma entrada por checklist referenciado, com as coletas do intervalo de
// datas reorganizadas em notas por pergunta.
type ReportDocument struct {
	ID         uint              `json:"id"`
	Name       string            `json:"name"`
	DateFrom   string            `json:"date_from"`
	DateTo     string            `json:"date_to"`
	Checklists []ChecklistReport `json:"checklists"`
}

// ChecklistReport contém o recorte do relatório para um único checklist
type ChecklistReport struct {
	ID        uint             `json:"id"`
	Name      string           `json:"name"`
	Questions []QuestionReport `json:"questions"`
}

// QuestionReport é uma linha do relatório: uma pergunta regular do checklist
// anotada com as notas disparadas pelas perguntas chave do mesmo checklist
type QuestionReport struct {
	ID         uint     `json:"id"`
	Text       string   `json:"text"`
	Order      int      `json:"order"`
	Choices    []string `json:"choices"`
	KeyChoices []string `json:"key_choices"`
	Notes      []Note   `json:"notes"`
	Answer     string   `json:"answer"`
}

// Note agrupa o conjunto completo de respostas de uma coleta cujo corpo de
// resposta a uma pergunta chave coincidiu com um dos rótulos de disparo
type Note struct {
	Created time.Time `json:"created"`
	Keys    []NoteKey `json:"keys"`
}

// NoteKey é um item de uma nota: um par {pergunta, resposta} ou, para fotos,
// uma pseudo-entrada {name: "image", keys: <url>}
type NoteKey struct {
	Name   string `json:"name"`
	Answer string `json:"answer,omitempty"`
	Keys   string `json:"keys,omitempty"`
}
