package entities

import (
	"time"
)

// Report representa a definição de um relatório agregado: um nome, um
// intervalo de datas inclusivo e o conjunto de checklists cobertos. Depois de
// criado o relatório nunca é mutado pelo caminho de agregação, que é somente
// leitura sobre o snapshot das entidades referenciadas.
type Report struct {
	ID        uint      `json:"id" gorm:"primaryKey;column:id"`
	Name      string    `json:"name" gorm:"column:name"`
	DateFrom  time.Time `json:"date_from" gorm:"column:date_from;type:date"`
	DateTo    time.Time `json:"date_to" gorm:"column:date_to;type:date"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`

	// Relações
	Checklists []Survey `json:"checklists,omitempty" gorm:"many2many:report_checklists"`
}
