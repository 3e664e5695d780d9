package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestionLabelLists(t *testing.T) {
	t.Parallel()

	t.Run("campos vazios viram listas vazias, não [\"\"]", func(t *testing.T) {
		t.Parallel()
		q := Question{}
		assert.Empty(t, q.ChoiceList())
		assert.Empty(t, q.TriggerChoices())
	})

	t.Run("rótulos são separados por ponto e vírgula sem normalização", func(t *testing.T) {
		t.Parallel()
		q := Question{Choices: "Sim;Não", KeyChoices: "Não; Talvez"}
		assert.Equal(t, []string{"Sim", "Não"}, q.ChoiceList())
		assert.Equal(t, []string{"Não", " Talvez"}, q.TriggerChoices())
	})
}
