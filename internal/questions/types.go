package questions

// Keyed is the scoring direction of an item.
type Keyed string

const (
	KeyedPlus  Keyed = "plus"
	KeyedMinus Keyed = "minus"
)

// Choice is one selectable response to a question.
type Choice struct {
	Text  string `json:"text" yaml:"text"`
	Score int    `json:"score" yaml:"score"`
	Color int    `json:"color" yaml:"color"`
}

// Question is a single inventory item. Questions are immutable once loaded.
type Question struct {
	ID      string   `json:"id" yaml:"id"`
	Text    string   `json:"text" yaml:"text"`
	Keyed   Keyed    `json:"keyed" yaml:"keyed"`
	Domain  string   `json:"domain" yaml:"domain"`
	Facet   int      `json:"facet" yaml:"facet"`
	Choices []Choice `json:"choices,omitempty" yaml:"choices,omitempty"`
	Num     int      `json:"num" yaml:"num"`
}

// Bank is an ordered question set for one test.
type Bank struct {
	ID        string     `json:"id" yaml:"id"`
	Version   string     `json:"version" yaml:"version"`
	Lang      string     `json:"lang" yaml:"lang"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// ByID returns the question with the given id.
func (b *Bank) ByID(id string) (Question, bool) {
	for _, q := range b.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

var choiceLabels = []string{
	"Very Inaccurate",
	"Moderately Inaccurate",
	"Neither Accurate Nor Inaccurate",
	"Moderately Accurate",
	"Very Accurate",
}

// DefaultChoices returns the five-point response scale for an item keyed
// in the given direction. Minus-keyed items score in reverse.
func DefaultChoices(k Keyed) []Choice {
	choices := make([]Choice, len(choiceLabels))
	for i, label := range choiceLabels {
		score := i + 1
		if k == KeyedMinus {
			score = len(choiceLabels) - i
		}
		choices[i] = Choice{Text: label, Score: score, Color: i + 1}
	}
	return choices
}
