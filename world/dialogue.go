package world

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"

	"github.com/lixenwraith/duckling/core"
)

// remarkTemplates map mood names to candidate remark templates. The
// sprig func map supplies the string helpers.
var remarkTemplates = map[string][]string{
	"happy": {
		`{{ .Name }} does a little tail wiggle. Life is good by the {{ .Weather }} pond.`,
		`{{ .Name | upper }}! QUACK! (That was a happy quack.)`,
	},
	"content": {
		`{{ .Name }} preens {{ if eq .Weather "rain" }}in the drizzle{{ else }}lazily{{ end }}.`,
		`{{ .Name }} floats in a slow circle, thinking duck thoughts.`,
	},
	"grumpy": {
		`{{ .Name }} gives you a flat look. Something is lacking.`,
		`A terse quack from {{ .Name }}. The {{ .Weather }} weather isn't helping.`,
	},
	"miserable": {
		`{{ .Name }} lets out a long, sad quack. Please help.`,
		`{{ .Name | title }} has tucked their head under a wing and won't come out.`,
	},
}

// remarkContext is the data passed to remark templates
type remarkContext struct {
	Name    string
	Weather string
}

// Dialogue generates duck remarks from mood- and weather-keyed
// templates on the slow cadence
type Dialogue struct {
	rng *rand.Rand

	// mood and weather are polled from the duck and weather collaborators
	mood    func() string
	weather func() string
	name    func() string

	// chance per check window, out of 100
	chance int

	remarks   int
	templates map[string][]*template.Template
}

// NewDialogue creates the remark generator; templates are parsed once
func NewDialogue(rng *rand.Rand, name, mood, weather func() string) (*Dialogue, error) {
	d := &Dialogue{
		rng:       rng,
		name:      name,
		mood:      mood,
		weather:   weather,
		chance:    35,
		templates: make(map[string][]*template.Template),
	}

	funcs := sprig.TxtFuncMap()
	for moodName, sources := range remarkTemplates {
		for i, src := range sources {
			tmpl, err := template.New(fmt.Sprintf("%s_%d", moodName, i)).Funcs(funcs).Parse(src)
			if err != nil {
				return nil, fmt.Errorf("parsing remark template %s/%d: %w", moodName, i, err)
			}
			d.templates[moodName] = append(d.templates[moodName], tmpl)
		}
	}
	return d, nil
}

// RemarkCount returns lifetime remarks made
func (d *Dialogue) RemarkCount() int { return d.remarks }

// Name implements the collaborator contract
func (d *Dialogue) Name() string { return "dialogue" }

// Update occasionally emits a remark for the current mood
func (d *Dialogue) Update(now time.Time, delta time.Duration) []core.Message {
	if d.rng.Intn(100) >= d.chance {
		return nil
	}
	text, err := d.Remark()
	if err != nil || text == "" {
		return nil
	}
	return []core.Message{core.Info(text)}
}

// Remark renders one remark for the current mood and weather
func (d *Dialogue) Remark() (string, error) {
	candidates := d.templates[d.mood()]
	if len(candidates) == 0 {
		return "", nil
	}
	tmpl := candidates[d.rng.Intn(len(candidates))]

	var sb strings.Builder
	err := tmpl.Execute(&sb, remarkContext{
		Name:    d.name(),
		Weather: d.weather(),
	})
	if err != nil {
		return "", fmt.Errorf("rendering remark: %w", err)
	}
	d.remarks++
	return sb.String(), nil
}

type dialogueSnapshot struct {
	Remarks int `json:"remarks"`
}

// Serialize implements the collaborator contract
func (d *Dialogue) Serialize() ([]byte, error) {
	return json.Marshal(dialogueSnapshot{Remarks: d.remarks})
}

// Deserialize implements the collaborator contract
func (d *Dialogue) Deserialize(data []byte) error {
	var snap dialogueSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decoding dialogue state: %w", err)
	}
	d.remarks = snap.Remarks
	return nil
}
