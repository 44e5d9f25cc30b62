package outputs

import (
	"time"

	"github.com/google/uuid"
	"github.com/reusee/literate/weaves"
)

type Manifest struct {
	ID          string    `yaml:"id"`
	Run         string    `yaml:"run,omitempty"`
	Source      string    `yaml:"source"`
	Argv        []string  `yaml:"argv,omitempty"`
	Created     time.Time `yaml:"created"`
	Markdown    string    `yaml:"markdown"`
	HTML        string    `yaml:"html,omitempty"`
	Figures     []string  `yaml:"figures,omitempty"`
	Groups      int       `yaml:"groups"`
	Executed    int       `yaml:"executed"`
	Failed      int       `yaml:"failed,omitempty"`
	Warnings    int       `yaml:"warnings,omitempty"`
	Interrupted *int      `yaml:"interrupted_at,omitempty"`
}

func newManifest(woven *weaves.Woven, base string, opts WriteOptions) *Manifest {
	m := &Manifest{
		ID:       uuid.NewString(),
		Run:      string(woven.Run),
		Source:   woven.Name,
		Argv:     woven.Argv,
		Created:  time.Now().UTC().Truncate(time.Second),
		Markdown: base + ".md",
		Groups:   woven.Summary.Groups,
		Executed: woven.Summary.Executed,
		Failed:   woven.Summary.Failed,
		Warnings: woven.Document.Stats.Warnings,
	}
	if opts.HTML {
		m.HTML = base + ".html"
	}
	for _, fig := range woven.Document.Figures {
		m.Figures = append(m.Figures, fig.Name)
	}
	if woven.Summary.Interrupted {
		at := woven.Summary.InterruptedAt
		m.Interrupted = &at
	}
	return m
}
