package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aalvaropc/multirange/internal/domain"
	"github.com/aalvaropc/multirange/internal/ports"
	"github.com/aalvaropc/multirange/internal/slider"
	ucassert "github.com/aalvaropc/multirange/internal/usecase/assert"
)

// EditResult records what one scripted edit did to the store.
type EditResult struct {
	Index   int           `json:"index" yaml:"index"`
	Op      domain.EditOp `json:"op" yaml:"op"`
	ID      string        `json:"id,omitempty" yaml:"id,omitempty"`
	Applied bool          `json:"applied" yaml:"applied"`
	Error   string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// ApplyResult is the outcome of a replayed edit script.
type ApplyResult struct {
	Script  string                     `json:"script" yaml:"script"`
	Edits   []EditResult               `json:"edits" yaml:"edits"`
	Final   domain.Snapshot            `json:"final" yaml:"final"`
	Changes int                        `json:"changes" yaml:"changes"`
	Expect  []domain.ExpectationResult `json:"expect,omitempty" yaml:"expect,omitempty"`
}

// Failed counts the expectations that did not hold.
func (r ApplyResult) Failed() int {
	return ucassert.Failed(r.Expect)
}

type ApplyEdits struct {
	open  *OpenSlider
	edits ports.EditScriptLoader
	log   *slog.Logger
}

type ApplyOption func(*ApplyEdits)

func WithApplyLogger(l *slog.Logger) ApplyOption {
	return func(uc *ApplyEdits) {
		if l != nil {
			uc.log = l
		}
	}
}

func NewApplyEdits(sl ports.SliderLoader, el ports.EditScriptLoader, opts ...ApplyOption) *ApplyEdits {
	uc := &ApplyEdits{
		edits: el,
		log:   slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(uc)
	}
	uc.open = NewOpenSlider(sl, slider.WithLogger(uc.log))
	return uc
}

// Execute builds a store from configPath and replays the script at editsPath
// against it. onChange, when set, receives every per-interval notification.
func (uc *ApplyEdits) Execute(ctx context.Context, configPath, editsPath string, onChange slider.ChangeListener) (ApplyResult, error) {
	s, _, err := uc.open.Execute(configPath)
	if err != nil {
		return ApplyResult{}, err
	}

	script, err := uc.edits.LoadEdits(editsPath)
	if err != nil {
		return ApplyResult{}, err
	}

	changes := 0
	sub := s.OnChange(func(c slider.Change) {
		changes++
		if onChange != nil {
			onChange(c)
		}
	})
	defer sub.Unsubscribe()

	results, err := Replay(ctx, s, script)
	if err != nil {
		return ApplyResult{}, err
	}

	res := ApplyResult{
		Script:  script.Name,
		Edits:   results,
		Final:   BuildSnapshot(s, slider.ViewWorking),
		Changes: changes,
	}
	res.Expect = ucassert.Evaluate(script.Expect, res.Final)

	uc.log.Info("apply.done",
		"script", script.Name,
		"edits", len(results),
		"changes", changes,
		"expect_failed", res.Failed(),
	)
	return res, nil
}

// Replay runs every edit of script against s in order. Edits the store
// refuses are reported and the replay continues; only a cancelled ctx stops it.
func Replay(ctx context.Context, s *slider.Store, script domain.EditScript) ([]EditResult, error) {
	tr := s.Transformer()
	out := make([]EditResult, 0, len(script.Edits))

	for i, e := range script.Edits {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		r := EditResult{Index: i, Op: e.Op, ID: e.ID}

		switch e.Op {
		case domain.EditUpdate:
			r.Applied = s.SetEdge(e.ID, e.Edge, tr.ToBase(e.Value))

		case domain.EditAdd:
			iv, err := s.Add(domain.PartialInterval{ID: e.ID, Start: e.Start, End: e.End})
			if err != nil {
				r.Error = err.Error()
			} else {
				r.ID = iv.ID
				r.Applied = true
			}

		case domain.EditDelete:
			r.Applied = s.Delete(e.ID)

		case domain.EditReplace:
			s.ReplaceAll(e.Intervals, e.ResetBaseline)
			r.Applied = true

		case domain.EditReset:
			s.Reset()
			r.Applied = true

		default:
			r.Error = fmt.Sprintf("unsupported op %q", e.Op)
		}

		out = append(out, r)
	}
	return out, nil
}
