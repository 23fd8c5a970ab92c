// Package export renders a block registry snapshot into the legacy raw dump
// files: the id mapping, the per-variant block dump and, for versions that
// have them, the hidden states.
package export

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/OCharnyshevich/blockdump/internal/registry"
)

// Stages at which a unit of work can be skipped.
const (
	StageSubItems = "sub-items"
	StageMeta     = "meta"
)

// Skip records one unit of the registry that was left out or degraded.
// Meta is -1 for block-level skips.
type Skip struct {
	BlockID int
	Block   string
	Meta    int
	Stage   string
	Reason  string
}

type Report struct {
	Version    string
	Blocks     int
	Variants   int
	IDMappings int
	Hidden     int
	Skips      []Skip
}

// Result holds the rendered entries of one export run.
type Result struct {
	Profile    Profile
	IDMappings []string
	Variants   []string
	Hidden     []string
	Report     Report
}

type Exporter struct {
	profile Profile
	lit     literal
	log     *slog.Logger
}

type Option func(*Exporter)

func WithLogger(log *slog.Logger) Option {
	return func(e *Exporter) { e.log = log }
}

// WithStrictJSON escapes string values so every artifact is valid JSON.
func WithStrictJSON(strict bool) Option {
	return func(e *Exporter) { e.lit.strict = strict }
}

func New(p Profile, opts ...Option) *Exporter {
	e := &Exporter{
		profile: p,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export walks every block of snap in order. Failures are confined to the
// block or meta that caused them and recorded in the report.
func (e *Exporter) Export(snap *registry.Snapshot) *Result {
	models := snap.ModelLookup()
	res := &Result{
		Profile: e.profile,
		Report:  Report{Version: e.profile.Version},
	}

	for i := range snap.Blocks {
		e.exportBlock(&snap.Blocks[i], models, res)
	}

	res.Report.Variants = len(res.Variants)
	res.Report.IDMappings = len(res.IDMappings)
	res.Report.Hidden = len(res.Hidden)
	return res
}

func (e *Exporter) exportBlock(b *registry.Block, models map[string]registry.ResourceModel, res *Result) {
	l := e.lit
	res.Report.Blocks++
	base := e.profile.BlockAttrs(l, b)

	subItems, err := b.SubItemsByMeta()
	if err != nil {
		e.log.Warn("failed to get sub-items", "block", b.Name, "error", err)
		res.skip(b, -1, StageSubItems, err)
		subItems = nil
	}

	defaultMeta := b.MetaFromState(b.DefaultState)
	seen := make(map[string]bool, registry.MetaCount)

	for meta := 0; meta < registry.MetaCount; meta++ {
		state, err := b.StateFromMeta(meta)
		if err != nil {
			e.log.Warn("failed to get meta", "block", b.Name, "meta", meta, "error", err)
			res.skip(b, meta, StageMeta, err)
			continue
		}
		if seen[state.Name] {
			continue
		}
		seen[state.Name] = true

		res.IDMappings = append(res.IDMappings, fmt.Sprintf("[%d, %d, %s]", b.ID, meta, l.str(state.Name)))

		a := base.clone()
		if meta == defaultMeta {
			a = a.add("defaultState", "1")
		}
		a = a.add("materialMapColor", l.integer(state.MapColor))
		a = a.add("blockState", l.str(state.Name))
		a = a.add("renderType", l.integer(e.profile.StateRenderType(b, state)))
		if m, ok := models[state.Name]; ok {
			a = a.add("resourcePath", l.str(m.Path))
			a = a.add("resourceVariant", l.str(m.Variant))
		}

		// Blocks are not always localized themselves; the item stack carries
		// the name players see.
		if stack, ok := subItems[meta]; ok {
			a = a.add("unlocalizedName", l.str(stack.UnlocalizedName))
			a = a.add("displayName", l.str(stack.DisplayName))
		} else {
			a = a.add("unlocalizedName", l.str(b.UnlocalizedName))
			a = a.add("displayName", l.str(b.LocalizedName))
		}

		res.Variants = append(res.Variants, a.render())
	}

	if e.profile.HiddenFile == "" {
		return
	}
	for _, s := range b.States {
		if seen[s.Name] {
			continue
		}
		m, ok := models[s.Name]
		if !ok {
			continue
		}
		res.Hidden = append(res.Hidden, fmt.Sprintf(`{"blockState":%s, "resourcePath": %s, "resourceVariant": %s}`,
			l.str(s.Name), l.str(m.Path), l.str(m.Variant)))
	}
}

func (r *Result) skip(b *registry.Block, meta int, stage string, err error) {
	r.Report.Skips = append(r.Report.Skips, Skip{
		BlockID: b.ID,
		Block:   b.Name,
		Meta:    meta,
		Stage:   stage,
		Reason:  err.Error(),
	})
}
