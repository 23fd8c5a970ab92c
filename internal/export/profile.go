package export

import (
	"errors"
	"fmt"
	"sort"

	"github.com/OCharnyshevich/blockdump/internal/registry"
)

var ErrUnknownVersion = errors.New("unknown version")

// Profile describes the dump layout expected for one game version.
type Profile struct {
	Version       string
	IDMappingFile string
	BlocksFile    string
	// HiddenFile is empty for versions that do not list hidden states.
	HiddenFile string

	// BlockAttrs renders the attributes shared by every variant of a block.
	BlockAttrs func(l literal, b *registry.Block) attrs
	// StateRenderType picks the renderType written for one state.
	StateRenderType func(b *registry.Block, s registry.State) int
}

var profiles = map[string]Profile{}

func Register(p Profile) {
	profiles[p.Version] = p
}

func Lookup(version string) (Profile, error) {
	p, ok := profiles[version]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s", ErrUnknownVersion, version)
	}
	return p, nil
}

// RegisteredVersions lists the known versions in sorted order.
func RegisteredVersions() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(Profile{
		Version:       "1.8",
		IDMappingFile: "idmapping_raw.json",
		BlocksFile:    "minecraft_raw.json",
		BlockAttrs:    blockAttrs18,
		StateRenderType: func(b *registry.Block, _ registry.State) int {
			return b.RenderType
		},
	})

	Register(Profile{
		Version:       "1.11",
		IDMappingFile: "idmapping_raw_1_11.json",
		BlocksFile:    "minecraft_raw_1_11.json",
		HiddenFile:    "hiddenstates_1_11.json",
		BlockAttrs:    blockAttrs111,
		StateRenderType: func(_ *registry.Block, s registry.State) int {
			return s.RenderType
		},
	})
}

func blockAttrs18(l literal, b *registry.Block) attrs {
	var a attrs
	a = a.add("internalName", l.str(b.Name))
	a = a.add("color", l.integer(b.Color))
	if b.CreativeTab != "" {
		a = a.add("creativeTab", l.str(b.CreativeTab))
	}

	m := b.Material
	a = a.add("materialBlocksMovement", l.boolean(m.BlocksMovement))
	a = a.add("materialBurns", l.boolean(m.Burns))
	a = a.add("materialMobility", l.enum(m.Mobility))
	a = a.add("materialLiquid", l.boolean(m.Liquid))
	a = a.add("materialOpaque", l.boolean(m.Opaque))
	a = a.add("materialReplacable", l.boolean(m.Replaceable))
	a = a.add("materialSolid", l.boolean(m.Solid))

	a = a.add("opaqueCube", l.boolean(b.OpaqueCube))
	a = a.add("collidable", l.boolean(b.Collidable))
	a = a.add("hasEntity", l.boolean(b.HasEntity))
	a = a.add("opacity", l.integer(b.Opacity))
	a = a.add("brightness", l.integer(b.Brightness))
	a = a.add("useNeighborBrightness", l.boolean(b.UseNeighborBrightness))
	a = a.add("renderType", l.integer(b.RenderType))

	bb := b.Bounds
	a = a.add("minx", l.float(bb.MinX))
	a = a.add("miny", l.float(bb.MinY))
	a = a.add("minz", l.float(bb.MinZ))
	a = a.add("maxx", l.float(bb.MaxX))
	a = a.add("maxy", l.float(bb.MaxY))
	a = a.add("maxz", l.float(bb.MaxZ))
	return a
}

func blockAttrs111(l literal, b *registry.Block) attrs {
	var a attrs
	a = a.add("internalName", l.str(b.Name))
	if b.CreativeTab != "" {
		a = a.add("creativeTab", l.str(b.CreativeTab))
	}
	a = a.add("opaqueCube", l.boolean(b.OpaqueCube))
	a = a.add("collidable", l.boolean(b.Collidable))
	a = a.add("hasEntity", l.boolean(b.HasEntity))
	a = a.add("opacity", l.integer(b.Opacity))
	a = a.add("brightness", l.integer(b.Brightness))
	a = a.add("useNeighborBrightness", l.boolean(b.UseNeighborBrightness))
	a = a.add("renderLayer", l.str(b.RenderLayer))
	return a
}
