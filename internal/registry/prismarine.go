package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/OCharnyshevich/blockdump/internal/schema"
)

// ErrFlattened is returned for schemes whose blocks use the post-1.13 state
// model, which has no metadata to export.
var ErrFlattened = errors.New("scheme uses flattened block states")

var liquids = map[string]bool{
	"water": true, "flowing_water": true,
	"lava": true, "flowing_lava": true,
}

// FromPrismarine builds a snapshot from a minecraft-data scheme directory
// (blocks.json, plus version.json when present). The scheme carries no
// render data, so models are empty and render fields are derived from
// transparency.
func FromPrismarine(dir string) (*Snapshot, error) {
	raw, err := os.ReadFile(filepath.Join(dir, "blocks.json"))
	if err != nil {
		return nil, fmt.Errorf("read blocks.json: %w", err)
	}

	blocks, err := schema.LoadJSON[schema.Block](raw)
	if err != nil {
		return nil, fmt.Errorf("parse blocks.json: %w", err)
	}

	snap := &Snapshot{
		Version: filepath.Base(dir),
		Blocks:  make([]Block, 0, len(blocks)),
		Models:  map[string]ResourceModel{},
	}

	if raw, err := os.ReadFile(filepath.Join(dir, "version.json")); err == nil {
		var v schema.VersionInfo
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("parse version.json: %w", err)
		}
		snap.Version = v.MinecraftVersion
	}

	for _, sb := range blocks {
		if len(sb.States) > 0 || sb.DefaultState != nil {
			return nil, fmt.Errorf("block %s: %w", sb.Name, ErrFlattened)
		}
		snap.Blocks = append(snap.Blocks, convertBlock(sb))
	}

	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scheme: %w", err)
	}
	return snap, nil
}

func convertBlock(sb schema.Block) Block {
	name := "minecraft:" + sb.Name
	solid := sb.BoundingBox == "block"

	b := Block{
		ID:              sb.ID,
		Name:            name,
		UnlocalizedName: "tile." + sb.Name,
		LocalizedName:   sb.DisplayName,
		OpaqueCube:      solid && !sb.Transparent,
		Collidable:      solid,
		Opacity:         sb.FilterLight,
		Brightness:      sb.EmitLight,
		RenderLayer:     "SOLID",
		RenderType:      3,
		Material: Material{
			BlocksMovement: solid,
			Mobility:       "NORMAL",
			Liquid:         liquids[sb.Name],
			Opaque:         !sb.Transparent,
			Replaceable:    sb.Name == "air",
			Solid:          solid,
		},
		// Blocks without a diggable drop, like air or fire, have no item.
		HasItem: sb.Diggable && sb.StackSize > 0,
	}
	if sb.Transparent {
		b.RenderLayer = "CUTOUT"
	}
	if solid {
		b.Bounds = FullCube
	}

	if len(sb.Variations) == 0 {
		b.DefaultState = name
		b.States = []State{{Name: name, RenderType: 3}}
		b.MetaStates = []MetaState{{Meta: 0, State: name}}
		if b.HasItem {
			b.SubItems = []ItemStack{{UnlocalizedName: b.UnlocalizedName, DisplayName: sb.DisplayName}}
		}
		return b
	}

	for _, v := range sb.Variations {
		state := fmt.Sprintf("%s[metadata=%d]", name, v.Metadata)
		b.States = append(b.States, State{Name: state, RenderType: 3})
		b.MetaStates = append(b.MetaStates, MetaState{Meta: v.Metadata, State: state})
		if b.HasItem {
			b.SubItems = append(b.SubItems, ItemStack{
				Meta:            v.Metadata,
				UnlocalizedName: b.UnlocalizedName,
				DisplayName:     v.DisplayName,
			})
		}
	}
	b.DefaultState = b.States[0].Name
	return b
}
