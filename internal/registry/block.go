package registry

import (
	"errors"
	"fmt"
)

// MetaCount is the number of metadata values a legacy block id can carry.
const MetaCount = 16

// ErrNoItemForm is returned by SubItemsByMeta for blocks that cannot be held
// as an item stack.
var ErrNoItemForm = errors.New("block has no item form")

// Block is one entry of the block registry.
type Block struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	UnlocalizedName string `json:"unlocalizedName"`
	LocalizedName   string `json:"localizedName"`
	CreativeTab     string `json:"creativeTab,omitempty"`

	OpaqueCube            bool `json:"opaqueCube"`
	Collidable            bool `json:"collidable"`
	HasEntity             bool `json:"hasEntity"`
	Opacity               int  `json:"opacity"`
	Brightness            int  `json:"brightness"`
	UseNeighborBrightness bool `json:"useNeighborBrightness"`

	RenderLayer string   `json:"renderLayer,omitempty"`
	RenderType  int      `json:"renderType"`
	Color       int      `json:"color"`
	Material    Material `json:"material"`
	Bounds      Bounds   `json:"bounds"`

	DefaultState string      `json:"defaultState"`
	States       []State     `json:"states"`
	MetaStates   []MetaState `json:"metaStates"`

	// HasItem reports whether the block has an item form at all. Blocks
	// without one fail sub-item enumeration.
	HasItem       bool        `json:"hasItem"`
	SubItems      []ItemStack `json:"subItems,omitempty"`
	SubItemsError string      `json:"subItemsError,omitempty"`
}

// State is one configuration of a block's properties.
type State struct {
	Name       string `json:"name"`
	MapColor   int    `json:"mapColor"`
	RenderType int    `json:"renderType"`
}

// MetaState maps a metadata value to a state name. Error, when set, records
// a failure the registry reported while resolving that meta.
type MetaState struct {
	Meta  int    `json:"meta"`
	State string `json:"state,omitempty"`
	Error string `json:"error,omitempty"`
}

type ItemStack struct {
	Meta            int    `json:"meta"`
	UnlocalizedName string `json:"unlocalizedName"`
	DisplayName     string `json:"displayName"`
}

type Material struct {
	BlocksMovement bool   `json:"blocksMovement"`
	Burns          bool   `json:"burns"`
	Mobility       string `json:"mobility"`
	Liquid         bool   `json:"liquid"`
	Opaque         bool   `json:"opaque"`
	Replaceable    bool   `json:"replaceable"`
	Solid          bool   `json:"solid"`
}

type Bounds struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MinZ float64 `json:"minZ"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
	MaxZ float64 `json:"maxZ"`
}

// FullCube is the bounding box of an ordinary solid block.
var FullCube = Bounds{MaxX: 1, MaxY: 1, MaxZ: 1}

// State returns the declared state with the given name.
func (b *Block) State(name string) (State, bool) {
	for _, s := range b.States {
		if s.Name == name {
			return s, true
		}
	}
	return State{}, false
}

// StateFromMeta resolves the state stored under meta. A meta the block does
// not map resolves to the default state.
func (b *Block) StateFromMeta(meta int) (State, error) {
	if meta < 0 || meta >= MetaCount {
		return State{}, fmt.Errorf("meta %d out of range", meta)
	}

	name := b.DefaultState
	for _, ms := range b.MetaStates {
		if ms.Meta != meta {
			continue
		}
		if ms.Error != "" {
			return State{}, errors.New(ms.Error)
		}
		name = ms.State
		break
	}

	s, ok := b.State(name)
	if !ok {
		return State{}, fmt.Errorf("state %q is not declared by %s", name, b.Name)
	}
	return s, nil
}

// MetaFromState returns the lowest meta resolving to the named state, or 0.
func (b *Block) MetaFromState(name string) int {
	for meta := 0; meta < MetaCount; meta++ {
		s, err := b.StateFromMeta(meta)
		if err == nil && s.Name == name {
			return meta
		}
	}
	return 0
}

// SubItemsByMeta indexes the block's item stacks by metadata. Later stacks
// with the same meta replace earlier ones.
func (b *Block) SubItemsByMeta() (map[int]ItemStack, error) {
	if b.SubItemsError != "" {
		return nil, errors.New(b.SubItemsError)
	}
	if !b.HasItem {
		return nil, ErrNoItemForm
	}

	out := make(map[int]ItemStack, len(b.SubItems))
	for _, st := range b.SubItems {
		out[st.Meta] = st
	}
	return out, nil
}

func (b *Block) String() string {
	return fmt.Sprintf("Block{%s}", b.Name)
}
