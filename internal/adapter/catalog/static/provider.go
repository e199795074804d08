package staticcatalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"gravehold/internal/domain/economy"
)

// Provider serves immutable item definitions loaded once at startup from a
// JSON file. Definitions are game data, not player state, so there is no
// write path.
type Provider struct {
	items map[economy.ItemID]economy.ItemDef
}

type catalogFile struct {
	Items []itemEntry `json:"items"`
}

type itemEntry struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Tag       string       `json:"tag"`
	MaxStack  int          `json:"max_stack"`
	SellValue int          `json:"sell_value"`
	Recipe    *recipeEntry `json:"recipe,omitempty"`
}

type recipeEntry struct {
	Ingredients map[string]int `json:"ingredients"`
	Unlocked    bool           `json:"unlocked"`
}

func Load(path string) (Provider, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Provider{}, fmt.Errorf("read catalog: %w", err)
	}
	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return Provider{}, fmt.Errorf("parse catalog: %w", err)
	}

	items := make(map[economy.ItemID]economy.ItemDef, len(file.Items))
	for _, entry := range file.Items {
		id := economy.ItemID(entry.ID)
		if entry.ID == "" {
			return Provider{}, fmt.Errorf("catalog entry without id")
		}
		if _, dup := items[id]; dup {
			return Provider{}, fmt.Errorf("duplicate catalog entry %q", entry.ID)
		}
		if entry.MaxStack < 1 {
			return Provider{}, fmt.Errorf("catalog entry %q: max_stack must be at least 1", entry.ID)
		}
		def := economy.ItemDef{
			ID:        id,
			Name:      entry.Name,
			Tag:       economy.Tag(entry.Tag),
			MaxStack:  entry.MaxStack,
			SellValue: entry.SellValue,
		}
		if entry.Recipe != nil {
			ingredients := make(map[economy.Tag]int, len(entry.Recipe.Ingredients))
			for tag, count := range entry.Recipe.Ingredients {
				if count < 1 {
					return Provider{}, fmt.Errorf("catalog entry %q: ingredient %q count must be positive", entry.ID, tag)
				}
				ingredients[economy.Tag(tag)] = count
			}
			def.Recipe = &economy.Recipe{
				Output:      id,
				Ingredients: ingredients,
				Unlocked:    entry.Recipe.Unlocked,
			}
		}
		items[id] = def
	}
	return Provider{items: items}, nil
}

func (p Provider) Resolve(id economy.ItemID) (economy.ItemDef, bool) {
	def, ok := p.items[id]
	return def, ok
}

// All returns every definition ordered by ID, for listing surfaces.
func (p Provider) All() []economy.ItemDef {
	out := make([]economy.ItemDef, 0, len(p.items))
	for _, def := range p.items {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
