package world

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lixenwraith/duckling/constants"
	"github.com/lixenwraith/duckling/core"
)

// ShopItem is one catalog entry
type ShopItem struct {
	ID    string
	Label string
	Price int
}

// shopCatalog is the fixed item catalog
var shopCatalog = []ShopItem{
	{ID: "bread", Label: "Bread crust", Price: 5},
	{ID: "cake", Label: "Crumb cake", Price: 12},
	{ID: "soap", Label: "Pond soap", Price: 8},
	{ID: "ball", Label: "Bouncy ball", Price: 15},
	{ID: "cress", Label: "Cress seeds", Price: 4},
	{ID: "duckweed", Label: "Duckweed seeds", Price: 7},
	{ID: "sunflower", Label: "Sunflower seeds", Price: 10},
}

// Shop holds the wallet and purchased inventory
type Shop struct {
	crumbs    int
	inventory map[string]int
}

// NewShop creates a shop with the starting wallet
func NewShop() *Shop {
	return &Shop{
		crumbs:    constants.StartingCrumbs,
		inventory: make(map[string]int),
	}
}

// Catalog returns the purchasable items
func (s *Shop) Catalog() []ShopItem { return shopCatalog }

// Crumbs returns the wallet balance
func (s *Shop) Crumbs() int { return s.crumbs }

// AddCrumbs credits the wallet, flooring at zero
func (s *Shop) AddCrumbs(n int) {
	s.crumbs += n
	if s.crumbs < 0 {
		s.crumbs = 0
	}
}

// Count returns how many of an item are held
func (s *Shop) Count(id string) int { return s.inventory[id] }

// Buy purchases one unit of the item
func (s *Shop) Buy(id string) error {
	var item *ShopItem
	for i := range shopCatalog {
		if shopCatalog[i].ID == id {
			item = &shopCatalog[i]
			break
		}
	}
	if item == nil {
		return fmt.Errorf("unknown item %q", id)
	}
	if s.crumbs < item.Price {
		return fmt.Errorf("not enough crumbs for %s (need %d, have %d)", item.Label, item.Price, s.crumbs)
	}
	s.crumbs -= item.Price
	s.inventory[id]++
	return nil
}

// Consume removes one unit of a held item
func (s *Shop) Consume(id string) bool {
	if s.inventory[id] == 0 {
		return false
	}
	s.inventory[id]--
	return true
}

// Name implements the collaborator contract
func (s *Shop) Name() string { return "shop" }

// Update is a no-op; the shop changes only through purchases
func (s *Shop) Update(now time.Time, delta time.Duration) []core.Message {
	return nil
}

type shopSnapshot struct {
	Crumbs    int            `json:"crumbs"`
	Inventory map[string]int `json:"inventory"`
}

// Serialize implements the collaborator contract
func (s *Shop) Serialize() ([]byte, error) {
	return json.Marshal(shopSnapshot{Crumbs: s.crumbs, Inventory: s.inventory})
}

// Deserialize implements the collaborator contract
func (s *Shop) Deserialize(data []byte) error {
	snap := shopSnapshot{Crumbs: constants.StartingCrumbs}
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decoding shop state: %w", err)
	}
	s.crumbs = snap.Crumbs
	if snap.Inventory != nil {
		s.inventory = snap.Inventory
	} else {
		s.inventory = make(map[string]int)
	}
	return nil
}
