package pets

// Pet es solo de display: se genera en cada request y nunca se persiste.
type Pet struct {
	ID          string
	Name        string
	Description string
	Image       string
	Background  string
	Traits      []string
	Rarity      string
}

// Rarity define las rarezas del catálogo.
type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityUncommon  Rarity = "Uncommon"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)
