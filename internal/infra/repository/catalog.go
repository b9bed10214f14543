package repository

import "tinytreasures/internal/domain/model"

// 発売時のカタログ（DBのシードにも使う）
func LaunchCatalog() []model.Product {
	return []model.Product{
		{
			ID:          "ring-1",
			Name:        "Delicate Rose Band",
			Price:       499,
			Image:       "/assets/ring-collection.jpg",
			Category:    "Rings",
			Description: "A delicate rose gold band with intricate floral detailing",
			Position:    1,
		},
		{
			ID:          "ring-2",
			Name:        "Twisted Vine Ring",
			Price:       649,
			Image:       "/assets/ring-collection.jpg",
			Category:    "Rings",
			Description: "Elegant twisted vine design in premium gold finish",
			Position:    2,
		},
		{
			ID:          "earring-1",
			Name:        "Pearl Drop Earrings",
			Price:       799,
			Image:       "/assets/earrings-collection.jpg",
			Category:    "Earrings",
			Description: "Classic pearl drops with gold accents",
			Position:    3,
		},
		{
			ID:          "earring-2",
			Name:        "Crystal Studs",
			Price:       449,
			Image:       "/assets/earrings-collection.jpg",
			Category:    "Earrings",
			Description: "Sparkling crystal studs for everyday elegance",
			Position:    4,
		},
		{
			ID:          "necklace-1",
			Name:        "Golden Heart Pendant",
			Price:       999,
			Image:       "/assets/necklace-collection.jpg",
			Category:    "Necklaces",
			Description: "A timeless heart pendant on a delicate chain",
			Position:    5,
		},
		{
			ID:          "necklace-2",
			Name:        "Layered Chain Set",
			Price:       1299,
			Image:       "/assets/necklace-collection.jpg",
			Category:    "Necklaces",
			Description: "Three-layer chain set for a modern look",
			Position:    6,
		},
	}
}
