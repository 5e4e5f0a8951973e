package products

import "velour/models"

// Fixed sample catalog used by POST /api/init-data.
var sampleProducts = []models.ProductInput{
	{
		Name:          "Premium Virgin Hair Extensions - 22 inch",
		Description:   "100% virgin human hair extensions with natural shine and silky texture. Perfect for adding length and volume.",
		Price:         129.99,
		Category:      "extensions",
		Subcategory:   "clip_in",
		Images:        []string{"https://images.unsplash.com/photo-1500917293891-ef795e70e1f6?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1NzZ8MHwxfHNlYXJjaHwxfHxoYWlyJTIwZXh0ZW5zaW9uc3xlbnwwfHx8fDE3NTQ3ODM1NTB8MA&ixlib=rb-4.1.0&q=85"},
		Attributes:    map[string]string{"length": "22 inches", "color": "Natural Black", "texture": "Straight", "weight": "120g"},
		StockQuantity: 50,
	},
	{
		Name:          "Curly Hair Extensions Bundle",
		Description:   "Beautiful curly hair extensions for natural volume and bounce. Easy to style and maintain.",
		Price:         149.99,
		Category:      "extensions",
		Subcategory:   "sewn_in",
		Images:        []string{"https://images.unsplash.com/photo-1634449571017-5fecfd26ad76?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1NzZ8MHwxfHNlYXJjaHwyfHxoYWlyJTIwZXh0ZW5zaW9uc3xlbnwwfHx8fDE3NTQ3ODM1NTB8MA&ixlib=rb-4.1.0&q=85"},
		Attributes:    map[string]string{"length": "18 inches", "color": "Dark Brown", "texture": "Curly", "weight": "140g"},
		StockQuantity: 35,
	},
	{
		Name:          "Lace Front Wig - Natural Look",
		Description:   "Premium lace front wig with natural hairline. Comfortable cap construction for all-day wear.",
		Price:         199.99,
		Category:      "wigs",
		Subcategory:   "lace_front",
		Images:        []string{"https://images.unsplash.com/photo-1624489173879-7cc62610ddea?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1Nzl8MHwxfHNlYXJjaHwxfHx3aWdzfGVufDB8fHx8MTc1NDc4MzU1NXww&ixlib=rb-4.1.0&q=85"},
		Attributes:    map[string]string{"length": "16 inches", "color": "Medium Brown", "texture": "Wavy", "cap_size": "Medium"},
		StockQuantity: 25,
	},
	{
		Name:          "Colorful Wig Collection",
		Description:   "Fun and vibrant colored wigs perfect for special occasions or daily wear.",
		Price:         89.99,
		Category:      "wigs",
		Subcategory:   "synthetic",
		Images:        []string{"https://images.unsplash.com/photo-1634315775834-3e1ac73de6b6?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1Nzl8MHwxfHNlYXJjaHwyfHx3aWdzfGVufDB8fHx8MTc1NDc4MzU1NXww&ixlib=rb-4.1.0&q=85"},
		Attributes:    map[string]string{"length": "12 inches", "color": "Various", "texture": "Straight", "cap_size": "One Size"},
		StockQuantity: 40,
	},
	{
		Name:          "Brazilian Hair Bundle - 3 Pack",
		Description:   "Premium Brazilian virgin hair bundles. Soft, silky and tangle-free.",
		Price:         299.99,
		Category:      "bundles",
		Subcategory:   "brazilian",
		Images:        []string{"https://images.pexels.com/photos/6923472/pexels-photo-6923472.jpeg"},
		Attributes:    map[string]string{"length": "16-18-20 inches", "color": "Natural Black", "texture": "Body Wave", "pieces": "3 bundles"},
		StockQuantity: 20,
	},
	{
		Name:          "Peruvian Hair Bundle Set",
		Description:   "High-quality Peruvian hair bundles with natural shine and body.",
		Price:         279.99,
		Category:      "bundles",
		Subcategory:   "peruvian",
		Images:        []string{"https://images.pexels.com/photos/6923557/pexels-photo-6923557.jpeg"},
		Attributes:    map[string]string{"length": "14-16-18 inches", "color": "Dark Brown", "texture": "Straight", "pieces": "3 bundles"},
		StockQuantity: 15,
	},
	{
		Name:          "Hair Care Essentials Kit",
		Description:   "Complete hair care kit with shampoo, conditioner, and styling tools.",
		Price:         49.99,
		Category:      "hair_care",
		Subcategory:   "shampoo_conditioner",
		Images:        []string{"https://images.unsplash.com/photo-1717160675489-7779f2c91999?crop=entropy&cs=srgb&fm=jpg&ixid=M3w3NDk1Nzh8MHwxfHNlYXJjaHwxfHxoYWlyJTIwY2FyZXxlbnwwfHx8fDE3NTQ3ODM1NjV8MA&ixlib=rb-4.1.0&q=85"},
		Attributes:    map[string]string{"type": "Complete Kit", "size": "Set of 4", "scent": "Coconut"},
		StockQuantity: 60,
	},
	{
		Name:          "Professional Hair Tools Set",
		Description:   "Complete set of professional hair styling tools including brushes, clips, and combs.",
		Price:         39.99,
		Category:      "accessories",
		Subcategory:   "tools",
		Images:        []string{"https://images.pexels.com/photos/973401/pexels-photo-973401.jpeg"},
		Attributes:    map[string]string{"pieces": "15-piece set", "material": "Professional Grade", "color": "Black"},
		StockQuantity: 45,
	},
}
