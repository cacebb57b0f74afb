// Package catalog holds the initial Adey International Market product data.
// The storefront launched with this fixed catalog; it is upserted into
// MongoDB on startup and admins manage it from there.
package catalog

import "adey-market-backend/internal/models"

var Categories = []models.ProductCategory{
	{ID: "coffee", Name: "Coffee", Icon: "☕", Description: "Premium Ethiopian coffee beans from renowned regions"},
	{ID: "spices", Name: "Spices & Herbs", Icon: "🌿", Description: "Authentic spice blends and aromatic herbs"},
	{ID: "dryfoods", Name: "Dry Foods", Icon: "🫘", Description: "Traditional grains, legumes, and pantry staples"},
	{ID: "textiles", Name: "Textiles", Icon: "🧵", Description: "Handwoven fabrics and traditional Ethiopian clothing"},
	{ID: "household", Name: "Household Goods", Icon: "🏺", Description: "Traditional pottery, baskets, and home essentials"},
}

var Products = []models.Product{
	{
		ID:            "1",
		Name:          "Sidama Single Origin Coffee",
		Category:      "coffee",
		Origin:        "Sidama, Ethiopia",
		Price:         24.99,
		Image:         "https://images.unsplash.com/photo-1559056199-641a0ac8b55e?w=400&h=400&fit=crop",
		Description:   "Premium single-origin coffee beans from the highlands of Sidama, known for their bright acidity and wine-like characteristics.",
		CulturalNotes: "Sidama coffee is celebrated for its complex flavor profile and is part of Ethiopia's ancient coffee heritage.",
		Featured:      true,
	},
	{
		ID:            "2",
		Name:          "Yirgacheffe Coffee Beans",
		Category:      "coffee",
		Origin:        "Yirgacheffe, Ethiopia",
		Price:         28.99,
		Image:         "https://images.unsplash.com/photo-1587734195503-904fca47e0e9?w=400&h=400&fit=crop",
		Description:   "Floral and tea-like coffee with bright citrus notes from the renowned Yirgacheffe region.",
		CulturalNotes: "Yirgacheffe is considered the birthplace of coffee, where the coffee ceremony is a daily ritual.",
	},
	{
		ID:            "3",
		Name:          "Harar Coffee",
		Category:      "coffee",
		Origin:        "Harar, Ethiopia",
		Price:         26.99,
		Image:         "https://images.unsplash.com/photo-1610889556528-9a770e32642f?w=400&h=400&fit=crop",
		Description:   "Bold and wine-like coffee with a distinctive blueberry undertone, naturally processed in the ancient city of Harar.",
		CulturalNotes: "Harar coffee has been traded for over a thousand years and is known for its unique processing methods.",
	},
	{
		ID:            "4",
		Name:          "Berbere Spice Blend",
		Category:      "spices",
		Origin:        "Ethiopia",
		Price:         12.99,
		Image:         "https://images.unsplash.com/photo-1596040033229-a9821ebd058d?w=400&h=400&fit=crop",
		Description:   "Traditional Ethiopian spice blend with chili peppers, garlic, ginger, and sacred basil.",
		CulturalNotes: "Berbere is the soul of Ethiopian cuisine, used in injera and various traditional stews.",
		Featured:      true,
	},
	{
		ID:            "5",
		Name:          "Mitmita Spice",
		Category:      "spices",
		Origin:        "Ethiopia",
		Price:         9.99,
		Image:         "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400&h=400&fit=crop",
		Description:   "Fiery Ethiopian spice blend perfect for seasoning raw beef dishes and adding heat to meals.",
		CulturalNotes: "Mitmita is essential for preparing kitfo, Ethiopia's version of steak tartare.",
	},
	{
		ID:            "6",
		Name:          "Ethiopian Black Cardamom",
		Category:      "spices",
		Origin:        "Ethiopian Highlands",
		Price:         15.99,
		Image:         "https://images.unsplash.com/photo-1545048702-79362596cdc9?w=400&h=400&fit=crop",
		Description:   "Aromatic black cardamom pods with a smoky, complex flavor profile.",
		CulturalNotes: "Used in traditional coffee ceremonies and as a natural breath freshener.",
	},
	{
		ID:            "7",
		Name:          "Teff Grain",
		Category:      "dryfoods",
		Origin:        "Ethiopian Highlands",
		Price:         8.99,
		Image:         "https://images.unsplash.com/photo-1574763135546-fc2c81169c9c?w=400&h=400&fit=crop",
		Description:   "Ancient superfood grain used to make injera, Ethiopia's traditional sourdough flatbread.",
		CulturalNotes: "Teff has been cultivated in Ethiopia for over 3,000 years and is naturally gluten-free.",
		Featured:      true,
	},
	{
		ID:            "8",
		Name:          "Split Peas (Kik)",
		Category:      "dryfoods",
		Origin:        "Ethiopia",
		Price:         6.99,
		Image:         "https://images.unsplash.com/photo-1583212292454-1fe6229603b7?w=400&h=400&fit=crop",
		Description:   "High-quality yellow split peas perfect for making traditional Ethiopian kik alicha.",
		CulturalNotes: "A staple protein source in Ethiopian cuisine, often prepared for fasting days.",
	},
	{
		ID:            "9",
		Name:          "Red Lentils (Misir)",
		Category:      "dryfoods",
		Origin:        "Ethiopian Highlands",
		Price:         7.99,
		Image:         "https://images.unsplash.com/photo-1556909114-4028b9d6fd3c?w=400&h=400&fit=crop",
		Description:   "Premium red lentils essential for making misir wot, a spicy Ethiopian lentil stew.",
		CulturalNotes: "Red lentils are a cornerstone of Ethiopian Orthodox fasting cuisine.",
	},
	{
		ID:            "10",
		Name:          "Traditional White Cotton Shawl",
		Category:      "textiles",
		Origin:        "Dorze, Ethiopia",
		Price:         45.99,
		Image:         "https://images.unsplash.com/photo-1620799140408-edc6dcb6d633?w=400&h=400&fit=crop",
		Description:   "Handwoven white cotton shawl with colorful borders, perfect for special occasions.",
		CulturalNotes: "Worn during Ethiopian Orthodox celebrations and coffee ceremonies.",
		Featured:      true,
	},
	{
		ID:            "11",
		Name:          "Habesha Kemis Dress",
		Category:      "textiles",
		Origin:        "Addis Ababa, Ethiopia",
		Price:         89.99,
		Image:         "https://images.unsplash.com/photo-1594736797933-d0c6c783467a?w=400&h=400&fit=crop",
		Description:   "Traditional Ethiopian white dress with intricate embroidered borders.",
		CulturalNotes: "The national dress of Ethiopian women, worn during cultural celebrations.",
	},
	{
		ID:            "12",
		Name:          "Ethiopian Cotton Scarf",
		Category:      "textiles",
		Origin:        "Gonder, Ethiopia",
		Price:         19.99,
		Image:         "https://images.unsplash.com/photo-1601762603339-fd61668529bb?w=400&h=400&fit=crop",
		Description:   "Lightweight cotton scarf with traditional Ethiopian patterns and vibrant colors.",
		CulturalNotes: "Versatile accessory reflecting Ethiopia's rich textile traditions.",
	},
	{
		ID:            "13",
		Name:          "Clay Coffee Pot (Jebena)",
		Category:      "household",
		Origin:        "Ethiopian Highlands",
		Price:         34.99,
		Image:         "https://images.unsplash.com/photo-1587734195503-904fca47e0e9?w=400&h=400&fit=crop",
		Description:   "Traditional handmade clay coffee pot essential for Ethiopian coffee ceremonies.",
		CulturalNotes: "The jebena is central to Ethiopian hospitality and coffee culture.",
		Featured:      true,
	},
	{
		ID:            "14",
		Name:          "Woven Basket (Mesob)",
		Category:      "household",
		Origin:        "Southern Ethiopia",
		Price:         42.99,
		Image:         "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=400&fit=crop",
		Description:   "Traditional woven basket table used for serving injera and Ethiopian meals.",
		CulturalNotes: "The mesob brings families together for communal dining experiences.",
	},
	{
		ID:            "15",
		Name:          "Incense Burner (Mukecha)",
		Category:      "household",
		Origin:        "Ethiopia",
		Price:         18.99,
		Image:         "https://images.unsplash.com/photo-1602143407151-7111542de6e8?w=400&h=400&fit=crop",
		Description:   "Decorative clay incense burner for traditional Ethiopian incense ceremonies.",
		CulturalNotes: "Used to burn frankincense during coffee ceremonies and religious occasions.",
	},
}
