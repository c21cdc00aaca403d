package api

import "handbag-explorer/internal/models"

// exploreCategories are the curated tiles on the explore surface. They
// are editorial content, so they live in code rather than any store.
var exploreCategories = []models.ExploreCategory{
	{
		ID:             "iconic-birkins",
		Title:          "Iconic Birkins",
		Description:    "The most coveted handbag in the world",
		ImageURL:       "https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=600&h=400&fit=crop",
		FilterURL:      "/explore?brands=Hermès&bag_type=top-handle",
		SampleProducts: []models.Listing{},
	},
	{
		ID:             "chanel-classics",
		Title:          "Chanel Classics",
		Description:    "Timeless elegance from the House of Chanel",
		ImageURL:       "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=600&h=400&fit=crop",
		FilterURL:      "/explore?brands=Chanel",
		SampleProducts: []models.Listing{},
	},
	{
		ID:             "everyday-totes",
		Title:          "Everyday Totes",
		Description:    "Spacious and stylish for daily use",
		ImageURL:       "https://images.unsplash.com/photo-1566150905458-1bf1fc113f0d?w=600&h=400&fit=crop",
		FilterURL:      "/explore?bag_type=tote",
		SampleProducts: []models.Listing{},
	},
	{
		ID:             "crossbody-bags",
		Title:          "Crossbody Bags",
		Description:    "Hands-free luxury for the modern woman",
		ImageURL:       "https://images.unsplash.com/photo-1594223274512-ad4803739b7c?w=600&h=400&fit=crop",
		FilterURL:      "/explore?bag_type=crossbody",
		SampleProducts: []models.Listing{},
	},
	{
		ID:             "investment-pieces",
		Title:          "Investment Pieces",
		Description:    "Bags that appreciate in value",
		ImageURL:       "https://images.unsplash.com/photo-1591561954557-26941169b49e?w=600&h=400&fit=crop",
		FilterURL:      "/explore?min_price=10000",
		SampleProducts: []models.Listing{},
	},
	{
		ID:             "under-3000",
		Title:          "Under $3,000",
		Description:    "Luxury within reach",
		ImageURL:       "https://images.unsplash.com/photo-1590874103328-eac38a683ce7?w=600&h=400&fit=crop",
		FilterURL:      "/explore?max_price=3000",
		SampleProducts: []models.Listing{},
	},
	{
		ID:             "pre-owned",
		Title:          "Pre-Owned Treasures",
		Description:    "Authenticated luxury at great value",
		ImageURL:       "https://images.unsplash.com/photo-1614179689702-355944cd0918?w=600&h=400&fit=crop",
		FilterURL:      "/explore?country=US",
		SampleProducts: []models.Listing{},
	},
	{
		ID:             "new-arrivals",
		Title:          "New Arrivals",
		Description:    "Fresh from the runway",
		ImageURL:       "https://images.unsplash.com/photo-1584917865442-de89df76afd3?w=600&h=400&fit=crop",
		FilterURL:      "/explore",
		SampleProducts: []models.Listing{},
	},
}
