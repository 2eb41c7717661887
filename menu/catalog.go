package menu

import "suite46-pickup/models"

// catalog is fixed for the season; changing it means a redeploy
var catalog = []models.Category{
	{Name: "Seafood Favorites", Items: []models.MenuItem{
		{ID: "snapper_fries", Name: "Snapper & Fries", Price: 25, Image: "/images/snapper-fries.jpg"},
		{ID: "snapper_only", Name: "Snapper Only", Price: 22, Image: "/images/snapper.jpg"},
		{ID: "tilapia_fries", Name: "Tilapia & Fries", Price: 12, Image: "/images/tilapia-fries.jpg"},
		{ID: "tilapia_only", Name: "Tilapia Only", Price: 10, Image: "/images/tilapia.jpg"},
	}},
	{Name: "Wings & Ribs", Items: []models.MenuItem{
		{ID: "wings_fries", Name: "Fried Whole Wings & Fries", Price: 13, Image: "/images/wings-fries.jpg"},
		{ID: "wings_5pc", Name: "Fried Whole Wings (5 pc)", Price: 10, Image: "/images/wings-5pc.jpg"},
		{ID: "rib_sandwich", Name: "BBQ Rib Sandwich", Price: 13, Image: "/images/rib-sandwich.jpg"},
		{ID: "chicken_sandwich", Name: "BBQ Chicken Sandwich", Price: 11, Image: "/images/chicken-sandwich.jpg"},
	}},
	{Name: "Sides", Items: []models.MenuItem{
		{ID: "fries", Name: "Fries", Price: 5, Image: "/images/fries.jpg"},
		{ID: "corn", Name: "Corn", Price: 5, Image: "/images/corn.jpg"},
	}},
	{Name: "Desserts", Items: []models.MenuItem{
		{ID: "pound_cake", Name: "Pound Cake", Price: 5, Image: "/images/pound-cake.jpg"},
		{ID: "red_velvet_2", Name: "Red Velvet Cupcakes (2)", Price: 7, Image: "/images/red-velvet.jpg"},
		{ID: "cupcake_single", Name: "Single Cupcake", Price: 4, Image: "/images/cupcake.jpg"},
	}},
	{Name: "Drinks", Items: []models.MenuItem{
		{ID: "peach_lemonade", Name: "Peach Lemonade", Price: 4, Image: "/images/peach-lemonade.jpg"},
		{ID: "fruit_punch", Name: "Fruit Punch", Price: 4, Image: "/images/fruit-punch.jpg"},
		{ID: "water", Name: "Water", Price: 2, Image: "/images/water.jpg"},
	}},
}

var byID = func() map[string]models.MenuItem {
	m := make(map[string]models.MenuItem)
	for _, cat := range catalog {
		for _, it := range cat.Items {
			m[it.ID] = it
		}
	}
	return m
}()

// Categories returns a copy of the catalog in display order
func Categories() []models.Category {
	out := make([]models.Category, len(catalog))
	for i, cat := range catalog {
		items := make([]models.MenuItem, len(cat.Items))
		copy(items, cat.Items)
		out[i] = models.Category{Name: cat.Name, Items: items}
	}
	return out
}

// Lookup finds a menu item by id
func Lookup(id string) (models.MenuItem, bool) {
	it, ok := byID[id]
	return it, ok
}
