package factories

import (
	"fmt"
	"math/rand"

	"github.com/amberleaf/menuforge/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

var fake = faker.New()

// CatalogFactory builds realistic demo catalogs for development
// environments and tests. Production catalogs are hand-authored JSON;
// nothing generated here is ever written back to them.
type CatalogFactory struct {
	Rng *rand.Rand
}

func NewCatalogFactory(seed int64) *CatalogFactory {
	return &CatalogFactory{Rng: rand.New(rand.NewSource(seed))}
}

var sampleDishes = map[string][]string{
	"Starters":     {"Paneer Tikka", "Chicken 65", "Crispy Corn", "Mutton Seekh Kebab", "Silken Tofu Tempura Tacos Bao"},
	"Main Course":  {"Dal Makhani", "Butter Chicken", "Mutton Rogan Josh", "Veg Kolhapuri", "Prawn Moilee"},
	"Desserts":     {"Gulab Jamun", "Rasmalai", "Chocolate Fondant", "Kulfi Falooda"},
	"Whisky":       {"Highland Reserve", "Amber Single Malt", "Smoky Peat 12", "Rye Old Fashioned Pour"},
	"Beer":         {"House Lager", "Wheat Ale", "Session IPA"},
	"Hot Coffee":   {"Filter Kaapi", "Cappuccino", "Hazelnut Latte"},
	"Bakery":       {"Walnut Brownie Loaf", "Banana Bread", "Plum Cake"},
}

var dishDietary = map[string][]string{
	"Paneer Tikka":                  {models.DietVeg},
	"Chicken 65":                    {models.DietNonVeg},
	"Crispy Corn":                   {models.DietVeg},
	"Mutton Seekh Kebab":            {models.DietNonVeg},
	"Silken Tofu Tempura Tacos Bao": {models.DietVeg},
	"Dal Makhani":                   {models.DietVeg},
	"Butter Chicken":                {models.DietNonVeg},
	"Mutton Rogan Josh":             {models.DietNonVeg},
	"Veg Kolhapuri":                 {models.DietVeg},
	"Prawn Moilee":                  {models.DietNonVeg},
	"Gulab Jamun":                   {models.DietVeg},
	"Rasmalai":                      {models.DietVeg},
	"Chocolate Fondant":             {models.DietVeg},
	"Kulfi Falooda":                 {models.DietVeg},
}

// CreateItem builds one demo item for the given category display name
// and machine key.
func (f *CatalogFactory) CreateItem(categoryName, categoryKey string) models.MenuItem {
	names := sampleDishes[categoryName]
	var name string
	if len(names) > 0 {
		name = names[f.Rng.Intn(len(names))]
	} else {
		name = "Special of the Day"
	}

	item := models.MenuItem{
		ID:            cuid.New(),
		Name:          name,
		Description:   fake.Lorem().Sentence(8),
		Price:         99 + f.Rng.Intn(40)*25,
		Category:      categoryKey,
		Dietary:       dishDietary[name],
		SpiceLevel:    f.Rng.Intn(4),
		IsRecommended: f.Rng.Intn(5) == 0,
		IsChefSpecial: f.Rng.Intn(8) == 0,
		IsAvailable:   true,
	}

	// Spirits get the three-tier layout, beer and bakery the two-tier.
	switch categoryKey {
	case "whisky", "vodka", "rum", "gin":
		item.Price60ml = item.Price*2 - 50
		item.BottlePrice = item.Price * 22
	case "beer", "bakery":
		item.BottlePrice = item.Price * 2
	}
	return item
}

// CreateCategory builds one demo category with n items.
func (f *CatalogFactory) CreateCategory(name, key string, n int) models.MenuCategory {
	cat := models.MenuCategory{
		ID:          key,
		Name:        name,
		Description: fake.Lorem().Sentence(6),
	}
	for i := 0; i < n; i++ {
		cat.Items = append(cat.Items, f.CreateItem(name, key))
	}
	return cat
}

// CreateMenu builds one demo venue menu.
func (f *CatalogFactory) CreateMenu(venue string) *models.Menu {
	var categories []models.MenuCategory
	switch venue {
	case models.VenueFood:
		categories = []models.MenuCategory{
			f.CreateCategory("Starters", "starters", 4),
			f.CreateCategory("Main Course", "mains", 5),
			f.CreateCategory("Desserts", "desserts", 3),
		}
	case models.VenueBar:
		categories = []models.MenuCategory{
			f.CreateCategory("Whisky", "whisky", 4),
			f.CreateCategory("Beer", "beer", 3),
		}
	case models.VenueCafe:
		categories = []models.MenuCategory{
			f.CreateCategory("Hot Coffee", "coffee", 3),
			f.CreateCategory("Bakery", "bakery", 3),
		}
	}

	return &models.Menu{
		Venue:       venue,
		Name:        fmt.Sprintf("Amber Leaf %s", venueTitle(venue)),
		Description: fake.Lorem().Sentence(5),
		Tagline:     fake.Lorem().Sentence(4),
		Categories:  categories,
	}
}

func venueTitle(venue string) string {
	switch venue {
	case models.VenueFood:
		return "Kitchen"
	case models.VenueBar:
		return "Bar"
	case models.VenueCafe:
		return "Café"
	default:
		return venue
	}
}
