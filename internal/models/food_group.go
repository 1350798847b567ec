package models

// Nutrients holds macro values, either per gram (groups) or absolute (items, plates, meals).
type Nutrients struct {
	Kcal    float64 `json:"kcal"`
	Protein float64 `json:"protein_g"`
	Fat     float64 `json:"fat_g"`
	Carbs   float64 `json:"carbs_g"`
}

// Add returns n + o.
func (n Nutrients) Add(o Nutrients) Nutrients {
	return Nutrients{
		Kcal:    n.Kcal + o.Kcal,
		Protein: n.Protein + o.Protein,
		Fat:     n.Fat + o.Fat,
		Carbs:   n.Carbs + o.Carbs,
	}
}

// Sub returns n - o.
func (n Nutrients) Sub(o Nutrients) Nutrients {
	return Nutrients{
		Kcal:    n.Kcal - o.Kcal,
		Protein: n.Protein - o.Protein,
		Fat:     n.Fat - o.Fat,
		Carbs:   n.Carbs - o.Carbs,
	}
}

// Scale multiplies every value by grams.
func (n Nutrients) Scale(grams float64) Nutrients {
	return Nutrients{
		Kcal:    n.Kcal * grams,
		Protein: n.Protein * grams,
		Fat:     n.Fat * grams,
		Carbs:   n.Carbs * grams,
	}
}

// Processing is how the food on the scale was prepared.
type Processing string

const (
	ProcessingNone   Processing = ""
	ProcessingRaw    Processing = "RAW"
	ProcessingCooked Processing = "COOKED"
)

const (
	// CookedOffset is added to a type-A group id to get its cooked variant.
	CookedOffset = 20
	// ProductGroupID identifies a barcode product used as a food group.
	ProductGroupID = 50
)

// FoodGroup is one entry of the food-group catalogue.
type FoodGroup struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Examples string    `json:"examples,omitempty"`
	PerGram  Nutrients `json:"per_gram"`
}

// IsZero reports whether no group has been chosen.
func (g FoodGroup) IsZero() bool { return g.ID == 0 }

// typeAGroups need a raw/cooked distinction because their values change with cooking.
var typeAGroups = map[int]bool{7: true, 8: true, 9: true, 16: true, 17: true, 18: true}

// IsTypeA reports whether the group button id selects a type-A group.
func IsTypeA(id int) bool { return typeAGroups[id] }

var foodGroups = []FoodGroup{
	{ID: 1, Name: "Whole dairy", Examples: "Whole milk, natural whole yogurt, curd", PerGram: Nutrients{0.684059925, 0.038014981, 0.037910112, 0.047191011}},
	{ID: 2, Name: "Semi-skimmed dairy", Examples: "Semi-skimmed milk", PerGram: Nutrients{0.465, 0.033, 0.016, 0.046}},
	{ID: 3, Name: "Skimmed dairy", Examples: "Skimmed milk, skimmed yogurt", PerGram: Nutrients{0.391466667, 0.041822222, 0.0016, 0.052133333}},
	{ID: 4, Name: "Sweetened dairy", Examples: "Milkshakes, flavoured and sweetened yogurts", PerGram: Nutrients{0.841395349, 0.032483721, 0.02067907, 0.131274419}},
	{ID: 5, Name: "Dairy desserts", Examples: "Rice pudding, flan, custard", PerGram: Nutrients{1.130612245, 0.036653061, 0.026938776, 0.184489796}},
	{ID: 6, Name: "Fruit, dried fruit and juices", Examples: "Apricot, cherries, kiwi, apple, orange, banana, grapes", PerGram: Nutrients{0.455913978, 0.00719086, 0.001747312, 0.102822581}},
	{ID: 7, Name: "Vegetables", Examples: "Chard, aubergine, broccoli, courgette, spinach, tomato, carrot", PerGram: Nutrients{0.224860335, 0.01673743, 0.003128492, 0.035195531}},
	{ID: 8, Name: "Cereals and tubers", Examples: "Rice, oats, bread, pasta, potato", PerGram: Nutrients{2.095873684, 0.063073684, 0.015621053, 0.4256}},
	{ID: 9, Name: "Legumes", Examples: "Beans, chickpeas, lentils", PerGram: Nutrients{3.01, 0.219, 0.03, 0.465}},
	{ID: 10, Name: "Pastries and baked goods", Examples: "Sponge cake, croissant, biscuits, muffins", PerGram: Nutrients{4.193949153, 0.071186441, 0.211423729, 0.501864407}},
	{ID: 11, Name: "Healthy fats", Examples: "Olive oil, olives, avocado, almonds, peanuts", PerGram: Nutrients{6.517826087, 0.053478261, 0.679565217, 0.045652174}},
	{ID: 12, Name: "Vegetable fats", Examples: "Sunflower oil, corn oil, light mayonnaise, walnuts", PerGram: Nutrients{0.87375, 0.0110625, 0.0879375, 0.00975}},
	{ID: 13, Name: "Saturated fats", Examples: "Coconut, butter, cream", PerGram: Nutrients{3.625396825, 0.029365079, 0.367460317, 0.049206349}},
	{ID: 14, Name: "Very fatty mixes", Examples: "Margarine, lard, bacon fat", PerGram: Nutrients{6.08, 0.0272, 0.6624, 0.0032}},
	{ID: 15, Name: "Sugars and sweets", Examples: "Sugar, honey, condensed milk, jam", PerGram: Nutrients{3.491368421, 0.021052632, 0.018526316, 0.810947368}},
	{ID: 16, Name: "Very lean protein", Examples: "Turkey, chicken, cooked ham, white fish, seafood, egg white", PerGram: Nutrients{0.368903088, 0.073801917, 0.006709265, 0.002555911}},
	{ID: 17, Name: "Lean protein", Examples: "Pork loin, skinless chicken, beef steak, oily fish", PerGram: Nutrients{0.73488, 0.11456, 0.03024, 0.00096}},
	{ID: 18, Name: "Semi-fat protein", Examples: "Pork chops, lamb, salmon, egg, fresh cheese", PerGram: Nutrients{1.706813187, 0.153186813, 0.113186813, 0.008351648}},
	{ID: 19, Name: "Fatty protein", Examples: "Lamb ribs, chorizo, sausages, cured cheeses", PerGram: Nutrients{3.601914894, 0.222765957, 0.299361702, 0.004468085}},
	{ID: 20, Name: "Very fatty protein", Examples: "Seasoned minced meat, pork belly, salami", PerGram: Nutrients{3.419606061, 0.145090909, 0.308212121, 0.016333333}},
	{ID: 27, Name: "Vegetables", Examples: "Chard, aubergine, broccoli, courgette, spinach, tomato, carrot", PerGram: Nutrients{0.237068966, 0.017646177, 0.003298351, 0.037106447}},
	{ID: 28, Name: "Cereals and tubers", Examples: "Rice, oats, bread, pasta, potato", PerGram: Nutrients{1.170534979, 0.035226337, 0.00872428, 0.237695473}},
	{ID: 29, Name: "Legumes", Examples: "Beans, chickpeas, lentils", PerGram: Nutrients{1.119421488, 0.081446281, 0.011157025, 0.172933884}},
	{ID: 36, Name: "Very lean protein", Examples: "Turkey, chicken, cooked ham, white fish, seafood, egg white", PerGram: Nutrients{0.836939597, 0.167436242, 0.015221477, 0.005798658}},
	{ID: 37, Name: "Lean protein", Examples: "Pork loin, skinless chicken, beef steak, oily fish", PerGram: Nutrients{1.321273973, 0.205972603, 0.054369863, 0.001726027}},
	{ID: 38, Name: "Semi-fat protein", Examples: "Pork chops, lamb, salmon, egg, fresh cheese", PerGram: Nutrients{1.897038168, 0.170259542, 0.125801527, 0.009282443}},
}

// LookupGroup returns the catalogue entry with the given id.
func LookupGroup(id int) (FoodGroup, bool) {
	for _, g := range foodGroups {
		if g.ID == id {
			return g, true
		}
	}
	return FoodGroup{}, false
}

// ResolveGroup returns the values to use for a group under a processing mode.
// Type-A groups switch to their cooked variant; everything else is unchanged.
func ResolveGroup(g FoodGroup, p Processing) FoodGroup {
	if p != ProcessingCooked || !IsTypeA(g.ID) {
		return g
	}
	if cooked, ok := LookupGroup(g.ID + CookedOffset); ok {
		return cooked
	}
	return g
}
