package models

import "time"

// Item is a single weighed food committed to a plate.
type Item struct {
	Plate      int        `json:"plate,omitempty"`
	GroupID    int        `json:"group_id"`
	GroupName  string     `json:"group_name"`
	Processing Processing `json:"processing,omitempty"`
	Grams      float64    `json:"grams"`
	Values     Nutrients  `json:"values"`
}

// NewItem computes the values of grams of group g prepared as p.
func NewItem(g FoodGroup, p Processing, grams float64) Item {
	resolved := ResolveGroup(g, p)
	return Item{
		GroupID:    resolved.ID,
		GroupName:  resolved.Name,
		Processing: p,
		Grams:      grams,
		Values:     resolved.PerGram.Scale(grams),
	}
}

// Plate accumulates the items placed in one container.
type Plate struct {
	ID     string    `json:"id,omitempty"`
	Items  []Item    `json:"items"`
	Grams  float64   `json:"grams"`
	Values Nutrients `json:"values"`
}

// Add appends an item to the plate.
func (p *Plate) Add(it Item) {
	p.Items = append(p.Items, it)
	p.Grams += it.Grams
	p.Values = p.Values.Add(it.Values)
}

// Empty reports whether nothing was committed to the plate.
func (p Plate) Empty() bool { return len(p.Items) == 0 }

// Reset starts a new plate.
func (p *Plate) Reset() { *p = Plate{} }

// Clone returns a copy that shares no memory with p.
func (p Plate) Clone() Plate {
	p.Items = append([]Item(nil), p.Items...)
	return p
}

// Meal is the set of plates logged between two saves.
// Item values are added as soon as they are committed; Plates counts closed plates.
type Meal struct {
	ID       string    `json:"id,omitempty"`
	Plates   int       `json:"plates"`
	Grams    float64   `json:"grams"`
	Values   Nutrients `json:"values"`
	SavedAt  time.Time `json:"saved_at,omitempty"`
	Uploaded bool      `json:"uploaded"`
	Items    []Item    `json:"items,omitempty"`
}

// AddItem adds an item's values to the meal, numbering it with the open plate.
func (m *Meal) AddItem(it Item) {
	it.Plate = m.Plates + 1
	m.Items = append(m.Items, it)
	m.Grams += it.Grams
	m.Values = m.Values.Add(it.Values)
}

// AddPlate closes a plate into the meal. Its items were already added.
func (m *Meal) AddPlate(Plate) { m.Plates++ }

// DeletePlate removes an open plate's items from the meal.
func (m *Meal) DeletePlate(p Plate) {
	m.Grams -= p.Grams
	m.Values = m.Values.Sub(p.Values)
	if n := len(m.Items) - len(p.Items); n >= 0 {
		m.Items = m.Items[:n]
	}
}

// Empty reports whether no plate was closed and nothing is pending.
func (m Meal) Empty() bool { return m.Plates == 0 && len(m.Items) == 0 }

// Reset starts a new meal.
func (m *Meal) Reset() { *m = Meal{} }

// Clone returns a copy that shares no memory with m.
func (m Meal) Clone() Meal {
	m.Items = append([]Item(nil), m.Items...)
	return m
}

// Diary holds the accumulated totals of saved meals.
type Diary struct {
	Meals  int       `json:"meals"`
	Grams  float64   `json:"grams"`
	Values Nutrients `json:"values"`
}

// AddMeal accumulates a saved meal.
func (d *Diary) AddMeal(m Meal) {
	d.Meals++
	d.Grams += m.Grams
	d.Values = d.Values.Add(m.Values)
}

// Product is a barcode lookup result.
type Product struct {
	Barcode string    `json:"barcode"`
	Name    string    `json:"name"`
	PerGram Nutrients `json:"per_gram"`
}

// Group turns the product into a food group usable for commits.
func (p Product) Group() FoodGroup {
	return FoodGroup{ID: ProductGroupID, Name: p.Name, Examples: p.Barcode, PerGram: p.PerGram}
}
