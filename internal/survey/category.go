package survey

import "sort"

// Category is one of the five behavioural styles a statement can score toward.
type Category string

const (
	Avoidance     Category = "Avoidance"
	Aggression    Category = "Aggression"
	Accommodation Category = "Accommodation"
	Compromise    Category = "Compromise"
	Collaboration Category = "Collaboration"
)

// displayOrder is the order categories appear in every report.
var displayOrder = [...]Category{Avoidance, Aggression, Accommodation, Compromise, Collaboration}

// Categories returns all categories in report display order.
func Categories() []Category {
	out := make([]Category, len(displayOrder))
	copy(out, displayOrder[:])
	return out
}

// Mapping assigns statement ordinals to categories. An ordinal may appear
// under more than one category.
type Mapping map[Category][]int

// DefaultMapping returns the scoring key of the instrument.
//
// Statement 14 is listed under both Avoidance and Collaboration. The text
// reads like an Avoidance item, but the key is kept as published; see
// SharedOrdinals.
func DefaultMapping() Mapping {
	return Mapping{
		Avoidance:     {6, 14, 16, 17, 25},
		Aggression:    {3, 7, 8, 15, 24},
		Accommodation: {1, 9, 12, 19, 22},
		Compromise:    {5, 10, 11, 20, 23},
		Collaboration: {2, 4, 14, 18, 21},
	}
}

// CategoriesFor returns every category whose set contains ordinal, in
// display order.
func (m Mapping) CategoriesFor(ordinal int) []Category {
	var out []Category
	for _, c := range displayOrder {
		for _, o := range m[c] {
			if o == ordinal {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// SharedOrdinals returns the ordinals that count toward more than one
// category, ascending.
func (m Mapping) SharedOrdinals() []int {
	seen := make(map[int]int)
	for _, ordinals := range m {
		for _, o := range ordinals {
			seen[o]++
		}
	}
	var shared []int
	for o, n := range seen {
		if n > 1 {
			shared = append(shared, o)
		}
	}
	sort.Ints(shared)
	return shared
}

// Unmapped returns ordinals in 1..StatementCount that no category scores.
func (m Mapping) Unmapped() []int {
	var out []int
	for o := 1; o <= StatementCount; o++ {
		if len(m.CategoriesFor(o)) == 0 {
			out = append(out, o)
		}
	}
	return out
}
