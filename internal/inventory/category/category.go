// Package category holds the fixed catalog of item categories.
package category

// Category is the index of an item category.
type Category int

const (
	Fruit Category = iota
	Vegetables
	Diary
	Clothes
	Other
)

// Count is the number of known categories.
const Count = 5

var displayNames = [Count]string{
	Fruit:      "Fruit",
	Vegetables: "Vegetables",
	Diary:      "Diary",
	Clothes:    "Clothes",
	Other:      "Other",
}

// IsValid reports whether index refers to a known category.
func IsValid(index int) bool {
	return index >= 0 && index < Count
}

// DisplayName returns the display name of the category at index,
// or an empty string if the index is out of range.
func DisplayName(index int) string {
	if !IsValid(index) {
		return ""
	}
	return displayNames[index]
}

// All returns every category in index order.
func All() []Category {
	all := make([]Category, Count)
	for i := range all {
		all[i] = Category(i)
	}
	return all
}

// Parse looks up a category by its display name.
func Parse(name string) (Category, bool) {
	for i, n := range displayNames {
		if n == name {
			return Category(i), true
		}
	}
	return 0, false
}

func (c Category) IsValid() bool {
	return IsValid(int(c))
}

func (c Category) String() string {
	return DisplayName(int(c))
}
