package domain

// Category colors are presentation keys; the palette is fixed and the
// rendering layer owns what each key looks like.
var CategoryColors = []string{
	"red", "orange", "amber", "green", "teal",
	"blue", "indigo", "purple", "pink", "slate",
}

func ValidCategoryColor(color string) bool {
	for _, c := range CategoryColors {
		if c == color {
			return true
		}
	}
	return false
}

type Category struct {
	ID    int
	Name  string
	Color string

	// TaskCount is derived data: the number of tasks whose CategoryID
	// matches this category. The reconciler keeps the persisted copy in
	// step; user edits never set it directly.
	TaskCount int
}

type CreateCategoryInput struct {
	Name  string
	Color string
}

type CategoryPatch struct {
	Name  *string
	Color *string
}

func ApplyCategoryPatch(category Category, patch CategoryPatch) Category {
	if patch.Name != nil {
		category.Name = *patch.Name
	}
	if patch.Color != nil {
		category.Color = *patch.Color
	}
	return category
}
