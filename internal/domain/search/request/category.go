package request

// Category search parameter bounds.
const (
	CategoryDefaultLimit = 20
	CategoryMaxLimit     = 50
)

// Category is a validated category search request.
type Category struct {
	query    string
	parentID string
	limit    int
}

// NewCategory validates and normalizes raw category search arguments.
// All fields are optional; limit defaults to 20.
func NewCategory(args map[string]any) (Category, error) {
	query, _, err := stringArg(args, "query")
	if err != nil {
		return Category{}, err
	}

	parentID, _, err := stringArg(args, "parent_id")
	if err != nil {
		return Category{}, err
	}

	limit, err := limitArg(args, CategoryDefaultLimit, CategoryMaxLimit)
	if err != nil {
		return Category{}, err
	}

	return Category{query: query, parentID: parentID, limit: limit}, nil
}

// Query returns the category name filter ("" when unset).
func (c *Category) Query() string { return c.query }

// ParentID returns the parent category ID ("" when unset).
func (c *Category) ParentID() string { return c.parentID }

// Limit returns the maximum categories to return.
func (c *Category) Limit() int { return c.limit }
