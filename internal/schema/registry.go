package schema

import "sort"

// FieldSpec describes one field of a record kind. The JSON shape follows
// JSON Schema property conventions so external tooling can consume it.
type FieldSpec struct {
	Type    string     `json:"type"`
	Format  string     `json:"format,omitempty"`
	Items   *FieldSpec `json:"items,omitempty"`
	Default any        `json:"default,omitempty"`
	Minimum *float64   `json:"minimum,omitempty"`
	Maximum *float64   `json:"maximum,omitempty"`
}

// KindSpec is the machine-readable shape of one record kind.
type KindSpec struct {
	Title       string               `json:"title"`
	Type        string               `json:"type"`
	Description string               `json:"description,omitempty"`
	Properties  map[string]FieldSpec `json:"properties"`
	Required    []string             `json:"required,omitempty"`
}

func bound(v float64) *float64 { return &v }

// registry maps kind name to its shape. Built once from literals — the
// introspection surface never reflects over types at runtime.
var registry = map[string]KindSpec{
	"User": {
		Title:       "User",
		Type:        "object",
		Description: "Users collection schema",
		Properties: map[string]FieldSpec{
			"name":      {Type: "string"},
			"email":     {Type: "string", Format: "email"},
			"address":   {Type: "string"},
			"age":       {Type: "integer", Minimum: bound(0), Maximum: bound(120)},
			"is_active": {Type: "boolean", Default: true},
		},
		Required: []string{"name", "email"},
	},
	"Product": {
		Title:       "Product",
		Type:        "object",
		Description: "Products collection schema",
		Properties: map[string]FieldSpec{
			"title":       {Type: "string"},
			"description": {Type: "string"},
			"price":       {Type: "number", Minimum: bound(0)},
			"category":    {Type: "string"},
			"in_stock":    {Type: "boolean", Default: true},
		},
		Required: []string{"title", "price", "category"},
	},
	"Message": {
		Title:       "Message",
		Type:        "object",
		Description: "Contact messages from site visitors",
		Properties: map[string]FieldSpec{
			"name":       {Type: "string"},
			"email":      {Type: "string", Format: "email"},
			"subject":    {Type: "string"},
			"body":       {Type: "string"},
			"created_at": {Type: "string", Format: "date-time"},
		},
		Required: []string{"name", "email", "body"},
	},
	"Interaction": {
		Title:       "Interaction",
		Type:        "object",
		Description: "Tracks user interactions for subtle personalization",
		Properties: map[string]FieldSpec{
			"session_id": {Type: "string"},
			"event":      {Type: "string"},
			"value":      {Type: "string"},
			"path":       {Type: "string"},
			"created_at": {Type: "string", Format: "date-time"},
		},
		Required: []string{"session_id", "event"},
	},
	"Testimonial": {
		Title:       "Testimonial",
		Type:        "object",
		Description: "Testimonials shown on the site",
		Properties: map[string]FieldSpec{
			"author":     {Type: "string"},
			"role":       {Type: "string"},
			"quote":      {Type: "string"},
			"avatar_url": {Type: "string"},
		},
		Required: []string{"author", "quote"},
	},
	"Project": {
		Title:       "Project",
		Type:        "object",
		Description: "Projects displayed in portfolio",
		Properties: map[string]FieldSpec{
			"title":       {Type: "string"},
			"description": {Type: "string"},
			"tags":        {Type: "array", Items: &FieldSpec{Type: "string"}, Default: []string{}},
			"image_url":   {Type: "string"},
			"demo_url":    {Type: "string"},
			"source_url":  {Type: "string"},
		},
		Required: []string{"title", "description"},
	},
}

// Kinds returns the registered kind names in sorted order.
func Kinds() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the shape description for one kind.
func Describe(name string) (KindSpec, bool) {
	spec, ok := registry[name]
	return spec, ok
}

// DescribeAll returns every kind's shape description keyed by kind name.
// The result is shared read-only state; callers must not mutate it.
func DescribeAll() map[string]KindSpec {
	return registry
}
