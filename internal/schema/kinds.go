// Package schema declares the record kinds accepted and served by the
// portfolio backend: structural validation on the write path, and a static
// shape registry for the introspection surface.
package schema

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Collection names, one per record kind (lowercase kind name).
const (
	CollectionUser        = "user"
	CollectionProduct     = "product"
	CollectionMessage     = "message"
	CollectionInteraction = "interaction"
	CollectionTestimonial = "testimonial"
	CollectionProject     = "project"
)

// Record is satisfied by every kind in this package: a constructed value
// that can report its field-level constraint violations.
type Record interface {
	Validate() error
}

// Message is a contact-form submission from a site visitor.
// Immutable once stored; there is no update or delete surface.
type Message struct {
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Subject   string    `json:"subject,omitempty" bson:"subject,omitempty"`
	Body      string    `json:"body" bson:"body"`
	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

func (m Message) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Name, validation.Required),
		validation.Field(&m.Email, validation.Required, is.EmailFormat),
		validation.Field(&m.Body, validation.Required),
	)
}

// Interaction is one visitor event in the append-only interaction log.
// created_at is stamped by the server; callers cannot supply it.
type Interaction struct {
	SessionID string    `json:"session_id" bson:"session_id"`
	Event     string    `json:"event" bson:"event"`
	Value     string    `json:"value,omitempty" bson:"value,omitempty"`
	Path      string    `json:"path,omitempty" bson:"path,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

func (i Interaction) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.SessionID, validation.Required),
		validation.Field(&i.Event, validation.Required),
	)
}

// Testimonial is a quote shown on the site. Read-only through the API.
type Testimonial struct {
	Author    string `json:"author" bson:"author"`
	Role      string `json:"role,omitempty" bson:"role,omitempty"`
	Quote     string `json:"quote" bson:"quote"`
	AvatarURL string `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
}

func (t Testimonial) Validate() error {
	return validation.ValidateStruct(&t,
		validation.Field(&t.Author, validation.Required),
		validation.Field(&t.Quote, validation.Required),
	)
}

// Project is a portfolio entry. Read-only through the API. The link fields
// are plain strings: the built-in content uses placeholder values ("#")
// that a URL rule would reject.
type Project struct {
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description" bson:"description"`
	Tags        []string `json:"tags" bson:"tags"`
	ImageURL    string   `json:"image_url,omitempty" bson:"image_url,omitempty"`
	DemoURL     string   `json:"demo_url,omitempty" bson:"demo_url,omitempty"`
	SourceURL   string   `json:"source_url,omitempty" bson:"source_url,omitempty"`
}

func (p Project) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Description, validation.Required),
	)
}

// User is an example kind kept for admin tooling; no route writes or reads
// it. Pointer fields record presence so range rules only fire when a value
// was supplied.
type User struct {
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Address  string `json:"address,omitempty" bson:"address,omitempty"`
	Age      *int   `json:"age,omitempty" bson:"age,omitempty"`
	IsActive *bool  `json:"is_active,omitempty" bson:"is_active,omitempty"`
}

func (u User) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.Name, validation.Required),
		validation.Field(&u.Email, validation.Required, is.EmailFormat),
		validation.Field(&u.Age, validation.Min(0), validation.Max(120)),
	)
}

// Product is the second example kind. Price is a pointer so that a zero
// price counts as supplied.
type Product struct {
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Price       *float64 `json:"price" bson:"price"`
	Category    string   `json:"category" bson:"category"`
	InStock     *bool    `json:"in_stock,omitempty" bson:"in_stock,omitempty"`
}

func (p Product) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required),
		validation.Field(&p.Price, validation.NotNil, validation.Min(0.0)),
		validation.Field(&p.Category, validation.Required),
	)
}
