package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Course holds the schema definition for the Course entity.
type Course struct {
	ent.Schema
}

// Fields of the Course.
func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Unique(),
		field.UUID("owner_id", uuid.UUID{}),
		field.UUID("category_id", uuid.UUID{}),
		field.String("title"),
		field.Text("description").
			Default(""),
		field.String("thumbnail_url").
			Default(""),
		field.Time("created_at").
			Immutable().
			Default(time.Now),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Course.
func (Course) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("courses").
			Field("owner_id").
			Unique().
			Required(),
		edge.From("category", Category.Type).
			Ref("courses").
			Field("category_id").
			Unique().
			Required(),
		edge.To("lessons", Lesson.Type),
		edge.To("enrollments", Enrollment.Type),
		edge.To("favorites", Favorite.Type),
	}
}

// Indexes of the Course.
func (Course) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("category_id"),
	}
}
