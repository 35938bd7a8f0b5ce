package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestFromDocumentStripsID(t *testing.T) {
	doc := bson.M{
		"_id":        primitive.NewObjectID(),
		"author":     "Ava Chen",
		"role":       "Creative Director",
		"quote":      "A visionary.",
		"avatar_url": "https://example.com/a.png",
	}
	var out Testimonial
	require.NoError(t, FromDocument(doc, &out))
	assert.Equal(t, "Ava Chen", out.Author)
	assert.Equal(t, "Creative Director", out.Role)
	assert.Equal(t, "A visionary.", out.Quote)
	assert.Equal(t, "https://example.com/a.png", out.AvatarURL)

	// input document is left intact
	_, hasID := doc["_id"]
	assert.True(t, hasID)
}

func TestFromDocumentRejectsInvalid(t *testing.T) {
	doc := bson.M{"author": "Ava Chen"} // quote missing
	var out Testimonial
	err := FromDocument(doc, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid document")
}

func TestFromDocumentRejectsTypeMismatch(t *testing.T) {
	doc := bson.M{
		"title":       "Nebula",
		"description": "A design system",
		"tags":        "not-an-array",
	}
	var out Project
	err := FromDocument(doc, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode document")
}

func TestFromDocumentProjectTags(t *testing.T) {
	doc := bson.M{
		"title":       "Aurora Graph",
		"description": "Visual graph",
		"tags":        bson.A{"WebGL", "D3"},
	}
	var out Project
	require.NoError(t, FromDocument(doc, &out))
	assert.Equal(t, []string{"WebGL", "D3"}, out.Tags)
}
