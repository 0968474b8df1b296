package hotels

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taratrip/internal/models"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	resolver := NewResolver("boracay")

	testCases := []struct {
		name     string
		query    string
		expected models.Location
	}{
		{
			name:     "Known alias",
			query:    "palawan",
			expected: models.Location{Key: "g294255", Label: "Palawan, Philippines"},
		},
		{
			name:     "Alias with whitespace and case",
			query:    "  Cebu  ",
			expected: models.Location{Key: "g298460", Label: "Cebu City, Philippines"},
		},
		{
			name:     "Raw geo key in query",
			query:    "somewhere g123456 beach",
			expected: models.Location{Key: "g123456", Label: "Selected destination"},
		},
		{
			name:     "Unknown query falls back to default",
			query:    "atlantis",
			expected: models.Location{Key: "g294260", Label: "Boracay, Philippines"},
		},
		{
			name:     "Empty query falls back to default",
			query:    "",
			expected: models.Location{Key: "g294260", Label: "Boracay, Philippines"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, resolver.Resolve(tc.query))
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	t.Parallel()

	resolver := NewResolver("manila")

	for i := 0; i < 3; i++ {
		assert.Equal(t, resolver.Resolve("nowhere"), resolver.Resolve("nowhere"))
		assert.Equal(t, models.Location{Key: "g298573", Label: "Manila, Philippines"}, resolver.Resolve("nowhere"))
	}
}

func TestNewResolverUnknownDefault(t *testing.T) {
	t.Parallel()

	resolver := NewResolver("not-a-destination")

	assert.Equal(t, models.Location{Key: "g294260", Label: "Boracay, Philippines"}, resolver.Resolve(""))
}

func TestLocationsIsACopy(t *testing.T) {
	t.Parallel()

	table := Locations()
	assert.Len(t, table, 7)

	table["boracay"] = models.Location{Key: "broken", Label: "broken"}
	assert.Equal(t, "g294260", Locations()["boracay"].Key)
}
