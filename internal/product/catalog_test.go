package product

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []Product {
	return []Product{
		{ID: "p1", Title: "Netflix Premium", Description: "4K streaming plan", Price: 1100},
		{ID: "p2", Title: "Spotify Premium", Description: "Ad-free music", Price: 450},
		{ID: "p3", Title: "YouTube Premium", Description: "Background play and downloads", Price: 350},
		{ID: "p4", Title: "Canva Pro", Description: "Design tool subscription", Price: 600},
		{ID: "p5", Title: "Tinder Gold", Description: "Dating subscription", Price: 1500},
	}
}

func ids(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestQuery_Filter(t *testing.T) {
	products := sampleProducts()

	t.Run("Empty query includes all", func(t *testing.T) {
		res := Query(products, "", SortDefault)
		assert.Len(t, res, len(products))
	})

	t.Run("Case-insensitive substring on title", func(t *testing.T) {
		res := Query(products, "PREMIUM", SortDefault)
		assert.Equal(t, []string{"p1", "p2", "p3"}, ids(res))
	})

	t.Run("Matches description too", func(t *testing.T) {
		res := Query(products, "dating", SortDefault)
		assert.Equal(t, []string{"p5"}, ids(res))
	})

	t.Run("No match", func(t *testing.T) {
		res := Query(products, "nordvpn", SortDefault)
		assert.Empty(t, res)
	})

	t.Run("Source list never mutated", func(t *testing.T) {
		before := ids(products)
		Query(products, "premium", SortPriceDesc)
		assert.Equal(t, before, ids(products))
	})
}

func TestQuery_Monotonicity(t *testing.T) {
	// Extending a query must never widen the result set.
	products := sampleProducts()
	base := "pre"
	extended := "premium"

	wide := Query(products, base, SortDefault)
	narrow := Query(products, extended, SortDefault)

	wideIDs := ids(wide)
	for _, id := range ids(narrow) {
		assert.Contains(t, wideIDs, id)
	}
	assert.LessOrEqual(t, len(narrow), len(wide))
}

func TestQuery_Sort(t *testing.T) {
	products := sampleProducts()

	t.Run("Price ascending", func(t *testing.T) {
		res := Query(products, "", SortPriceAsc)
		assert.Equal(t, []string{"p3", "p2", "p4", "p1", "p5"}, ids(res))
	})

	t.Run("Price descending is exact reverse without ties", func(t *testing.T) {
		asc := Query(products, "", SortPriceAsc)
		desc := Query(products, "", SortPriceDesc)

		require.Equal(t, len(asc), len(desc))
		for i := range asc {
			assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
		}
	})

	t.Run("Name ascending", func(t *testing.T) {
		res := Query(products, "", SortNameAsc)
		for i := 1; i < len(res); i++ {
			assert.LessOrEqual(t, strings.Compare(res[i-1].Title, res[i].Title), 0)
		}
	})

	t.Run("Default preserves source order", func(t *testing.T) {
		res := Query(products, "", SortDefault)
		assert.Equal(t, ids(products), ids(res))
	})

	t.Run("Ties are stable", func(t *testing.T) {
		tied := []Product{
			{ID: "a", Title: "A", Price: 100},
			{ID: "b", Title: "B", Price: 100},
			{ID: "c", Title: "C", Price: 100},
		}
		res := Query(tied, "", SortPriceAsc)
		assert.Equal(t, []string{"a", "b", "c"}, ids(res))
	})
}

func TestCatalog(t *testing.T) {
	c := NewCatalog()
	c.Replace(sampleProducts())

	t.Run("Snapshot returns a copy", func(t *testing.T) {
		snap := c.Snapshot()
		require.Len(t, snap, 5)
		snap[0].Title = "mutated"

		again := c.Snapshot()
		assert.Equal(t, "Netflix Premium", again[0].Title)
	})

	t.Run("ByID", func(t *testing.T) {
		p, ok := c.ByID("p4")
		require.True(t, ok)
		assert.Equal(t, "Canva Pro", p.Title)

		_, ok = c.ByID("missing")
		assert.False(t, ok)
	})

	t.Run("BySlug", func(t *testing.T) {
		c.Replace([]Product{{ID: "p1", Title: "Netflix Premium", Slug: "netflix-premium"}})
		p, ok := c.BySlug("netflix-premium")
		require.True(t, ok)
		assert.Equal(t, "p1", p.ID)
	})
}
