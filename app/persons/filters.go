package persons

import (
	"github.com/gin-gonic/gin"
)

const listQueryKey = "persons_list_query"

// ListQuery is the normalized search and sort state of a person listing
type ListQuery struct {
	SearchBy     SearchField `json:"search_by"`
	SearchString string      `json:"search_string"`
	SortBy       SortField   `json:"sort_by"`
	SortOrder    SortOrder   `json:"sort_order"`
}

// ListMeta is returned alongside a person listing
type ListMeta struct {
	Count int `json:"count"`
	ListQuery
}

// PersonsListFilter normalizes the listing query. An unknown search_by falls
// back to person_name and a missing sort_by to person_name ascending.
func PersonsListFilter() gin.HandlerFunc {
	return func(c *gin.Context) {
		q := ListQuery{
			SearchBy:     SearchByPersonName,
			SearchString: c.Query("search_string"),
			SortBy:       SortByPersonName,
			SortOrder:    ParseSortOrder(c.Query("sort_order")),
		}
		if f, ok := ParseSearchField(c.Query("search_by")); ok {
			q.SearchBy = f
		}
		if raw, present := c.GetQuery("sort_by"); present {
			// an unknown sort field leaves the listing in store order
			f, _ := ParseSortField(raw)
			q.SortBy = f
		}

		c.Set(listQueryKey, q)
		c.Next()
	}
}

// ListQueryFrom returns the query stored by PersonsListFilter, or the defaults
func ListQueryFrom(c *gin.Context) ListQuery {
	if v, ok := c.Get(listQueryKey); ok {
		if q, ok := v.(ListQuery); ok {
			return q
		}
	}
	return ListQuery{SearchBy: SearchByPersonName, SortBy: SortByPersonName, SortOrder: SortAsc}
}
