package httpserver

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/Clark-Hu/movies-dashboard/internal/dashboard"
)

func TestBuildCriteria(t *testing.T) {
	values, _ := url.ParseQuery("year=2001,2003&year= 1999 &genre=Action,%20Comedy&genre=Drama&ratingMin=6.5&ratingMax=9")

	c, err := buildCriteria(values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := c.Years(); !reflect.DeepEqual(got, []int{1999, 2001, 2003}) {
		t.Fatalf("years = %v", got)
	}
	if got := c.Genres(); !reflect.DeepEqual(got, []string{"Action, Comedy", "Drama"}) {
		t.Fatalf("genres = %v", got)
	}
	if got := c.Rating(); got != (dashboard.RatingRange{Low: 6.5, High: 9}) {
		t.Fatalf("rating = %+v", got)
	}
}

func TestBuildCriteria_Defaults(t *testing.T) {
	c, err := buildCriteria(url.Values{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Years()) != 0 || len(c.Genres()) != 0 {
		t.Fatalf("expected no year/genre constraint, got %v %v", c.Years(), c.Genres())
	}
	if c.Rating() != dashboard.FullRange() {
		t.Fatalf("rating = %+v, want full range", c.Rating())
	}
}

func TestBuildCriteria_Invalid(t *testing.T) {
	cases := []string{
		"year=abc",
		"year=2001,x",
		"ratingMin=low",
		"ratingMax=11",
		"ratingMin=-1",
		"ratingMin=NaN",
		"ratingMin=8&ratingMax=7",
	}
	for _, raw := range cases {
		values, _ := url.ParseQuery(raw)
		if _, err := buildCriteria(values); err == nil {
			t.Fatalf("buildCriteria(%q) expected error", raw)
		}
	}
}
