package cities_test

import (
	"testing"

	"github.com/cleanairroutes/cleanairroutes/internal/cities"
)

// testCatalog lays cities along the equatorial segment (0,0)→(0,10), so the
// projection parameter of each city is simply lng/10.
func testCatalog() *cities.Catalog {
	return cities.NewCatalog([]cities.City{
		{Name: "Far", Lat: 0, Lng: 8, Region: "XX"},
		{Name: "Near", Lat: 0, Lng: 2, Region: "XX"},
		{Name: "Mid", Lat: 0, Lng: 5, Region: "XX"},
		{Name: "TooClose", Lat: 0, Lng: 0.5, Region: "XX"},
		{Name: "OffCorridor", Lat: 5, Lng: 5, Region: "XX"},
	})
}

func TestSelector_SelectCities_OrderedByProjection(t *testing.T) {
	selector := cities.NewSelector(testCatalog(), cities.DefaultSelectorConfig())

	selected := selector.SelectCities(0, 0, 0, 10, 10)

	if len(selected) != 3 {
		t.Fatalf("SelectCities() returned %d cities, want 3", len(selected))
	}

	wantOrder := []string{"Near", "Mid", "Far"}
	for i, want := range wantOrder {
		if selected[i].Name != want {
			t.Errorf("selected[%d].Name = %q, want %q", i, selected[i].Name, want)
		}
	}
}

func TestSelector_SelectCities_ExcludesNearEndpoints(t *testing.T) {
	selector := cities.NewSelector(testCatalog(), cities.DefaultSelectorConfig())

	selected := selector.SelectCities(0, 0, 0, 10, 10)

	for _, c := range selected {
		if c.Name == "TooClose" {
			t.Error("city at projection 0.05 should be excluded by the projection band")
		}
	}
}

func TestSelector_SelectCities_ExcludesOutsideCorridor(t *testing.T) {
	selector := cities.NewSelector(testCatalog(), cities.DefaultSelectorConfig())

	selected := selector.SelectCities(0, 0, 0, 10, 10)

	for _, c := range selected {
		if c.Name == "OffCorridor" {
			t.Error("city outside the corridor bounding box should be excluded")
		}
	}
}

func TestSelector_SelectCities_TruncatesToMax(t *testing.T) {
	selector := cities.NewSelector(testCatalog(), cities.DefaultSelectorConfig())

	selected := selector.SelectCities(0, 0, 0, 10, 2)

	if len(selected) != 2 {
		t.Fatalf("SelectCities() returned %d cities, want 2", len(selected))
	}

	// Truncation keeps the cities earliest along the segment.
	if selected[0].Name != "Near" || selected[1].Name != "Mid" {
		t.Errorf("got %q, %q, want Near, Mid", selected[0].Name, selected[1].Name)
	}
}

func TestSelector_SelectCities_ZeroLengthSegment(t *testing.T) {
	selector := cities.NewSelector(testCatalog(), cities.DefaultSelectorConfig())

	selected := selector.SelectCities(0, 5, 0, 5, 10)

	if selected != nil {
		t.Errorf("SelectCities() on a zero-length segment = %v, want nil", selected)
	}
}

func TestSelector_SelectCities_ZeroMax(t *testing.T) {
	selector := cities.NewSelector(testCatalog(), cities.DefaultSelectorConfig())

	if got := selector.SelectCities(0, 0, 0, 10, 0); got != nil {
		t.Errorf("SelectCities() with maxCities=0 = %v, want nil", got)
	}
}

func TestSelector_SelectCities_DefaultCatalogCrossCountry(t *testing.T) {
	selector := cities.NewSelector(cities.DefaultCatalog(), cities.DefaultSelectorConfig())

	// New York to Los Angeles crosses most of the catalog's corridor.
	srcLat, srcLng := 40.7128, -74.0060
	dstLat, dstLng := 34.0522, -118.2437

	selected := selector.SelectCities(srcLat, srcLng, dstLat, dstLng, 4)

	if len(selected) == 0 {
		t.Fatal("expected intermediate cities on a cross-country corridor")
	}
	if len(selected) > 4 {
		t.Fatalf("SelectCities() returned %d cities, want at most 4", len(selected))
	}

	// Verify ordering by recomputing the projection parameter.
	dLat := dstLat - srcLat
	dLng := dstLng - srcLng
	segLenSq := dLat*dLat + dLng*dLng

	prev := -1.0
	for _, c := range selected {
		tProj := (dLat*(c.Lat-srcLat) + dLng*(c.Lng-srcLng)) / segLenSq
		if tProj <= prev {
			t.Errorf("city %q out of order along the corridor", c.Name)
		}
		prev = tProj
	}
}

func TestNewSelector_NormalizesBadConfig(t *testing.T) {
	// Inverted projection band falls back to the defaults instead of
	// rejecting every city.
	selector := cities.NewSelector(testCatalog(), cities.SelectorConfig{
		BoxMargin:     -1,
		MinProjection: 0.9,
		MaxProjection: 0.1,
	})

	selected := selector.SelectCities(0, 0, 0, 10, 10)
	if len(selected) != 3 {
		t.Fatalf("SelectCities() with normalized config returned %d cities, want 3", len(selected))
	}
}
