// Package cities provides the landmark city catalog and corridor selection.
package cities

// City is a static landmark city used as a candidate route waypoint.
type City struct {
	Name   string
	Lat    float64
	Lng    float64
	Region string
}

// Catalog is an immutable lookup table of landmark cities, loaded once at
// process start.
type Catalog struct {
	cities []City
}

// NewCatalog creates a catalog from the given cities.
func NewCatalog(cities []City) *Catalog {
	cpy := make([]City, len(cities))
	copy(cpy, cities)
	return &Catalog{cities: cpy}
}

// DefaultCatalog returns the built-in catalog of major North American cities.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultCities)
}

// Cities returns a copy of the catalog contents.
func (c *Catalog) Cities() []City {
	cpy := make([]City, len(c.cities))
	copy(cpy, c.cities)
	return cpy
}

// Len returns the number of cities in the catalog.
func (c *Catalog) Len() int {
	return len(c.cities)
}

var defaultCities = []City{
	{Name: "New York", Lat: 40.7128, Lng: -74.0060, Region: "NY"},
	{Name: "Boston", Lat: 42.3601, Lng: -71.0589, Region: "MA"},
	{Name: "Philadelphia", Lat: 39.9526, Lng: -75.1652, Region: "PA"},
	{Name: "Washington", Lat: 38.9072, Lng: -77.0369, Region: "DC"},
	{Name: "Pittsburgh", Lat: 40.4406, Lng: -79.9959, Region: "PA"},
	{Name: "Atlanta", Lat: 33.7490, Lng: -84.3880, Region: "GA"},
	{Name: "Miami", Lat: 25.7617, Lng: -80.1918, Region: "FL"},
	{Name: "Columbus", Lat: 39.9612, Lng: -82.9988, Region: "OH"},
	{Name: "Detroit", Lat: 42.3314, Lng: -83.0458, Region: "MI"},
	{Name: "Indianapolis", Lat: 39.7684, Lng: -86.1581, Region: "IN"},
	{Name: "Nashville", Lat: 36.1627, Lng: -86.7816, Region: "TN"},
	{Name: "Chicago", Lat: 41.8781, Lng: -87.6298, Region: "IL"},
	{Name: "Memphis", Lat: 35.1495, Lng: -90.0490, Region: "TN"},
	{Name: "St. Louis", Lat: 38.6270, Lng: -90.1994, Region: "MO"},
	{Name: "Minneapolis", Lat: 44.9778, Lng: -93.2650, Region: "MN"},
	{Name: "Kansas City", Lat: 39.0997, Lng: -94.5786, Region: "MO"},
	{Name: "Dallas", Lat: 32.7767, Lng: -96.7970, Region: "TX"},
	{Name: "Oklahoma City", Lat: 35.4676, Lng: -97.5164, Region: "OK"},
	{Name: "Houston", Lat: 29.7604, Lng: -95.3698, Region: "TX"},
	{Name: "Austin", Lat: 30.2672, Lng: -97.7431, Region: "TX"},
	{Name: "Denver", Lat: 39.7392, Lng: -104.9903, Region: "CO"},
	{Name: "Albuquerque", Lat: 35.0844, Lng: -106.6504, Region: "NM"},
	{Name: "Salt Lake City", Lat: 40.7608, Lng: -111.8910, Region: "UT"},
	{Name: "Phoenix", Lat: 33.4484, Lng: -112.0740, Region: "AZ"},
	{Name: "Las Vegas", Lat: 36.1699, Lng: -115.1398, Region: "NV"},
	{Name: "Los Angeles", Lat: 34.0522, Lng: -118.2437, Region: "CA"},
	{Name: "San Diego", Lat: 32.7157, Lng: -117.1611, Region: "CA"},
	{Name: "San Francisco", Lat: 37.7749, Lng: -122.4194, Region: "CA"},
	{Name: "Portland", Lat: 45.5152, Lng: -122.6784, Region: "OR"},
	{Name: "Seattle", Lat: 47.6062, Lng: -122.3321, Region: "WA"},
}
