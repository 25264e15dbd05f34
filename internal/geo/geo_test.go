package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_Symmetric(t *testing.T) {
	points := []Point{
		{Lat: 12.97, Lng: 77.59},
		{Lat: 13.10, Lng: 77.70},
		{Lat: -33.8688, Lng: 151.2093},
		{Lat: 51.5074, Lng: -0.1278},
		{Lat: 89.9, Lng: -179.9},
		{Lat: 0, Lng: 0},
	}

	for _, a := range points {
		for _, b := range points {
			assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9, "distance %s <-> %s", a, b)
		}
		assert.Equal(t, 0.0, Distance(a, a))
	}
}

func TestDistance_KnownValues(t *testing.T) {
	// Один градус меридиана ~ 111.19 км
	assert.InDelta(t, 111.19, Distance(Point{Lat: 0, Lng: 0}, Point{Lat: 1, Lng: 0}), 0.01)

	// Лондон - Париж ~ 343.5 км
	london := Point{Lat: 51.5074, Lng: -0.1278}
	paris := Point{Lat: 48.8566, Lng: 2.3522}
	assert.InDelta(t, 343.5, Distance(london, paris), 1.0)

	// Антиподы - половина окружности
	assert.InDelta(t, math.Pi*EarthRadiusKm, Distance(Point{Lat: 0, Lng: 0}, Point{Lat: 0, Lng: 180}), 1e-6)
}

func TestPointValidate(t *testing.T) {
	tests := []struct {
		name    string
		point   Point
		wantErr bool
	}{
		{name: "valid", point: Point{Lat: 12.97, Lng: 77.59}},
		{name: "bounds", point: Point{Lat: -90, Lng: 180}},
		{name: "latitude too big", point: Point{Lat: 90.0001, Lng: 0}, wantErr: true},
		{name: "longitude too small", point: Point{Lat: 0, Lng: -180.5}, wantErr: true},
		{name: "nan", point: Point{Lat: math.NaN(), Lng: 0}, wantErr: true},
		{name: "inf", point: Point{Lat: 0, Lng: math.Inf(1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.point.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidCoordinate)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestFromNullable(t *testing.T) {
	lat, lng := 12.97, 77.59

	p, ok := FromNullable(&lat, &lng)
	require.True(t, ok)
	assert.Equal(t, Point{Lat: lat, Lng: lng}, p)

	_, ok = FromNullable(nil, &lng)
	assert.False(t, ok)

	_, ok = FromNullable(&lat, nil)
	assert.False(t, ok)
}

func TestRank_OrdersByDistance(t *testing.T) {
	origin := Point{Lat: 0, Lng: 0}
	// ~5 км, ~1 км, ~10 км к северу
	items := []Point{
		{Lat: 0.045, Lng: 0},
		{Lat: 0.009, Lng: 0},
		{Lat: 0.09, Lng: 0},
	}

	ranked := Rank(origin, items, func(p Point) Point { return p })

	require.Len(t, ranked, 3)
	assert.Equal(t, items[1], ranked[0].Item)
	assert.Equal(t, items[0], ranked[1].Item)
	assert.Equal(t, items[2], ranked[2].Item)
	assert.InDelta(t, 1.0, ranked[0].DistanceKm, 0.01)
	assert.InDelta(t, 5.0, ranked[1].DistanceKm, 0.01)
	assert.InDelta(t, 10.0, ranked[2].DistanceKm, 0.01)
}

func TestRank_StableForTies(t *testing.T) {
	type doc struct {
		id    string
		point Point
	}
	origin := Point{Lat: 10, Lng: 10}
	same := Point{Lat: 10.01, Lng: 10}
	items := []doc{
		{id: "first", point: same},
		{id: "second", point: same},
		{id: "third", point: same},
	}

	ranked := Rank(origin, items, func(d doc) Point { return d.point })

	require.Len(t, ranked, 3)
	assert.Equal(t, "first", ranked[0].Item.id)
	assert.Equal(t, "second", ranked[1].Item.id)
	assert.Equal(t, "third", ranked[2].Item.id)
}

func TestRank_Empty(t *testing.T) {
	ranked := Rank(Point{}, []Point{}, func(p Point) Point { return p })
	assert.Empty(t, ranked)
}
