package geo

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
)

// EarthRadiusKm - средний радиус Земли, используемый в формуле гаверсинусов
const EarthRadiusKm = 6371.0

var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Point - точка на поверхности Земли в градусах
type Point struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

// Validate проверяет, что координаты лежат в допустимых диапазонах
func (p Point) Validate() error {
	if math.IsNaN(p.Lat) || math.IsInf(p.Lat, 0) || p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidCoordinate, p.Lat)
	}
	if math.IsNaN(p.Lng) || math.IsInf(p.Lng, 0) || p.Lng < -180 || p.Lng > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidCoordinate, p.Lng)
	}
	return nil
}

func (p Point) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lng)
}

// FromNullable собирает точку из nullable-колонок. Отсутствие любой из координат
// означает, что точки нет: подставлять (0,0) нельзя.
func FromNullable(lat, lng *float64) (Point, bool) {
	if lat == nil || lng == nil {
		return Point{}, false
	}
	return Point{Lat: *lat, Lng: *lng}, true
}

// Distance возвращает расстояние по дуге большого круга между a и b в километрах
func Distance(a, b Point) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Ranked - элемент вместе с вычисленным расстоянием до опорной точки
type Ranked[T any] struct {
	Item       T
	DistanceKm float64
}

// Rank сортирует элементы по возрастанию расстояния до origin.
// При равных расстояниях сохраняется исходный порядок.
// Координаты должны быть проверены вызывающей стороной.
func Rank[T any](origin Point, items []T, pointOf func(T) Point) []Ranked[T] {
	ranked := make([]Ranked[T], 0, len(items))
	for _, item := range items {
		ranked = append(ranked, Ranked[T]{
			Item:       item,
			DistanceKm: Distance(origin, pointOf(item)),
		})
	}
	slices.SortStableFunc(ranked, func(a, b Ranked[T]) int {
		return cmp.Compare(a.DistanceKm, b.DistanceKm)
	})
	return ranked
}
