package algorithm

import "math"

// 地球半径（米）
const earthRadius = 6371000

// HaversineDistance 计算两点间的球面距离（米）
// 使用 Haversine 公式
func HaversineDistance(loc1, loc2 Location) int {
	lat1 := toRadians(loc1.Latitude)
	lat2 := toRadians(loc2.Latitude)
	deltaLat := toRadians(loc2.Latitude - loc1.Latitude)
	deltaLng := toRadians(loc2.Longitude - loc1.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return int(earthRadius * c)
}

// toRadians 角度转弧度
func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// BoundingBox 包围盒，用于先粗筛再精确计算距离
type BoundingBox struct {
	MinLng float64
	MaxLng float64
	MinLat float64
	MaxLat float64
}

// BoxAround 以 center 为中心、radius 米为半径的包围盒
func BoxAround(center Location, radiusMeters int32) BoundingBox {
	// 纬度方向：1度约111km
	latDelta := float64(radiusMeters) / 111000.0

	// 经度方向：1度约111km * cos(lat)
	lngDelta := float64(radiusMeters) / (111000.0 * math.Cos(toRadians(center.Latitude)))

	return BoundingBox{
		MinLng: center.Longitude - lngDelta,
		MaxLng: center.Longitude + lngDelta,
		MinLat: center.Latitude - latDelta,
		MaxLat: center.Latitude + latDelta,
	}
}

// GrowRadius 按倍率扩大半径，封顶 max
func GrowRadius(current int32, growthRate float64, max int32) int32 {
	grown := int32(math.Ceil(float64(current) * growthRate))
	if grown <= current {
		grown = current + 1
	}
	if grown > max {
		return max
	}
	return grown
}
