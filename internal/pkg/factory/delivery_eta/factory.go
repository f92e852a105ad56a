package delivery_eta

import (
	"math"
	"time"

	"github.com/Ralet11/pandaApp/internal/entities"
)

// Average speeds in km/h used to turn a courier position into an arrival
// estimate shown on the tracking screen.
const (
	onFootSpeedKmh  = 5.0
	scooterSpeedKmh = 18.0
	carSpeedKmh     = 30.0

	earthRadiusKm = 6371.0

	minETA = 1 * time.Minute
)

type ETAFactory struct{}

func New() *ETAFactory {
	return &ETAFactory{}
}

// CalculateETA estimates how long the courier needs to reach the
// destination. Estimates never drop below one minute; the courier is
// "arriving", not "arrived", until the backend says otherwise.
func (f *ETAFactory) CalculateETA(courier entities.CourierPosition, destLat, destLng float64) time.Duration {
	distanceKm := haversineKm(courier.Lat, courier.Lng, destLat, destLng)

	speed := speedFor(courier.Transport)
	eta := time.Duration(distanceKm / speed * float64(time.Hour))

	if eta < minETA {
		return minETA
	}
	return eta.Round(time.Minute)
}

func speedFor(transport entities.CourierTransportType) float64 {
	switch transport {
	case entities.OnFoot:
		return onFootSpeedKmh
	case entities.Scooter:
		return scooterSpeedKmh
	case entities.Car:
		return carSpeedKmh
	default:
		return scooterSpeedKmh
	}
}

func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const degToRad = math.Pi / 180

	dLat := (lat2 - lat1) * degToRad
	dLng := (lng2 - lng1) * degToRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
