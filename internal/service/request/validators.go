package request

import (
	"strings"

	"dispatch/internal/entities"
)

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

func isValidPoint(point entities.GeoPoint) bool {
	return point.Lat >= -90 && point.Lat <= 90 &&
		point.Lon >= -180 && point.Lon <= 180
}
