package dashboard

import (
	"fmt"
	"strconv"
)

// GeolocationDeniedMessage is shown when the caller's position is unavailable
const GeolocationDeniedMessage = "Location access denied or unavailable."

// Coordinates is the outcome of a one-shot position lookup on the client.
// A non-empty Error or a missing coordinate means the lookup was denied.
type Coordinates struct {
	Latitude  *float64
	Longitude *float64
	Error     string
}

// Denied reports whether the position lookup failed
func (c Coordinates) Denied() bool {
	return c.Error != "" || c.Latitude == nil || c.Longitude == nil
}

// Query formats the coordinates as the free-text location "lat, lon"
func (c Coordinates) Query() string {
	return fmt.Sprintf("%s, %s",
		strconv.FormatFloat(*c.Latitude, 'f', -1, 64),
		strconv.FormatFloat(*c.Longitude, 'f', -1, 64))
}
