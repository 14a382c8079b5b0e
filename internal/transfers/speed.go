package transfers

import "time"

// walkingSpeedKmh is the assumed maximum walking pace, grounded on
// original_source/common/src/util/speed.rs's MAX_WALKING_SPEED (10 km/h).
const walkingSpeedKmh = 10.0

// maxWalkingDuration is the default reachability cap for CrowFly transfers,
// matching original_source's MAX_WALKING_DURATION.
const maxWalkingDuration = 15 * time.Minute

// timeToTravel converts a distance in meters to a duration at the given
// speed in km/h.
func timeToTravel(meters float64, speedKmh float64) time.Duration {
	metersPerSecond := speedKmh * 1000.0 / 3600.0
	seconds := meters / metersPerSecond
	return time.Duration(seconds * float64(time.Second))
}
