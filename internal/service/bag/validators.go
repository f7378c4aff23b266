package bag

import "unicode/utf8"

const maxCommentLength = 500

func isValidLocation(latitude, longitude *float64) bool {
	if latitude == nil && longitude == nil {
		return true
	}
	if latitude == nil || longitude == nil {
		return false
	}
	return *latitude >= -90 && *latitude <= 90 && *longitude >= -180 && *longitude <= 180
}

func isValidStars(stars int) bool {
	return stars >= 1 && stars <= 5
}

func isValidComment(comment string) bool {
	return utf8.RuneCountInString(comment) <= maxCommentLength
}
