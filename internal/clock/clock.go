package clock

// WordsForTime returns the ordered word tokens to illuminate for the given
// time. The hour is in 24-hour format (0-23), the minute 0-59; behavior is
// undefined outside those ranges, callers validate first.
//
// Minutes are bucketed into 5-minute intervals. From :25 onward the phrase
// references the next hour ("FÜF VOR HAUBI ACHTI" at 7:25).
func WordsForTime(hour, minute int) []string {
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	next := hour12%12 + 1

	words := []string{"ES", "ISCH"}

	switch minute / 5 {
	case 0:
		words = append(words, HourWords[hour12], "UHR")
	case 1:
		words = append(words, "FÜF", "AB", HourWords[hour12])
	case 2:
		words = append(words, "ZÄÄ", "AB", HourWords[hour12])
	case 3:
		words = append(words, "VIERT", "AB", HourWords[hour12])
	case 4:
		words = append(words, "ZWÄNZG", "AB", HourWords[hour12])
	case 5:
		words = append(words, "FÜF", "VOR", "HAUBI", HourWords[next])
	case 6:
		words = append(words, "HAUBI", HourWords[next])
	case 7:
		words = append(words, "FÜF", "AB", "HAUBI", HourWords[next])
	case 8:
		words = append(words, "ZWÄNZG", "VOR", HourWords[next])
	case 9:
		words = append(words, "VIERT", "VOR", HourWords[next])
	case 10:
		words = append(words, "ZÄÄ", "VOR", HourWords[next])
	case 11:
		words = append(words, "FÜF", "VOR", HourWords[next])
	}

	return words
}

// MinuteDots returns the number of corner dots (0-4) marking the minutes
// past the current 5-minute interval.
func MinuteDots(minute int) int {
	return minute % 5
}
