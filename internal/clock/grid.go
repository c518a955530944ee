// Package clock maps a wall-clock time onto the Bärndütsch word grid.
//
// The clock face is the classic QLOCKTWO Swiss German layout: a 10x11 letter
// grid where the current time is read as a phrase ("ES ISCH FÜF VOR HAUBI
// ACHTI"). The mapping is a pure lookup: minute buckets of five select the
// phrase, the remainder drives the corner dots.
package clock

// Grid is the letter layout of the clock face, 10 rows of 11 runes each.
var Grid = [...]string{
	"ESKISCHAFÜF",
	"VIERTUBFZÄÄ",
	"ZWÄNZGSIVOR",
	"ABOHAUBIEGE",
	"EISZWÖISDRÜ",
	"VIERIFÜFIQT",
	"SÄCHSISIBNI",
	"ACHTINÜNIEL",
	"ZÄNIERBÖUFI",
	"ZWÖUFINAUHR",
}

// Grid dimensions in characters.
const (
	Rows = 10
	Cols = 11
)

// Word is the position of one word on the grid: its row and the inclusive
// column range it occupies.
type Word struct {
	Row   int
	Start int
	End   int
}

// Words maps every word token the clock can display to its grid position.
var Words = map[string]Word{
	// Always on
	"ES":   {0, 0, 1},
	"ISCH": {0, 3, 6},

	// Minute words
	"FÜF":    {0, 8, 10},
	"ZÄÄ":    {1, 8, 10},
	"VIERT":  {1, 0, 4},
	"ZWÄNZG": {2, 0, 5},

	// Connectors
	"VOR":   {2, 8, 10},
	"AB":    {3, 0, 1},
	"HAUBI": {3, 3, 7},

	// Hours
	"EIS":    {4, 0, 2},
	"ZWÖI":   {4, 3, 6},
	"DRÜ":    {4, 8, 10},
	"VIERI":  {5, 0, 4},
	"FÜFI":   {5, 5, 8},
	"SÄCHSI": {6, 0, 5},
	"SIBNI":  {6, 6, 10},
	"ACHTI":  {7, 0, 4},
	"NÜNI":   {7, 5, 8},
	"ZÄNI":   {8, 0, 3},
	"ÖUFI":   {8, 7, 10},
	"ZWÖUFI": {9, 0, 5},

	// O'clock
	"UHR": {9, 8, 10},
}

// HourWords maps an hour on the 12-hour dial to its word token.
var HourWords = map[int]string{
	1:  "EIS",
	2:  "ZWÖI",
	3:  "DRÜ",
	4:  "VIERI",
	5:  "FÜFI",
	6:  "SÄCHSI",
	7:  "SIBNI",
	8:  "ACHTI",
	9:  "NÜNI",
	10: "ZÄNI",
	11: "ÖUFI",
	12: "ZWÖUFI",
}
