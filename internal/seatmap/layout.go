package seatmap

import "strings"

// RowLayout is one grid row split by the two aisles.
type RowLayout struct {
	RowLabel string `json:"rowLabel"`
	Left     []Seat `json:"left"`
	Center   []Seat `json:"center"`
	Right    []Seat `json:"right"`
}

const (
	leftBlockEnd   = 2
	centerBlockEnd = 8
)

// PartitionIntoLayout groups seats by row label prefix, keeping input order,
// and splits each row positionally into left [0:2], center [2:8] and right [8:].
// Rows without seats are returned empty.
func PartitionIntoLayout(seats []Seat) []RowLayout {
	rows := make([]RowLayout, 0, len(RowLabels))
	for _, label := range RowLabels {
		rowSeats := make([]Seat, 0)
		for _, seat := range seats {
			if strings.HasPrefix(seat.Name, label) {
				rowSeats = append(rowSeats, seat)
			}
		}

		rows = append(rows, RowLayout{
			RowLabel: label,
			Left:     window(rowSeats, 0, leftBlockEnd),
			Center:   window(rowSeats, leftBlockEnd, centerBlockEnd),
			Right:    window(rowSeats, centerBlockEnd, len(rowSeats)),
		})
	}
	return rows
}

// window copies seats[from:to] with both bounds clamped to len(seats).
func window(seats []Seat, from, to int) []Seat {
	from = min(from, len(seats))
	to = min(to, len(seats))
	if to < from {
		to = from
	}
	return append([]Seat{}, seats[from:to]...)
}
