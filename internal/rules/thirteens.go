package rules

import "github.com/arcanaland/thirteens/internal/card"

// thirteens removes a single king, or a pair of non-face cards whose point
// values add up to 13. Kings are worth 0 and never complete a pair.
type thirteens struct{}

func (thirteens) IsLegal(b Board, selection []int) bool {
	switch len(selection) {
	case 1:
		return findRank(b, selection, card.King) >= 0
	case 2:
		return findPairSum(b, selection, 13) != nil
	default:
		return false
	}
}

func (thirteens) AnotherPlayIsPossible(b Board) bool {
	indexes := b.OccupiedIndexes()
	return findPairSum(b, indexes, 13) != nil || findRank(b, indexes, card.King) >= 0
}

func (thirteens) FindPlay(b Board) []int {
	indexes := b.OccupiedIndexes()
	if k := findRank(b, indexes, card.King); k >= 0 {
		return []int{k}
	}
	return findPairSum(b, indexes, 13)
}
