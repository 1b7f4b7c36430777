package rules

import "github.com/arcanaland/thirteens/internal/card"

// elevens removes a pair of non-face cards whose point values add up to 11,
// or a jack, a queen and a king together. Face cards are worth 0.
type elevens struct{}

func (elevens) IsLegal(b Board, selection []int) bool {
	switch len(selection) {
	case 2:
		return findPairSum(b, selection, 11) != nil
	case 3:
		return findJQK(b, selection) != nil
	default:
		return false
	}
}

func (elevens) AnotherPlayIsPossible(b Board) bool {
	indexes := b.OccupiedIndexes()
	return findPairSum(b, indexes, 11) != nil || findJQK(b, indexes) != nil
}

func (elevens) FindPlay(b Board) []int {
	indexes := b.OccupiedIndexes()
	if pair := findPairSum(b, indexes, 11); pair != nil {
		return pair
	}
	return findJQK(b, indexes)
}

func findJQK(b Board, indexes []int) []int {
	j := findRank(b, indexes, card.Jack)
	q := findRank(b, indexes, card.Queen)
	k := findRank(b, indexes, card.King)
	if j < 0 || q < 0 || k < 0 {
		return nil
	}
	return []int{j, q, k}
}
