package gpt

import (
	"fmt"
	"sort"
)

func prioritise(entries []Entry, target uint) (map[uint]uint, error) {
	var targetEntry *Entry
	for index := range entries {
		if entries[index].Number == target {
			targetEntry = &entries[index]
			break
		}
	}
	if targetEntry == nil {
		return nil, fmt.Errorf("partition %d not found", target)
	}
	var peers []*Entry
	var maxPriority uint
	for index := range entries {
		entry := &entries[index]
		if entry.Number == target || !sameType(entry, targetEntry) {
			continue
		}
		peers = append(peers, entry)
		if priority := entry.Attributes.Priority(); priority > maxPriority {
			maxPriority = priority
		}
	}
	changes := make(map[uint]uint)
	if maxPriority+1 > MaxPriority {
		maxPriority = compressPriorities(peers, changes)
	}
	if newPriority := maxPriority + 1; newPriority !=
		targetEntry.Attributes.Priority() {
		changes[target] = newPriority
	}
	return changes, nil
}

// compressPriorities re-ranks the non-zero priorities of peers to 1..n,
// keeping their order, and returns the new maximum. If there are too many
// distinct priorities the lowest ones are merged at 1.
func compressPriorities(peers []*Entry, changes map[uint]uint) uint {
	distinct := make(map[uint]struct{})
	for _, entry := range peers {
		if priority := entry.Attributes.Priority(); priority > 0 {
			distinct[priority] = struct{}{}
		}
	}
	ordered := make([]uint, 0, len(distinct))
	for priority := range distinct {
		ordered = append(ordered, priority)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })
	offset := 0
	if len(ordered) > MaxPriority-1 {
		offset = len(ordered) - (MaxPriority - 1)
	}
	rank := make(map[uint]uint, len(ordered))
	for index, priority := range ordered {
		newRank := index + 1 - offset
		if newRank < 1 {
			newRank = 1
		}
		rank[priority] = uint(newRank)
	}
	var maxPriority uint
	for _, entry := range peers {
		oldPriority := entry.Attributes.Priority()
		if oldPriority < 1 {
			continue
		}
		newPriority := rank[oldPriority]
		if newPriority != oldPriority {
			changes[entry.Number] = newPriority
		}
		if newPriority > maxPriority {
			maxPriority = newPriority
		}
	}
	return maxPriority
}

func sameType(left, right *Entry) bool {
	if left.TypeGUID == right.TypeGUID {
		return true
	}
	leftType, err := normaliseGUID(left.TypeGUID)
	if err != nil {
		return false
	}
	rightType, err := normaliseGUID(right.TypeGUID)
	if err != nil {
		return false
	}
	return leftType == rightType
}
