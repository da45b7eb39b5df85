package tilemapping

import (
	"fmt"
	"slices"
)

// Leave returns what stays on a rack after a play's tiles come off it,
// sorted, blanks first. Zeroes in the play are squares played through;
// designated blanks come off the rack as blanks.
func Leave(rack MachineWord, play MachineWord) (MachineWord, error) {
	leave := slices.Clone(rack)
	for _, t := range play {
		if t == 0 {
			continue
		}
		if t.IsBlanked() {
			t = 0
		}
		i := slices.Index(leave, t)
		if i < 0 {
			return nil, fmt.Errorf("tile in play but not in rack: %v", t)
		}
		leave = slices.Delete(leave, i, i+1)
	}
	slices.Sort(leave)
	return leave, nil
}
