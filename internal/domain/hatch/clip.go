package hatch

import (
	"errors"
	"fmt"
)

// Clip es el nombre de una animación del skeleton del huevo.
type Clip string

const (
	ClipIdle       Clip = "01_idling"
	ClipBark       Clip = "02_bark"
	ClipRotate     Clip = "03_rotate_left_right"
	ClipSwingLeft  Clip = "04_swing_left"
	ClipSwingRight Clip = "05_swing_right"
	ClipSwingLeft2 Clip = "06_swing_left2"
	ClipReveal     Clip = "07_reveal"

	ClipIdleCrack1 Clip = "01_idling_crack1"
	ClipIdleCrack2 Clip = "01_idling_crack2"
	ClipIdleCrack3 Clip = "01_idling_crack3"
	ClipIdleCrack4 Clip = "01_idling_crack4"
)

// TapsToHatch: cantidad de taps que abren el huevo.
const TapsToHatch = 5

// progressClips[k-1] se reproduce con el tap k; settledClips[k-1] queda en loop después.
var (
	progressClips = [TapsToHatch - 1]Clip{ClipBark, ClipRotate, ClipSwingLeft, ClipSwingRight}
	settledClips  = [TapsToHatch - 1]Clip{ClipIdleCrack1, ClipIdleCrack2, ClipIdleCrack3, ClipIdleCrack4}
)

// AllClips son las animaciones que el skeleton tiene que declarar.
var AllClips = []Clip{
	ClipIdle,
	ClipBark,
	ClipRotate,
	ClipSwingLeft,
	ClipSwingRight,
	ClipSwingLeft2,
	ClipReveal,
	ClipIdleCrack1,
	ClipIdleCrack2,
	ClipIdleCrack3,
	ClipIdleCrack4,
}

var ErrUnknownClip = errors.New("unknown clip")

func ParseClip(name string) (Clip, error) {
	for _, c := range AllClips {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownClip, name)
}

// ProgressClip devuelve el clip del tap k (1..4).
func ProgressClip(k int) Clip {
	return progressClips[k-1]
}

// SettledClip devuelve el loop que queda tras el tap k (1..4).
func SettledClip(k int) Clip {
	return settledClips[k-1]
}
