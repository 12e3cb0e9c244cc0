package hatch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

var ErrInvalidSkeleton = errors.New("invalid skeleton asset")

// ValidateSkeleton chequea que el JSON del skeleton declare todos los clips en "animations".
func ValidateSkeleton(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("%w: not valid json", ErrInvalidSkeleton)
	}
	anims := gjson.GetBytes(data, "animations")
	if !anims.IsObject() {
		return fmt.Errorf("%w: missing animations object", ErrInvalidSkeleton)
	}

	var missing []string
	for _, c := range AllClips {
		if !anims.Get(gjson.Escape(string(c))).Exists() {
			missing = append(missing, string(c))
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing clips %s", ErrInvalidSkeleton, strings.Join(missing, ", "))
	}
	return nil
}

// SkeletonClips lista las animaciones declaradas (ParseClip descarta las desconocidas).
func SkeletonClips(data []byte) []Clip {
	var out []Clip
	gjson.GetBytes(data, "animations").ForEach(func(key, _ gjson.Result) bool {
		if c, err := ParseClip(key.String()); err == nil {
			out = append(out, c)
		}
		return true
	})
	return out
}
