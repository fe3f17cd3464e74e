//go:build debugassert

package lighttracing

import (
	"fmt"

	"github.com/nasehim7/appleseed/pkg/core"
)

func assertNonNegativeRadiance(radiance core.Vec3) {
	if radiance.MinComponent() < 0 || !radiance.IsFinite() {
		panic(fmt.Sprintf("invalid film sample radiance: %v", radiance))
	}
}
