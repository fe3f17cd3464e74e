//go:build !debugassert

package lighttracing

import (
	"github.com/nasehim7/appleseed/pkg/core"
)

func assertNonNegativeRadiance(radiance core.Vec3) {
}
