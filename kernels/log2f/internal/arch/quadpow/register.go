package quadpow

import (
	"github.com/arntercon/volk/internal/cpu"
	"github.com/arntercon/volk/kernels/log2f/internal/arch/registry"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:             "quadpow",
		SIMDLevel:        cpu.SIMDNEON,
		Priority:         10,
		Width:            4,
		Saturation:       registry.SignPreserving,
		Transform:        Transform,
		TransformAligned: Transform,
	})
}
