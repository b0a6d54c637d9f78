//go:build arm64 && !purego

package log2f

import (
	_ "github.com/arntercon/volk/kernels/log2f/internal/arch/quadpow" // register NEON-class kernel
	_ "github.com/arntercon/volk/kernels/log2f/internal/arch/scalar"  // register scalar fallback
)
