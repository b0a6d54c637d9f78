//go:build amd64 && !purego

package log2f

import (
	_ "github.com/arntercon/volk/kernels/log2f/internal/arch/oct"      // register AVX2 kernel
	_ "github.com/arntercon/volk/kernels/log2f/internal/arch/octfused" // register AVX2+FMA kernel
	_ "github.com/arntercon/volk/kernels/log2f/internal/arch/quad"     // register SSE-class kernel
	_ "github.com/arntercon/volk/kernels/log2f/internal/arch/scalar"   // register scalar fallback
)
