package gmat

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// VariantKey identifies one shader permutation of a material, derived by
// the renderer from the render pass and scene-defined conditions.
type VariantKey string

// ShaderProgram is a compiled-shader reference shared between materials and
// the renderer. Materials hold it without owning it: assigning a different
// program to a material does not release the previous one.
type ShaderProgram struct {
	Label  string
	Source string // WGSL listing

	module *wgpu.ShaderModule
	failed bool
}

func NewShaderProgram(label, source string) *ShaderProgram {
	return &ShaderProgram{Label: label, Source: source}
}

// Compile creates the wgpu shader module, memoizing the result. On failure
// the compile-failed flag is set; the renderer skips the program until
// Material.Update clears the flag and requests a retry.
func (s *ShaderProgram) Compile(device *wgpu.Device) (*wgpu.ShaderModule, error) {
	if s.module != nil {
		return s.module, nil
	}
	module, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          s.Label,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: s.Source},
	})
	if err != nil {
		s.failed = true
		return nil, err
	}
	s.module = module
	return module, nil
}

// Module returns the compiled module, or nil if Compile has not succeeded.
func (s *ShaderProgram) Module() *wgpu.ShaderModule { return s.module }

// FailCompilation records that the last compile attempt failed.
func (s *ShaderProgram) FailCompilation() { s.failed = true }

// CompileFailed reports whether the last compile attempt failed.
func (s *ShaderProgram) CompileFailed() bool { return s.failed }

func (s *ShaderProgram) clearCompileFailure() { s.failed = false }
