package standalone

import (
	"io"

	"github.com/vs-ude/spirv"

	"github.com/vs-ude/skslc/internal/sksl"
)

func executionModel(kind sksl.ProgramKind) spirv.ExecutionModel {
	switch kind {
	case sksl.KindVertex:
		return spirv.ExecutionModelVertex
	case sksl.KindGeometry:
		return spirv.ExecutionModelGeometry
	}
	// Fragment processors and pipeline stages compile as fragment code.
	return spirv.ExecutionModelFragment
}

// stageExecutionMode returns the execution mode declared for the entry
// point of the given stage.
func stageExecutionMode(model spirv.ExecutionModel) spirv.ExecutionMode {
	switch model {
	case spirv.ExecutionModelVertex:
		return spirv.ExecutionModeContractionOff
	case spirv.ExecutionModelGeometry:
		return spirv.ExecutionModeTriangles
	}
	return spirv.ExecutionModeOriginUpperLeft
}

// Result ids of the fixed module shell. Every id must satisfy
// 0 < id < Bound.
const (
	idVoid spirv.Id = iota + 1
	idFnType
	idMain
	idEntryBlock
	idBound
)

// ToSPIRV writes the program as a minimal SPIR-V module: the memory
// model, the entry-point chain for the program's stage, and a void
// entry function whose single block branches to itself. Note that the
// verifier's logical layout has no capability section, so the module
// declares none.
func (t *Toolchain) ToSPIRV(p *sksl.Program, w io.Writer) error {
	mod := spirv.Module{
		Header: spirv.Header{
			Magic:          spirv.MagicLE,
			Version:        spirv.SpecificationVersion,
			GeneratorMagic: t.conf.GeneratorMagic,
			Bound:          idBound,
		},
	}
	model := executionModel(p.Kind)
	mod.Code = append(mod.Code,
		&spirv.OpMemoryModel{AddressingModel: spirv.AddressingModelLogical, MemoryModel: spirv.MemoryModelGLSL450},
		&spirv.OpEntryPoint{ExecutionModel: model, EntryPoint: idMain, Name: "main", Interface: []spirv.Id{}},
		&spirv.OpExecutionMode{EntryPoint: idMain, Mode: stageExecutionMode(model), Argv: []uint32{}},
		&spirv.OpTypeVoid{ResultId: idVoid},
		&spirv.OpTypeFunction{ResultId: idFnType, ReturnType: idVoid, Argv: []spirv.Id{}},
		&spirv.OpFunction{ResultType: idVoid, ResultId: idMain, FunctionControl: spirv.FunctionControlNone, FunctionType: idFnType},
		&spirv.OpLabel{ResultId: idEntryBlock},
		&spirv.OpBranch{TargetLabel: idEntryBlock},
		&spirv.OpFunctionEnd{},
	)
	if err := mod.Verify(); err != nil {
		return err
	}
	return mod.Save(w)
}
