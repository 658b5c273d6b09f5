package machine

import (
	"github.com/mna/ippcode22/lang/program"
	"gopkg.in/yaml.v3"
)

// execDprint marshals the evaluated symbol to YAML and writes it to
// standard error. It is a no-op with respect to program state.
func (in *Interpreter) execDprint(inst program.Instruction) *RuntimeError {
	val, err := in.resolveSymbol(inst.Args[0])
	if err != nil {
		return err
	}
	doc := struct {
		Tag   string `yaml:"tag"`
		Value string `yaml:"value"`
	}{Tag: val.Tag().String(), Value: val.String()}

	return in.writeDiagnostic(doc)
}

// execBreak marshals a snapshot of the current machine state to standard
// error. It is a no-op with respect to program state.
func (in *Interpreter) execBreak(inst program.Instruction) *RuntimeError {
	doc := struct {
		IC          int    `yaml:"ic"`
		SourceOrder int    `yaml:"source_order"`
		NextOpcode  string `yaml:"next_opcode"`
		GlobalFrame bool   `yaml:"global_frame"`
		TempFrame   bool   `yaml:"temp_frame"`
		LocalDepth  int    `yaml:"local_frame_depth"`
		DataDepth   int    `yaml:"data_stack_depth"`
		CallDepth   int    `yaml:"call_stack_depth"`
	}{
		IC:          in.ic,
		SourceOrder: inst.SourceOrder,
		NextOpcode:  inst.Opcode.String(),
		GlobalFrame: true,
		TempFrame:   in.frames.HasTemp(),
		LocalDepth:  in.frames.StackDepth(),
		DataDepth:   len(in.dataStack),
		CallDepth:   len(in.callStack),
	}

	return in.writeDiagnostic(doc)
}

func (in *Interpreter) writeDiagnostic(doc any) *RuntimeError {
	b, err := yaml.Marshal(doc)
	if err != nil {
		return newErr(99, "internal error: cannot marshal diagnostic: %s", err)
	}
	if _, err := in.stderr.Write(append(b, '\n')); err != nil {
		return newErr(99, "internal error: cannot write diagnostic: %s", err)
	}
	return nil
}
