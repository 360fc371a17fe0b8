// Package namerig provides:
//
//   - A schema model for composite identifier strings: ordered, typed name
//     parts (prefix/suffix enumerations, free-text real name, numeric index)
//   - Tokenization with delimiter detection (space, underscore, or case/digit
//     boundaries) and an ordered extraction pass that resolves each part
//   - Reconstruction (Combine), structural edits, index arithmetic with
//     zero-padding normalization, and weight-based mirroring
//   - A stable error model via Issues (path, code, message) for schema
//     construction and configuration loading
//
// Design policy:
//   - Keep only public APIs in the root package.
//   - Place the fluent schema builder under dsl/, configuration descriptors
//     under config/, path generation under namepath/, and the CLI under
//     cmd/namerig.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s, err := config.LoadFile("naming.yaml")
//	name := s.Combine(map[string]string{"Side": "L", "RealName": "Arm", "Index": "1"}, "_")
//	parts := s.Decompose(name)   // {"Side":"L","RealName":"Arm","Index":"01"}
//	mirror := s.MirrorName(name) // "R_Arm_01"
package namerig
